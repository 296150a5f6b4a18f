package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmpty(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, SeedIfEmpty(ctx, s))

			products, err := s.GetProducts(ctx)
			require.NoError(t, err)
			assert.Len(t, products, 3)
			for _, p := range products {
				assert.True(t, p.Featured)
				assert.Greater(t, p.Price, 0)
			}

			categories, err := s.GetCategories(ctx)
			require.NoError(t, err)
			require.Len(t, categories, 2)
			assert.Equal(t, "iphone", categories[0].Slug)
			assert.Equal(t, "acessorios", categories[1].Slug)

			// Second run is a no-op
			require.NoError(t, SeedIfEmpty(ctx, s))
			products, err = s.GetProducts(ctx)
			require.NoError(t, err)
			assert.Len(t, products, 3)
		})
	}
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.CreateProduct(ctx, sampleProductInput())
			require.NoError(t, err)

			require.NoError(t, SeedIfEmpty(ctx, s))

			products, err := s.GetProducts(ctx)
			require.NoError(t, err)
			assert.Len(t, products, 1, "existing catalog must be left untouched")

			categories, err := s.GetCategories(ctx)
			require.NoError(t, err)
			assert.Empty(t, categories)
		})
	}
}

func TestSeedUsesStorageValidation(t *testing.T) {
	// The seed data goes through the same create path as API input, so it
	// must satisfy the input rules.
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, SeedIfEmpty(ctx, s))

			featured, err := s.GetFeaturedProducts(ctx)
			require.NoError(t, err)
			assert.Len(t, featured, 3)

			for _, p := range featured {
				require.NotNil(t, p.CategoryID)
				_, err := s.GetCategory(ctx, *p.CategoryID)
				assert.NoError(t, err)
			}
		})
	}
}
