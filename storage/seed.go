package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/lojatec/lojatec-api/models"
)

// SeedIfEmpty loads the sample catalog when the product table is empty.
// It runs once at process boot, after migration, and is idempotent: a
// store that already has products is left untouched.
func SeedIfEmpty(ctx context.Context, s Storage) error {
	existing, err := s.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("seed: check products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	log.Println("Empty catalog detected, seeding sample data")

	iphone, err := s.CreateCategory(ctx, models.CategoryInput{
		Name:        "iPhone",
		Slug:        "iphone",
		Description: "Os mais recentes modelos de iPhone",
		SortOrder:   1,
	})
	if err != nil {
		return fmt.Errorf("seed: create category: %w", err)
	}

	accessories, err := s.CreateCategory(ctx, models.CategoryInput{
		Name:        "Acessórios",
		Slug:        "acessorios",
		Description: "Acessórios para dispositivos Apple",
		SortOrder:   2,
	})
	if err != nil {
		return fmt.Errorf("seed: create category: %w", err)
	}

	sampleProducts := []models.ProductInput{
		{
			Name:        "AirSound Pro",
			Description: "Fones de ouvido sem fio com cancelamento de ruído ativo",
			Price:       89900, // 899.00 AOA
			ImageURL:    "https://images.unsplash.com/photo-1484704849700-f032a568e944?auto=format&fit=crop&q=80&w=500",
			CategoryID:  &accessories.ID,
			Featured:    true,
		},
		{
			Name:        "iPhone 16 Pro",
			Description: "O iPhone mais avançado com chip A18 Pro",
			Price:       299900, // 2999.00 AOA
			ImageURL:    "https://images.unsplash.com/photo-1592286667653-d827d2e7c5e6?auto=format&fit=crop&q=80&w=500",
			CategoryID:  &iphone.ID,
			Featured:    true,
		},
		{
			Name:        "TimeSync Elite",
			Description: "Smartwatch com monitoramento avançado de saúde",
			Price:       149900, // 1499.00 AOA
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=500",
			CategoryID:  &accessories.ID,
			Featured:    true,
		},
	}
	for _, p := range sampleProducts {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed: create product %q: %w", p.Name, err)
		}
	}

	log.Printf("Seeded %d categories and %d products", 2, len(sampleProducts))
	return nil
}
