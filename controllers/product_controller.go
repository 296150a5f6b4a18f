package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/models"
	"github.com/lojatec/lojatec-api/storage"
)

// GetProducts handles GET /api/products
func GetProducts(c *gin.Context) {
	products, err := store.GetProducts(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts handles GET /api/products/featured
func GetFeaturedProducts(c *gin.Context) {
	products, err := store.GetFeaturedProducts(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch featured products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := store.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		log.Printf("Failed to fetch product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}

	product, err := store.CreateProduct(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
			return
		}
		log.Printf("Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id with full-replace semantics
func UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}

	product, err := store.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case errors.Is(err, storage.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		default:
			log.Printf("Failed to update product %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id
func DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := store.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		log.Printf("Failed to delete product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}
	c.Status(http.StatusNoContent)
}
