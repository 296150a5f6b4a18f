package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/models"
	"github.com/lojatec/lojatec-api/storage"
)

// GetCategories handles GET /api/categories, ordered by sortOrder
func GetCategories(c *gin.Context) {
	categories, err := store.GetCategories(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoriesWithSubcategories handles GET /api/categories/with-subcategories
func GetCategoriesWithSubcategories(c *gin.Context) {
	categories, err := store.GetCategoriesWithSubcategories(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch categories with subcategories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories with subcategories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
func CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category data"})
		return
	}

	category, err := store.CreateCategory(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category data"})
			return
		}
		log.Printf("Failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/categories/:id with full-replace semantics
func UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category data"})
		return
	}

	category, err := store.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		case errors.Is(err, storage.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category data"})
		default:
			log.Printf("Failed to update category %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update category"})
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/:id. Subcategories are not
// cascade-deleted.
func DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := store.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		log.Printf("Failed to delete category %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete category"})
		return
	}
	c.Status(http.StatusNoContent)
}
