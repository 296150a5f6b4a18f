package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/models"
	"github.com/lojatec/lojatec-api/storage"
)

// GetSubcategories handles GET /api/subcategories, ordered by sortOrder
func GetSubcategories(c *gin.Context) {
	subcategories, err := store.GetSubcategories(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch subcategories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch subcategories"})
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

// CreateSubcategory handles POST /api/subcategories
func CreateSubcategory(c *gin.Context) {
	var input models.SubcategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid subcategory data"})
		return
	}

	subcategory, err := store.CreateSubcategory(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid subcategory data"})
			return
		}
		log.Printf("Failed to create subcategory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create subcategory"})
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

// UpdateSubcategory handles PUT /api/subcategories/:id with full-replace semantics
func UpdateSubcategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input models.SubcategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid subcategory data"})
		return
	}

	subcategory, err := store.UpdateSubcategory(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Subcategory not found"})
		case errors.Is(err, storage.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid subcategory data"})
		default:
			log.Printf("Failed to update subcategory %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update subcategory"})
		}
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

// DeleteSubcategory handles DELETE /api/subcategories/:id
func DeleteSubcategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := store.DeleteSubcategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Subcategory not found"})
			return
		}
		log.Printf("Failed to delete subcategory %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete subcategory"})
		return
	}
	c.Status(http.StatusNoContent)
}
