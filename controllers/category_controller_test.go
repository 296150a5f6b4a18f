package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRoutes(router *gin.Engine) {
	router.GET("/api/categories", GetCategories)
	router.GET("/api/categories/with-subcategories", GetCategoriesWithSubcategories)
	router.POST("/api/categories", CreateCategory)
	router.PUT("/api/categories/:id", UpdateCategory)
	router.DELETE("/api/categories/:id", DeleteCategory)
	router.GET("/api/subcategories", GetSubcategories)
	router.POST("/api/subcategories", CreateSubcategory)
	router.PUT("/api/subcategories/:id", UpdateSubcategory)
	router.DELETE("/api/subcategories/:id", DeleteSubcategory)
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully create category",
			requestBody: map[string]interface{}{
				"name": "iPhone", "slug": "iphone", "sortOrder": 1,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.Equal(t, "iPhone", response["name"])
				assert.Equal(t, "iphone", response["slug"])
				assert.Equal(t, true, response["isActive"], "isActive should default to true")
				assert.Equal(t, float64(1), response["sortOrder"])
			},
		},
		{
			name: "Create inactive category",
			requestBody: map[string]interface{}{
				"name": "Arquivadas", "slug": "arquivadas", "isActive": false,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.Equal(t, false, response["isActive"])
			},
		},
		{
			name:           "Fail with missing slug",
			requestBody:    map[string]interface{}{"name": "iPhone"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail with missing name",
			requestBody:    map[string]interface{}{"slug": "iphone"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestStorage(t)
			router := setupTestRouter()
			categoryRoutes(router)

			w, response := doJSON(t, router, http.MethodPost, "/api/categories", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestCategoriesSortedBySortOrder(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	categoryRoutes(router)

	doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "Acessórios", "slug": "acessorios", "sortOrder": 2,
	})
	doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "iPhone", "slug": "iphone", "sortOrder": 1,
	})

	w, _ := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "iPhone", list[0]["name"])
	assert.Equal(t, "Acessórios", list[1]["name"])
}

func TestGetCategoriesWithSubcategoriesEndpoint(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	categoryRoutes(router)

	w, category := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "iPhone", "slug": "iphone",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := category["id"].(float64)

	w, _ = doJSON(t, router, http.MethodPost, "/api/subcategories", map[string]interface{}{
		"name": "iPhone 15", "slug": "iphone-15", "categoryId": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/categories/with-subcategories", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "iPhone", list[0]["name"])
	subcategories := list[0]["subcategories"].([]interface{})
	require.Len(t, subcategories, 1)
	sub := subcategories[0].(map[string]interface{})
	assert.Equal(t, "iPhone 15", sub["name"])
	assert.Equal(t, categoryID, sub["categoryId"])
}

func TestCreateSubcategoryRequiresCategoryID(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	categoryRoutes(router)

	w, _ := doJSON(t, router, http.MethodPost, "/api/subcategories", map[string]interface{}{
		"name": "iPhone 15", "slug": "iphone-15",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategory(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	categoryRoutes(router)

	doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "iPhone", "slug": "iphone",
	})

	w, response := doJSON(t, router, http.MethodPut, "/api/categories/1", map[string]interface{}{
		"name": "iPhone & iPad", "slug": "iphone", "sortOrder": 3,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "iPhone & iPad", response["name"])
	assert.Equal(t, float64(3), response["sortOrder"])

	w, _ = doJSON(t, router, http.MethodPut, "/api/categories/999", map[string]interface{}{
		"name": "Missing", "slug": "missing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryKeepsSubcategories(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	categoryRoutes(router)

	w, category := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "iPhone", "slug": "iphone",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/subcategories", map[string]interface{}{
		"name": "iPhone 15", "slug": "iphone-15", "categoryId": category["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// No cascade: the subcategory survives with its dangling reference
	w, _ = doJSON(t, router, http.MethodGet, "/api/subcategories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
