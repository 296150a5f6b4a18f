package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardRoutes(router *gin.Engine) {
	router.GET("/api/dashboard/stats", GetDashboardStats)
}

func TestDashboardStatsEmpty(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	dashboardRoutes(router)

	w, response := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), response["totalProducts"])
	assert.Equal(t, float64(0), response["totalOrders"])
	assert.Equal(t, float64(0), response["pendingOrders"])
	assert.Equal(t, float64(0), response["totalRevenue"])
	assert.Empty(t, response["recentOrders"])
}

func TestDashboardRevenueFollowsDelivery(t *testing.T) {
	// Checkout scenario: a pending order contributes nothing; delivering
	// it moves its totalAmount into revenue on the next read.
	setupTestStorage(t)
	router := setupTestRouter()
	dashboardRoutes(router)
	orderRoutes(router)

	w, _ := doJSON(t, router, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w, stats := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), stats["totalOrders"])
	assert.Equal(t, float64(1), stats["pendingOrders"])
	assert.Equal(t, float64(0), stats["totalRevenue"])

	w, _ = doJSON(t, router, http.MethodPatch, "/api/orders/1/status", map[string]interface{}{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code)

	w, stats = doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), stats["pendingOrders"])
	assert.Equal(t, float64(2000), stats["totalRevenue"])

	// And back again: revenue recognition is recomputed, not accumulated
	w, _ = doJSON(t, router, http.MethodPatch, "/api/orders/1/status", map[string]interface{}{"status": "pending"})
	require.Equal(t, http.StatusOK, w.Code)

	w, stats = doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), stats["totalRevenue"])
	assert.Equal(t, float64(1), stats["pendingOrders"])
}

func TestDashboardRecentOrdersLimit(t *testing.T) {
	setupTestStorage(t)
	router := setupTestRouter()
	dashboardRoutes(router)
	orderRoutes(router)

	for i := 0; i < 6; i++ {
		w, _ := doJSON(t, router, http.MethodPost, "/api/orders", validOrderBody())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, stats := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(6), stats["totalOrders"])

	recent := stats["recentOrders"].([]interface{})
	require.Len(t, recent, 5)
	first := recent[0].(map[string]interface{})
	assert.Equal(t, float64(6), first["id"], "most recent order comes first")
}
