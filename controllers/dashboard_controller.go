package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats handles GET /api/dashboard/stats. The aggregates are
// recomputed from the full product and order sets on every call.
func GetDashboardStats(c *gin.Context) {
	stats, err := store.GetDashboardStats(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
