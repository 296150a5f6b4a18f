package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/controllers"
	"github.com/lojatec/lojatec-api/middleware"
)

// setupRouter wires middleware and the full API surface.
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The storefront is served from a separate origin.
	router.Use(cors.Default())
	router.Use(middleware.Metrics())
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		api.GET("/products", controllers.GetProducts)
		api.GET("/products/featured", controllers.GetFeaturedProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.POST("/products", controllers.CreateProduct)
		api.PUT("/products/:id", controllers.UpdateProduct)
		api.DELETE("/products/:id", controllers.DeleteProduct)

		api.GET("/orders", controllers.GetOrders)
		api.GET("/orders/:id", controllers.GetOrder)
		api.POST("/orders", controllers.CreateOrder)
		api.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)

		api.GET("/categories", controllers.GetCategories)
		api.GET("/categories/with-subcategories", controllers.GetCategoriesWithSubcategories)
		api.POST("/categories", controllers.CreateCategory)
		api.PUT("/categories/:id", controllers.UpdateCategory)
		api.DELETE("/categories/:id", controllers.DeleteCategory)

		api.GET("/subcategories", controllers.GetSubcategories)
		api.POST("/subcategories", controllers.CreateSubcategory)
		api.PUT("/subcategories/:id", controllers.UpdateSubcategory)
		api.DELETE("/subcategories/:id", controllers.DeleteSubcategory)

		api.GET("/dashboard/stats", controllers.GetDashboardStats)
	}

	return router
}
