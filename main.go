package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/config"
	"github.com/lojatec/lojatec-api/controllers"
	"github.com/lojatec/lojatec-api/storage"
)

func main() {
	// Basic logging
	log.Println("Starting LojaTec Store API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	store, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	controllers.SetStorage(store)

	// Seed sample catalog once at boot, never lazily per request.
	if err := storage.SeedIfEmpty(context.Background(), store); err != nil {
		log.Printf("Seeding failed: %v", err)
	}

	router := setupRouter()

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStorage selects the backing store from configuration: the in-memory
// map, the embedded SQLite file, or a client/server engine.
func buildStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Println("Using in-memory storage")
		return storage.NewMemoryStorage(), nil
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := storage.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Println("Database migration completed successfully")
	return storage.NewGormStorage(db), nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "LojaTec Store API is running",
	})
}
