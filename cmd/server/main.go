package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ladle-app/backend/config"
	httpDelivery "github.com/ladle-app/backend/internal/delivery/http"
	"github.com/ladle-app/backend/internal/infrastructure/cache"
	"github.com/ladle-app/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Ladle Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	// Initialize usecase layer
	scalingService := usecase.NewScalingService(
		memoryCache,
		usecase.ScalingServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxMultiplier:      cfg.Scaling.MaxMultiplier,
			EnableDebugLogging: cfg.Scaling.EnableDebugLogging,
		},
	)

	log.Printf("Scaling: max multiplier=%g, debug=%v",
		cfg.Scaling.MaxMultiplier,
		cfg.Scaling.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scalingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
