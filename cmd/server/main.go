package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/app"
	httpDelivery "github.com/recipebox/backend/internal/delivery/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting RecipeBox v%s", httpDelivery.Version)
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	ctx := context.Background()

	// Initialize infrastructure and usecase layers
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer application.Close()

	// Favorites are read once at startup; stored id-only entries are completed here
	if err := application.Session.LoadFavoritesOnStartup(ctx); err != nil {
		log.Printf("WARNING: could not load favorites: %v", err)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(application.Session, application.Recipes, application.Favorites)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		application.Close()
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
