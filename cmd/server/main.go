package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutrikit/backend/config"
	httpDelivery "github.com/nutrikit/backend/internal/delivery/http"
	"github.com/nutrikit/backend/internal/domain"
	"github.com/nutrikit/backend/internal/infrastructure/openai"
	"github.com/nutrikit/backend/internal/infrastructure/usda"
	"github.com/nutrikit/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriKit Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL)

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development"
	if debug {
		usdaClient.SetDebug(true)
		log.Printf("USDA client debug mode enabled")
	}
	log.Printf("USDA API configured: %s", cfg.USDA.BaseURL)

	// The matching backend is optional; without it every ingredient
	// resolves to the first search candidate
	var matcher domain.FoodMatcher
	if cfg.OpenAI.APIKey != "" {
		matcher = openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
		log.Printf("Matching backend configured: %s (model: %s)", cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	} else {
		log.Printf("Matching backend not configured - using first-candidate fallback")
	}

	// Initialize usecase layer
	matchingService := usecase.NewMatchingService(matcher, usecase.MatchConfig{
		EnableDebugLogging: debug,
	})

	nutritionService := usecase.NewNutritionService(
		usdaClient,
		matchingService,
		usecase.NutritionServiceConfig{
			LookupTimeout:      cfg.Lookup.Timeout,
			MaxConcurrent:      cfg.Lookup.MaxConcurrent,
			EnableDebugLogging: debug,
		},
	)

	log.Printf("Lookup: timeout=%s, max_concurrent=%d", cfg.Lookup.Timeout, cfg.Lookup.MaxConcurrent)

	calculatorService := usecase.NewCalculatorService()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(calculatorService, nutritionService)

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
