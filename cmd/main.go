package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"theme_ai_server/config"
	"theme_ai_server/internal/ai"
	"theme_ai_server/internal/api"
	"theme_ai_server/internal/catalog"
	"theme_ai_server/internal/theme"
)

func main() {
	// --- Load .env file ---
	// This loads environment variables from a .env file in the current
	// directory. It's crucial to do this BEFORE viper loads config.
	err := godotenv.Load()
	if err != nil {
		// It's common for .env to not exist (e.g., in production), so only log
		// a warning if the error is something other than "file not found".
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".") // Load from config.yaml or env vars
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---

	// Catalog store: loaded once at startup, read-only afterwards. Missing or
	// malformed catalog files leave partitions empty rather than aborting.
	store := catalog.LoadStore(cfg.CatalogDir)

	// Completion client against the Groq OpenAI-compatible endpoint.
	generator := ai.NewGenerator(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModelID)

	// Theme generation pipeline.
	themeService := theme.NewService(generator, store, cfg.GroqAPIKey != "")

	// API handlers (pass all dependencies).
	apiHandler := api.NewAPIHandler(themeService, store)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Add structured logger middleware
	router.Use(gin.Recovery()) // Add panic recovery middleware

	// The theme builder frontend is served from another origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	api.RegisterRoutes(router, apiHandler) // Register API endpoints

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks. The write timeout also
		// bounds the single outbound completion call a request may make.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1) // Buffered channel
	// Notify channel on SIGINT or SIGTERM
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	// Block until a signal is received
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	// Create a context with timeout for shutdown
	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	// Attempt to gracefully shutdown the HTTP server
	log.Println("Shutting down API server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		// Error from closing listeners, or context timeout:
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
