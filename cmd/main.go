package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"codeweaver_server/config"
	"codeweaver_server/internal/ai"
	"codeweaver_server/internal/api"
	"codeweaver_server/internal/project"
	"codeweaver_server/internal/storage"
)

func main() {
	// Load .env before viper so file-provided variables are visible as env.
	// Missing .env is normal in production.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency initialization ---
	// Every client is constructed here and injected; no package-level state.
	gateway := ai.NewGateway(ai.GatewayConfig{
		OpenAIKey:        cfg.OpenAIKey,
		AnthropicKey:     cfg.AnthropicKey,
		AnthropicBaseURL: cfg.AnthropicBaseURL,
		GeminiKey:        cfg.GeminiKey,
		GeminiBaseURL:    cfg.GeminiBaseURL,
	})
	generator := ai.NewGenerator(gateway)

	uploader, err := storage.NewUploader(context.Background(), cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatalf("Cannot initialize storage uploader: %v", err)
	}

	exporter := project.NewExporter(cfg.ProjectsDir)

	apiHandler := api.NewAPIHandler(generator, uploader, exporter, cfg.DefaultModel)

	// --- HTTP server ---
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation exchanges can be slow; the write timeout bounds them.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
