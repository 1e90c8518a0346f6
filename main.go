package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codeby-aftab/trip-ai-backend/config"
	"github.com/codeby-aftab/trip-ai-backend/handlers"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/pkg/exchangerate"
	"github.com/codeby-aftab/trip-ai-backend/pkg/genai"
	"github.com/codeby-aftab/trip-ai-backend/router"
	"github.com/codeby-aftab/trip-ai-backend/services"
	"github.com/codeby-aftab/trip-ai-backend/store"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client with TLS in production
	redisOptions := &redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}
	if cfg.Redis.UseTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOptions)
	defer func() {
		_ = redisClient.Close()
	}()

	userStore := store.NewUserStore(store.NewRedisKV(redisClient))

	// Exchange-rate client; keyless dev mode serves the static table.
	var rateClient exchangerate.ClientInterface
	if key := cfg.ExternalServices.ExchangeRateAPIKey; key != "" {
		rateClient = exchangerate.NewClient(key, cfg.ExternalServices.ExchangeRateBaseURL)
	}
	rateService := services.NewRateService(rateClient, "USD")

	// Fetch the session's rate snapshot once at startup. Failure is
	// non-fatal: the display pipeline falls back to USD-only.
	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if _, err := rateService.Refresh(startupCtx); err != nil {
		log.Warnw("Initial exchange-rate fetch failed, falling back to USD-only display", "error", err)
	}
	cancel()

	generator := buildGenerator(cfg)
	tripPlanService := services.NewTripPlanService(generator)
	healthService := services.NewHealthService(redisClient, cfg.Server.Version)

	engine := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		PlanHandler:   handlers.NewPlanHandler(tripPlanService, rateService),
		UserHandler:   handlers.NewUserHandler(userStore),
		HealthHandler: handlers.NewHealthHandler(healthService),
		Logger:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}

// buildGenerator selects the AI collaborator backend from configuration.
func buildGenerator(cfg *config.Config) genai.Generator {
	timeout := time.Duration(cfg.Generation.TimeoutSeconds) * time.Second

	switch cfg.Generation.Provider {
	case config.ProviderOpenAI:
		return genai.NewOpenAIClient(
			cfg.ExternalServices.OpenAIAPIKey,
			cfg.ExternalServices.OpenAIBaseURL,
			cfg.ExternalServices.OpenAIModel,
			timeout,
		)
	default:
		return genai.NewGeminiClient(
			cfg.ExternalServices.GeminiAPIKey,
			cfg.ExternalServices.GeminiBaseURL,
			cfg.ExternalServices.GeminiModel,
			timeout,
		)
	}
}
