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

	"github.com/blacklane/ai-content-generator-for-contentful/internal/config"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/contentful"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/handler"
	transport "github.com/blacklane/ai-content-generator-for-contentful/internal/http"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/logger"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service/ai"
)

// @title Blacklane AI Content Generator API
// @version 1.0
// @description Generates SEO landing-page content via an AI endpoint and publishes it to Contentful as draft releases.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	provider, err := ai.NewProvider(ai.Config{
		Provider:         cfg.AIProvider,
		APIKey:           cfg.AIAPIKey,
		BaseURL:          cfg.AIBaseURL,
		Model:            cfg.AIModel,
		AllowInsecureTLS: cfg.AIAllowInsecureTLS,
	})
	if err != nil {
		log.Fatalf("create AI provider: %v", err)
	}

	passwordHash, err := service.HashPassword(cfg.AuthPassword)
	if err != nil {
		log.Fatalf("hash auth password: %v", err)
	}
	authService, err := service.NewAuthService(service.AuthConfig{
		Secret:       cfg.JWTSecret,
		TokenExpiry:  config.TokenExpiry,
		Username:     cfg.AuthUsername,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Fatalf("create auth service: %v", err)
	}

	// Contentful may be absent in local setups; publish then fails with a
	// clear error and the health check reports it as disconnected.
	var publisher contentful.Publisher
	if client, err := contentful.NewClient(cfg.ContentfulSpaceID, cfg.ContentfulEnvironment, cfg.ContentfulToken); err == nil {
		publisher = client
	} else {
		logger.Warn("contentful disabled", "module", "main", "action", "init", "resource", "contentful", "result", "failed", "error", err)
	}

	rateLimiter := ai.NewRateLimiter(cfg.AIRateLimit)
	contentService := service.NewContentService(provider, rateLimiter)
	publishService := service.NewPublishService(publisher)
	healthService := service.NewHealthService(map[string]service.ProbeFunc{
		"ai":         contentService.ProbeAI,
		"contentful": publishService.ProbeCMS,
	}, config.HealthProbeTimeout)

	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)
	publishHandler := handler.NewPublishHandler(publishService)
	healthHandler := handler.NewHealthHandler(healthService)

	router := transport.NewRouter(authService, authHandler, contentHandler, publishHandler, healthHandler)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "main", "action", "shutdown", "resource", "server", "result", "ok")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("start server: %v", err)
	}
}
