package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/safeglow/backend/config"
	httpDelivery "github.com/safeglow/backend/internal/delivery/http"
	"github.com/safeglow/backend/internal/domain"
	"github.com/safeglow/backend/internal/infrastructure/cache"
	"github.com/safeglow/backend/internal/infrastructure/cse"
	"github.com/safeglow/backend/internal/infrastructure/token"
	"github.com/safeglow/backend/internal/infrastructure/userstore"
	"github.com/safeglow/backend/internal/usecase"
)

const (
	startupRetries  = 5
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SafeGlow Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	ctx := context.Background()

	// Initialize infrastructure dependencies
	cacheRepo, closeCache, err := newCache(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer closeCache()

	searchClient := cse.NewClient(cse.ClientConfig{
		APIKey:            cfg.Search.APIKey,
		EngineID:          cfg.Search.CX,
		BaseURL:           cfg.Search.BaseURL,
		Timeout:           cfg.Search.Timeout,
		RequestsPerSecond: cfg.Search.RequestsPerSecond,
		Burst:             cfg.Search.Burst,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		searchClient.SetDebug(true)
		log.Printf("Search client debug mode enabled")
	}

	if cfg.SearchConfigured() {
		log.Printf("Search API configured: %s", cfg.Search.BaseURL)
	} else {
		log.Printf("WARNING: search credentials NOT CONFIGURED - recommend requests will fail (set SAFEGLOW_SEARCH_API_KEY and SAFEGLOW_SEARCH_CX)")
	}

	users, closeUsers, err := newUserStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize user store: %v", err)
	}
	defer closeUsers()

	tokens := token.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Initialize usecase layer
	recommendationService := usecase.NewRecommendationService(
		cacheRepo,
		searchClient,
		usecase.RecommendationServiceConfig{
			CacheEnabled:       cfg.Cache.Enabled,
			CacheTTL:           cfg.Cache.TTL,
			Workers:            cfg.Recommend.Workers,
			EnableDebugLogging: cfg.Recommend.EnableDebugLogging,
		},
	)

	quizService, err := usecase.NewQuizService()
	if err != nil {
		log.Fatalf("Failed to load quiz: %v", err)
	}

	authService := usecase.NewAuthService(users, tokens, cfg.Auth.BcryptCost)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService, quizService, authService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// newCache builds the configured cache. Redis is pinged with retries so the
// server does not start against an unreachable cache.
func newCache(ctx context.Context, cfg *config.Config) (domain.CacheRepository, func(), error) {
	log.Printf("Cache: enabled=%v type=%s ttl=%s", cfg.Cache.Enabled, cfg.Cache.Type, cfg.Cache.TTL)

	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		if err := redisCache.Ping(ctx, startupRetries); err != nil {
			redisCache.Close()
			return nil, nil, err
		}
		return redisCache, func() { redisCache.Close() }, nil
	}

	memoryCache := cache.NewMemoryCache()
	return memoryCache, func() { memoryCache.Close() }, nil
}

// newUserStore builds the configured user repository
func newUserStore(ctx context.Context, cfg *config.Config) (domain.UserRepository, func(), error) {
	log.Printf("User store: %s", cfg.Database.Type)

	if cfg.Database.Type == "postgres" {
		store, err := userstore.OpenPostgres(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Connect(ctx, startupRetries); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}

	return userstore.NewMemoryStore(), func() {}, nil
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
