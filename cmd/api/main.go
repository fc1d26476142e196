package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wheatandcat/KAWKAW/internal/auth"
	"github.com/wheatandcat/KAWKAW/internal/config"
	"github.com/wheatandcat/KAWKAW/internal/delivery/events"
	httpDelivery "github.com/wheatandcat/KAWKAW/internal/delivery/http"
	"github.com/wheatandcat/KAWKAW/internal/delivery/http/handler"
	"github.com/wheatandcat/KAWKAW/internal/moderation"
	"github.com/wheatandcat/KAWKAW/internal/pkg/cache"
	"github.com/wheatandcat/KAWKAW/internal/pkg/database"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	cacheRepo "github.com/wheatandcat/KAWKAW/internal/repository/cache"
	"github.com/wheatandcat/KAWKAW/internal/repository/catalog"
	"github.com/wheatandcat/KAWKAW/internal/repository/postgres"
	"github.com/wheatandcat/KAWKAW/internal/usecase/product"
	"github.com/wheatandcat/KAWKAW/internal/usecase/review"

	_ "github.com/wheatandcat/KAWKAW/docs"
)

// @title KAWKAW Storefront API
// @version 1.0
// @description Storefront and back-office API for the KAWKAW demo shop: product catalog, moderated reviews and admin moderation tools.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @tag.name Products
// @tag.description Catalog endpoints

// @tag.name Reviews
// @tag.description Public review endpoints

// @tag.name Admin
// @tag.description Back-office endpoints (session-cookie gated)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting KAWKAW API...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}
	appLogger.Info("Connected to PostgreSQL and ran migrations")

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	reviewRepo := postgres.NewReviewRepository(db)
	redisCache := cacheRepo.NewRedisCache(
		redisClient,
		cfg.Cache.ReviewsListTTL,
		cfg.Cache.RatingSummaryTTL,
	)
	productCatalog := catalog.New()
	moderator := moderation.NewClient(cfg.Moderation, appLogger)
	sessions := auth.NewSessionManager(cfg.Admin)

	reviewService := review.NewService(reviewRepo, redisCache, moderator, publisher, appLogger)
	productService := product.NewService(productCatalog, redisCache, appLogger)

	reviewHandler := handler.NewReviewHandler(reviewService, appLogger)
	productHandler := handler.NewProductHandler(productService, appLogger)
	adminHandler := handler.NewAdminHandler(reviewService, sessions, cfg.Admin.PageLimit, appLogger)

	router := httpDelivery.NewRouter(productHandler, reviewHandler, adminHandler, sessions, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	reviewService.Shutdown(5 * time.Second)

	appLogger.Info("Server stopped gracefully")
}
