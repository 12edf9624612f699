package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contact-api/internal/config"
	"github.com/noah-isme/contact-api/internal/database"
	"github.com/noah-isme/contact-api/internal/handler"
	"github.com/noah-isme/contact-api/internal/middleware"
	"github.com/noah-isme/contact-api/internal/models"
	"github.com/noah-isme/contact-api/internal/repository"
	"github.com/noah-isme/contact-api/internal/router"
	"github.com/noah-isme/contact-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Without redis the service still accepts submissions, just without
	// the duplicate window.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, submission dedupe disabled")
	}

	contactRepo := repository.NewContactRepository(db)

	contactService := service.NewContactService(contactRepo, redisClient, logger)
	adminContactService := service.NewAdminContactService(contactRepo, logger)

	contactHandler := handler.NewContactHandler(contactService, logger)
	adminContactHandler := handler.NewAdminContactHandler(adminContactService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler:      contactHandler,
		AdminContactHandler: adminContactHandler,
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
		RateLimit:           middleware.RateLimit("contact_form", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
