package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"mbti-social/internal/config"
	"mbti-social/internal/gateway"
	"mbti-social/internal/handler"
	"mbti-social/internal/middleware"
	"mbti-social/internal/repository"
	"mbti-social/internal/service"
	"mbti-social/internal/service/ratelimit"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger(cfg)
	if envErr != nil {
		log.Info("No .env file found, using environment variables")
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.WithError(err).Warn("Failed to connect to Redis; realtime delivery disabled, limiter and outbox kept in memory")
		redis = nil
	} else {
		defer redis.Close()
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, cfg, log)
	handlers := handler.NewHandlers(services, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go services.Outbox.Run(ctx)
	if mem, ok := services.RateLimiter.(*ratelimit.MemoryLimiter); ok {
		mem.StartJanitor(ctx, 5*time.Minute)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	var gw *gateway.Server
	if redis != nil {
		gw = gateway.NewServer(services.Auth, gateway.NewRedisSource(redis), cfg.CORSOrigins, log)
	}

	setupRoutes(app, handlers, services.Auth, services.RateLimiter, gw, log)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		app.ShutdownWithContext(shutdownCtx)
	}()

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
