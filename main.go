package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"car-rental/config"
	"car-rental/database"
	"car-rental/errors"
	"car-rental/handlers"
	"car-rental/router"
	"car-rental/token"
)

func main() {
	configPath := pflag.String("config", "", "optional YAML config file")
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("no .env file found, using environment variables", "path", *envFile)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := database.Connect(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	tokens := token.NewService(cfg.TokenSecret, cfg.TokenExpiry)
	cookie := handlers.CookieOptions{SameSite: fiber.CookieSameSiteStrictMode}
	if cfg.IsProduction() {
		cookie = handlers.CookieOptions{Secure: true, SameSite: fiber.CookieSameSiteNoneMode}
	}

	app := fiber.New(fiber.Config{ErrorHandler: errors.Handler})
	router.SetupRoutes(app, router.Deps{
		Handler:      handlers.New(store, store, tokens, cookie),
		Tokens:       tokens,
		AllowOrigins: cfg.AllowOrigins,
		RateLimit:    cfg.RateLimit,
		RateBurst:    cfg.RateBurst,
	})

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		slog.Error("database disconnect failed", "error", err)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
