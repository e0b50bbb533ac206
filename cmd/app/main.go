package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"comanda/cmd"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)
	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		logger.Error("composition root failed", "error", err)
		os.Exit(1)
	}

	pollingManager := root.CreatePollingManager()
	if err := pollingManager.StartAll(); err != nil {
		logger.Error("starting synchronizers failed", "error", err)
		os.Exit(1)
	}
	defer pollingManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	root.CreateServer().RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file, using environment only")
	}

	return cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		StorageBackend: envOr("STORAGE_BACKEND", cmd.StorageRedis),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
