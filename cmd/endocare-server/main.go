package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"endocare/internal/api"
	"endocare/internal/config"
	"endocare/internal/db"
	"endocare/internal/logging"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zlog, err := logging.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		zlog.Error("database init failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(database, zlog)

	app := fiber.New(fiber.Config{
		AppName:               "EndoCare",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Error("server shutdown failed", "error", err)
		}
	}()

	zlog.Info("listening", "port", cfg.Port, "db", cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
