// Package main is the entry point for the AthleteMind API server.
//
// Its job is deliberately small: load configuration from the environment,
// build the logger, and hand everything to internal/server. All wiring and
// application logic lives in the imported packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/athletemind/backend/internal/server"
)

func main() {
	// A .env file is a development convenience; in production the
	// variables come from the process environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	// DB_PATH unset means the in-memory store: every restart begins from
	// the seed data, matching local development expectations. Set it to a
	// file path to persist through SQLite.
	dbPath := os.Getenv("DB_PATH")
	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("path", dbPath),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme"
		logger.Warn("ADMIN_PASSWORD not set, using default credentials",
			slog.String("username", adminUsername))
	}

	cfg := server.Config{
		Port:          port,
		DBPath:        dbPath,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
