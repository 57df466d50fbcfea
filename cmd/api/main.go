// Package main is the entry point for the Receber Inter API server.
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

	"github.com/receber-inter/backend/config"
	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/infra/db"
	"github.com/receber-inter/backend/internal/infra/dependency"
	"github.com/receber-inter/backend/internal/integration/adapters"
	"github.com/receber-inter/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Receber Inter API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.ClientModel{},
		&model.InvoiceModel{},
		&model.StatementEntryModel{},
		&model.DescriptionAliasModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the bank client. Missing credentials are tolerated so the
	// reconciliation flows keep working without the Inter certificate.
	var bankService adapter.BankChargeService
	interClient, err := adapters.NewInterClient(adapters.InterConfig{
		BaseURL:       cfg.Inter.BaseURL,
		ClientID:      cfg.Inter.ClientID,
		ClientSecret:  cfg.Inter.ClientSecret,
		AccountNumber: cfg.Inter.AccountNumber,
		CertPath:      cfg.Inter.CertPath,
		KeyPath:       cfg.Inter.KeyPath,
	})
	if err != nil {
		slog.Warn("Inter client not available, invoice issuance disabled", "error", err)
		bankService = adapters.UnavailableBankService{}
	} else {
		bankService = interClient
	}

	// Wire dependencies and setup router
	injector := dependency.NewInjector(cfg, database.DB(), bankService, database.HealthCheck)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
