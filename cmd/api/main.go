package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/advithialva/expenso/internal/config"
	"github.com/advithialva/expenso/internal/database"
	expensoHttp "github.com/advithialva/expenso/internal/http"
	txHandler "github.com/advithialva/expenso/internal/http/transaction"
	"github.com/advithialva/expenso/internal/ledger"
	"github.com/advithialva/expenso/internal/ledger/store"
	"github.com/advithialva/expenso/internal/ratelimit"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Init(context.Background(), db); err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	limiter := ratelimit.NewFixedWindow(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	ledgerService := ledger.NewService(store.New(db))

	router := expensoHttp.New(limiter, txHandler.NewHandler(ledgerService))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("shutting down", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting server", "port", cfg.App.Port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
