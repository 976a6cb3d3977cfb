// Package main is the entry point for the WanderWise admin API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/wanderwise/backend/internal/auth"
	"github.com/wanderwise/backend/internal/config"
	"github.com/wanderwise/backend/internal/handler"
	"github.com/wanderwise/backend/internal/logging"
	"github.com/wanderwise/backend/internal/repo"
	"github.com/wanderwise/backend/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A missing .env is normal in containers; real env vars win over it.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger, logFile := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFile)
	defer logFile.Close()
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	users := repo.NewUserRepo(pool)
	accounts := repo.NewAccountRepo(pool)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(users, accounts, tokens, logger)

	srv := handler.NewServer(handler.Deps{
		Travelers: service.NewTravelerService(users, logger),
		Accounts:  service.NewAccountService(accounts),
		Users:     service.NewUserService(users, repo.NewTransactor(pool)),
		SignIn:    authSvc,
		DB:        pool,
		Log:       logger,
	})

	router := handler.NewRouter(srv, authSvc, handler.RouterOptions{
		Log:                logger,
		CORSOrigins:        cfg.CORSOrigins,
		MaxBodyBytes:       cfg.MaxBodyBytes,
		ClaimPolicy:        cfg.ClaimPolicy,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
	})
	slog.Info("claim policy", "policy", cfg.ClaimPolicy)

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
