/*
Package main is the entry point for the CarAI server.

It is responsible for loading configuration, initializing the global logging
system, selecting the credential store (in-memory or PostgreSQL), wiring the
model client and session manager, and gracefully handling operating system
interrupt signals (SIGINT, SIGTERM) for a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"carai/internal/app/auth"
	"carai/internal/app/db"
	"carai/internal/app/llm"
	"carai/internal/app/session"
	"carai/internal/configs"
	"carai/internal/handler"
	"carai/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("model", cfg.LLMModel).
		Bool("format_replies", cfg.FormatReplies).
		Bool("durable_store", cfg.DatabaseDSN != "").
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credential store: PostgreSQL with bcrypt when a DSN is configured,
	// otherwise in-memory with the seeded bootstrap account.
	var (
		store  auth.CredentialStore
		hasher auth.Hasher
		pool   *pgxpool.Pool
	)

	if cfg.DatabaseDSN != "" {
		pool, err = db.NewPool(cfg.DatabaseDSN)
		if err != nil {
			logx.Fatal(err, "Failed to connect to database")
		}
		defer pool.Close()

		store = auth.NewPostgresStore(pool)
		hasher = auth.BcryptHasher{}
	} else {
		memStore := auth.NewMemoryStore()
		memHasher := auth.DigestHasher{}

		bootstrapHash, err := memHasher.Hash(cfg.BootstrapPassword)
		if err != nil {
			logx.Fatal(err, "Failed to hash bootstrap password")
		}
		if err := memStore.Create(ctx, cfg.BootstrapUsername, bootstrapHash); err != nil {
			logx.Fatal(err, "Failed to seed bootstrap account")
		}

		logx.Info("In-memory credential store seeded", "bootstrap_username", cfg.BootstrapUsername)

		store = memStore
		hasher = memHasher
	}

	authManager := auth.NewManager(store, hasher)

	modelClient := llm.NewHTTPClient(llm.HTTPConfig{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})

	sessions := session.NewManager(modelClient, cfg.FormatReplies)

	// Setup HTTP server and routes
	router := handler.Router(&handler.AppDeps{
		Auth:     authManager,
		Sessions: sessions,
		Config:   cfg,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		// Message turns block on the model call, so writes get the model
		// timeout plus headroom.
		WriteTimeout: cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("CarAI Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	sessions.Shutdown()

	logx.Info("Server gracefully stopped.")
}
