package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"pkcegen/internal/api"
	"pkcegen/internal/auth"
	"pkcegen/internal/collector"
	"pkcegen/internal/config"
	"pkcegen/internal/datecodec"
	"pkcegen/internal/pkce"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the PKCE HTTP API and metrics",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Setup logging
	logger := newLogger(cmd.OutOrStdout(), cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting pkcegen", "version", version, "listen_addr", cfg.ListenAddr, "octets", cfg.OctetCount)

	generator := pkce.NewGenerator(pkce.NewCryptoSource())

	var authClient *auth.AuthClient
	if cfg.OAuth.Enabled() {
		authClient = auth.NewAuthClient(cfg.OAuth, generator, logger)
		logger.Info("OAuth authorization requests enabled", "client_id", cfg.OAuth.ClientID, "auth_url", cfg.OAuth.AuthURL)
	}

	// Create and register Prometheus collector
	pkceCollector := collector.NewPKCECollector()
	prometheus.MustRegister(pkceCollector)

	apiServer := api.NewServer(api.Options{
		Generator:  generator,
		AuthClient: authClient,
		Collector:  pkceCollector,
		Dates:      datecodec.New(),
		Logger:     logger,
		OctetCount: cfg.OctetCount,
	})

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", healthHandler)
	apiServer.Register(mux)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server error", "error", err)
		return err
	case <-sigChan:
	}

	logger.Info("Shutting down gracefully...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}

	logger.Info("pkcegen stopped")
	return nil
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "OK\n")
}
