// Command server exposes the viceverser lemmatizer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/lemmatize?word=<word>&pos=<tag>
//	POST /api/lemmatize/tokens   body: {"tokens":[{"word":"...","pos":"..."}]}
//	GET  /api/priorities?pos=<tag>[&compound=true]
//	GET  /health
//	GET  /metrics
//
// Configuration is read from config/<ENV>.yaml (ENV defaults to local).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/viceverser"
	"github.com/cours-de-latin/viceverser/internal/config"
	logpkg "github.com/cours-de-latin/viceverser/internal/logger"
	"github.com/cours-de-latin/viceverser/internal/metrics"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting viceverser server",
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("data_dir", cfg.Data.Dir),
	)

	lem, err := viceverser.New(cfg.Data.Dir,
		viceverser.WithPriorities(cfg.Lemmatizer.BuildPriorities()),
		viceverser.WithSeparators(cfg.Lemmatizer.FeatureSeparators()),
		viceverser.WithLogger(logger.Named("lemmatizer")),
		viceverser.WithObserver(metrics.Observer{}),
	)
	if err != nil {
		logger.Fatal("Failed to load data", zap.Error(err))
	}
	logger.Info("Data loaded", zap.Int("seeded_entries", lem.CacheSize()))

	metrics.RegisterLemmatizerMetrics(lem.CacheSize)

	s := &server{lem: lem, maxTokens: cfg.HTTP.MaxTokens}
	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(s, cfg.HTTP, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newRouter wires the middleware chain and the routes.
func newRouter(s *server, cfg config.HTTPConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)
	r.Use(metrics.Middleware())

	r.Get("/api/lemmatize", s.handleLemmatize)
	r.Post("/api/lemmatize/tokens", s.handleLemmatizeTokens)
	r.Get("/api/priorities", s.handlePriorities)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
