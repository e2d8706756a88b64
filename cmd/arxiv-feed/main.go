package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/arXiv/arxiv-feed/internal/config"
	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/kv/redis"
	logpkg "github.com/arXiv/arxiv-feed/internal/logger"
	"github.com/arXiv/arxiv-feed/internal/metrics"
	"github.com/arXiv/arxiv-feed/internal/repository/feedcache"
	"github.com/arXiv/arxiv-feed/internal/serialize"
	"github.com/arXiv/arxiv-feed/internal/store/sqlite"
	"github.com/arXiv/arxiv-feed/internal/taxonomy"
	chiTransport "github.com/arXiv/arxiv-feed/internal/transport/chi"
	feeduc "github.com/arXiv/arxiv-feed/internal/usecase/feed"
	listinguc "github.com/arXiv/arxiv-feed/internal/usecase/listing"
	"github.com/arXiv/arxiv-feed/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting arxiv-feed server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_dsn", cfg.Database.DSN),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open announcement database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Ping(ctx); err != nil {
		logger.Fatal("Announcement database not ready", zap.Error(err))
	}
	logger.Info("Connected to announcement database")

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Invalid feed timezone", zap.Error(err))
	}

	// Register feed metrics explicitly (no init())
	metrics.RegisterFeedMetrics()

	idx := taxonomy.New()
	serializer := serialize.New(cfg.Feed.BaseServer)

	listingSvc := listinguc.New(db, logger).WithResultLimit(cfg.Feed.ResultLimit)
	feedSvc := feeduc.New(idx, listingSvc, serializer, logger).
		WithWindow(cfg.Feed.Days, location).
		WithDocumentsMetric(metrics.FeedDocuments)

	if cfg.Cache.Enabled {
		kvStore, err := redis.NewStore(redis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer kvStore.Close()
		feedSvc.WithCache(feedcache.New(kvStore, metrics.FeedCacheTotal, logger))
		logger.Info("Feed response cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	server := chiTransport.NewServer(feedSvc, serializer, db, logger)

	r := chi.NewRouter()
	r.Use(feedRecoverer(serializer, logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// feedRecoverer is a recovery middleware that returns an error feed
// instead of a plain text stacktrace.
func feedRecoverer(serializer *serialize.Serializer, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					feed := serializer.ErrorFeed(
						"internal error", domain.FeedVersionRSS20, time.Now().UTC(),
					)
					w.Header().Set("Content-Type", feed.ContentType)
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write(feed.Body)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
