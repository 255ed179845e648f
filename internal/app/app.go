package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/solilop/solilop-backend/internal/adapter/postgres"
	thoughtrepo "github.com/solilop/solilop-backend/internal/adapter/postgres/thought"
	userrepo "github.com/solilop/solilop-backend/internal/adapter/postgres/user"
	whisperrepo "github.com/solilop/solilop-backend/internal/adapter/postgres/whisper"
	"github.com/solilop/solilop-backend/internal/adapter/redis"
	"github.com/solilop/solilop-backend/internal/auth"
	"github.com/solilop/solilop-backend/internal/config"
	"github.com/solilop/solilop-backend/internal/metrics"
	"github.com/solilop/solilop-backend/internal/sentiment"
	authsvc "github.com/solilop/solilop-backend/internal/service/auth"
	thoughtsvc "github.com/solilop/solilop-backend/internal/service/thought"
	whispersvc "github.com/solilop/solilop-backend/internal/service/whisper"
	"github.com/solilop/solilop-backend/internal/transport/middleware"
	"github.com/solilop/solilop-backend/internal/transport/rest"
)

const limiterSweepInterval = time.Minute

// Run loads configuration, connects to PostgreSQL and Redis, and serves the
// HTTP API until ctx is cancelled. Shutdown drains in-flight requests for at
// most server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close", slog.String("error", err.Error()))
		}
	}()

	clock := clockwork.NewRealClock()

	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)
	whisperMetrics := metrics.NewWhisperMetrics(reg)

	users := userrepo.New(pool)
	thoughts := thoughtrepo.New(pool)
	whispers := whisperrepo.New(pool)
	sessions := redis.NewSessionRepo(rdb, cfg.Redis.KeyPrefix)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL, clock)

	authService := authsvc.NewService(logger, users, sessions, jwtManager, clock, cfg.Auth)
	matcher := whispersvc.NewMatcher(logger, thoughts, whispers, clock, whispersvc.RandomPicker(), whisperMetrics, cfg.Whisper)
	thoughtService := thoughtsvc.NewService(logger, thoughts, sentiment.NewClassifier(), matcher, clock)
	whisperService := whispersvc.NewService(logger, whispers)

	authLimiter := middleware.NewRateLimiter(clock, cfg.RateLimit.AuthPerMinute, limiterSweepInterval)
	defer authLimiter.Stop()
	apiLimiter := middleware.NewRateLimiter(clock, cfg.RateLimit.APIPerMinute, limiterSweepInterval)
	defer apiLimiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:   logger,
		Auth:     rest.NewAuthHandler(authService, logger),
		Thoughts: rest.NewThoughtHandler(thoughtService, logger),
		Whispers: rest.NewWhisperHandler(whisperService, logger),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: pool.Ping},
			rest.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		Metrics:      metrics.Handler(reg),
		Authenticate: middleware.Auth(authService, logger),
		CORS:         middleware.CORS(cfg.CORS),
		HTTPMetrics:  httpMetrics.Middleware,
		AuthLimit:    authLimiter.Middleware,
		APILimit:     apiLimiter.Middleware,

		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
	})

	srv := newHTTPServer(cfg.Server, handler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
