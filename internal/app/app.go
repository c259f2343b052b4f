// Package app is the composition root: it opens the stores, builds the
// services, and owns the HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/globalpulse24/newsroom/internal/api"
	"github.com/globalpulse24/newsroom/internal/api/handler"
	"github.com/globalpulse24/newsroom/internal/core/ports"
	"github.com/globalpulse24/newsroom/internal/core/service"
	mongostore "github.com/globalpulse24/newsroom/internal/infrastructure/db/mongo"
	redisstore "github.com/globalpulse24/newsroom/internal/infrastructure/db/redis"
	"github.com/globalpulse24/newsroom/internal/infrastructure/security"
	"github.com/globalpulse24/newsroom/internal/pkg/config"
)

const (
	appName         = "newsroom"
	shutdownTimeout = 10 * time.Second
	idempotencyTTL  = 24 * time.Hour
)

// App wires the HTTP API to its stores.
type App struct {
	echo  *echo.Echo
	mongo *mongo.Client
	redis *goredis.Client
	addr  string
	log   zerolog.Logger
}

// New connects to MongoDB (and Redis when configured), ensures indexes, and
// builds the router. Any failure releases what was already opened.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	tokens, err := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  appName,
	})
	if err != nil {
		return nil, err
	}
	a := &App{mongo: client, addr: ":" + cfg.Port, log: log}

	users := mongostore.NewAuthRepository(db)
	articles := mongostore.NewArticleRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		a.Close(ctx)
		return nil, err
	}
	if err := articles.EnsureIndexes(ctx); err != nil {
		a.Close(ctx)
		return nil, err
	}

	var idem ports.IdempotencyStore
	if cfg.Redis.Enabled() {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.redis = rdb
		idem = redisstore.NewIdempotencyStore(rdb, idempotencyTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("submission idempotency enabled")
	}

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	a.echo = api.NewRouter(api.Dependencies{
		Auth:        service.NewAuthService(users, hasher, tokens, log),
		Articles:    service.NewArticleService(articles, idem, log),
		Earnings:    service.NewEarningsService(articles, cfg.Earnings.Rate),
		Tokens:      tokens,
		AdminSecret: cfg.Auth.AdminSecret,
		Readiness:   handler.NewHealthDependenciesHandler(db, a.redis, log),
		Metrics:     true,
		Logger:      log,
	})

	return a, nil
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.echo
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.addr).Msg("http server listening")
		if err := a.echo.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases the store handles. Safe to call on a partially built App.
func (a *App) Close(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn().Err(err).Msg("redis close")
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.log.Warn().Err(err).Msg("mongo disconnect")
		}
	}
}

// ProvisionAdmin creates the admin account if it does not exist yet. It
// reports whether a new account was created.
func ProvisionAdmin(ctx context.Context, cfg *config.ProvisionConfig, log zerolog.Logger, username, password string) (bool, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  appName,
	})
	if err != nil {
		return false, err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	users := mongostore.NewAuthRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return false, err
	}

	// Provisioning never issues tokens.
	auth := service.NewAuthService(users, security.NewBcryptHasher(bcrypt.DefaultCost), nil, log)
	return auth.ProvisionAdmin(ctx, username, password)
}
