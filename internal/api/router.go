package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/globalpulse24/newsroom/docs"
	"github.com/globalpulse24/newsroom/internal/api/handler"
	"github.com/globalpulse24/newsroom/internal/api/middleware"
	"github.com/globalpulse24/newsroom/internal/core/domain"
	"github.com/globalpulse24/newsroom/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs; the composition root builds it.
type Dependencies struct {
	Auth     ports.AuthService
	Articles ports.ArticleService
	Earnings ports.EarningsService
	Tokens   ports.TokenVerifier

	// AdminSecret guards the moderation routes via X-Admin-Token.
	AdminSecret string

	// Readiness is optional; /health/ready is only mounted when set.
	Readiness *handler.HealthDependenciesHandler

	// Metrics mounts the Prometheus middleware and /metrics.
	Metrics bool

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("newsroom"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	articleHandler := handler.NewArticleHandler(deps.Articles)
	earningsHandler := handler.NewEarningsHandler(deps.Earnings)

	bearer := middleware.Auth(deps.Tokens)
	adminSecret := middleware.AdminSecret(deps.AdminSecret)

	// --- Auth ---
	e.POST("/token", authHandler.Token)

	// --- Public news ---
	news := e.Group("/news")
	news.POST("/submit", articleHandler.Submit)
	news.GET("/live", articleHandler.Live)
	news.GET("/earnings", earningsHandler.Own, bearer)

	// --- Admin ---
	admin := e.Group("/admin")
	admin.GET("/pending", articleHandler.Pending, adminSecret)
	admin.PUT("/approve/:id", articleHandler.Approve, adminSecret)
	admin.GET("/payouts", earningsHandler.Payouts, bearer, middleware.RBAC(domain.RoleAdmin))

	// --- Health checks (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
