package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/pricewise/catalog-api/internal/api/handler"
	"github.com/pricewise/catalog-api/internal/api/middleware"
	"github.com/pricewise/catalog-api/internal/core/service"
	"github.com/pricewise/catalog-api/internal/infrastructure/config"
	"github.com/pricewise/catalog-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(catalogRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	forecastHandler := handler.NewForecastHandler(catalogService)
	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes (public) ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)

	// --- Catalog routes (bearer token) ---
	e.POST("/api/products", catalogHandler.Create, auth)
	e.GET("/api/products", catalogHandler.List, auth)
	e.GET("/api/products/category", catalogHandler.ListByCategory, auth)
	e.GET("/api/products/search", catalogHandler.Search, auth)
	e.DELETE("/api/products/:id", catalogHandler.Delete, auth)
	e.GET("/api/categories", catalogHandler.ListCategories, auth)

	// Update lives outside /api for compatibility with the existing front-end.
	e.PUT("/products/:id", catalogHandler.Update, auth)

	// --- Forecast (public) ---
	e.GET("/api/demand-forecast", forecastHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
