package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/planventure/planventure-api/internal/api/handler"
	"github.com/planventure/planventure-api/internal/api/middleware"
	"github.com/planventure/planventure-api/internal/core/ports"
	"github.com/planventure/planventure-api/internal/core/service"
)

// Deps carries everything the router needs. Repositories are injected as
// interfaces so tests can wire in-memory implementations without a database.
type Deps struct {
	Users ports.UserRepository
	Trips ports.TripRepository
	// DB is pinged by the readiness probe; nil disables the probe's DB check
	// (it then always reports ready).
	DB handler.Pinger

	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	CORSOrigins []string

	Logger zerolog.Logger
	// Metrics enables the echoprometheus middleware and /metrics endpoint.
	// Off by default in tests: the middleware registers collectors with the
	// global prometheus registry and cannot be installed twice per process.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if len(deps.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: deps.CORSOrigins,
			AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("planventure"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Dependencies ---
	hasher := service.NewBcryptHasher(deps.BcryptCost)
	tokens := service.NewJWTTokenService(deps.JWTSecret, deps.TokenTTL)
	authService := service.NewAuthService(deps.Users, hasher, tokens, deps.Logger)
	tripService := service.NewTripService(deps.Trips, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	authGate := middleware.Auth(tokens, deps.Users)

	// --- Public routes ---
	e.GET("/", handler.Welcome)

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if deps.DB != nil {
		readiness := handler.NewReadinessHandler(deps.DB)
		e.GET("/health/ready", readiness.Readiness) // readiness – is the store up?
	}

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	trips := e.Group("/api", authGate)
	trips.GET("/trips", tripHandler.List)
	trips.POST("/trips", tripHandler.Create)
	trips.GET("/trips/:id", tripHandler.Get)
	trips.PUT("/trips/:id", tripHandler.Update)
	trips.DELETE("/trips/:id", tripHandler.Delete)

	return e
}
