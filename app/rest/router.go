package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripshare/app/port"
	"tripshare/app/rest/handlers"
	custommw "tripshare/app/rest/middleware"
	"tripshare/app/utils/metrics"
	"tripshare/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AuthUsecase    port.AuthUsecase
	AccessUsecase  port.TripAccessUsecase
	AdminUsecase   port.TripAdminUsecase
	PhotoUsecase   port.PhotoUsecase
	DB             handlers.HealthChecker
	Collector      *metrics.Collector
	Registry       *prometheus.Registry
	AllowedOrigins []string
	EnableMetrics  bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	v := validator.New()

	tripHandler := handlers.NewTripHandler(config.AccessUsecase, config.AdminUsecase, v, config.Logger)
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, v, config.Logger)
	photoHandler := handlers.NewPhotoHandler(config.PhotoUsecase, v, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DB, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(custommw.CORS(config.AllowedOrigins))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(custommw.Metrics(config.Collector))
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware.RequireAuth())

	// Public trip read path. OptionalAuth feeds the admin bypass; anonymous
	// viewers go through the share-token gate.
	v1.GET("/trips/:slug", tripHandler.GetTrip, authMiddleware.OptionalAuth())

	// Administrative management lives under its own prefix so the public
	// slug route and the ID-based mutations never share a path position.
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	admin.POST("/trips", tripHandler.CreateTrip)
	admin.GET("/trips", tripHandler.ListTrips)
	admin.PUT("/trips/:id/protection", tripHandler.UpdateProtection)
	admin.DELETE("/trips/:id", tripHandler.DeleteTrip)
	admin.POST("/trips/:id/photos", photoHandler.RegisterPhoto)
	admin.DELETE("/photos/:id", photoHandler.DeletePhoto)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{})))
	}

	return e
}
