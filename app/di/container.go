package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"tripshare/app/config"
	"tripshare/app/driver/postgres"
	"tripshare/app/driver/storage"
	"tripshare/app/port"
	"tripshare/app/rest"
	"tripshare/app/usecase"
	"tripshare/app/utils/metrics"
	"tripshare/app/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB         *postgres.DB
	PhotoStore *storage.R2Store

	// Metrics
	Registry  *prometheus.Registry
	Collector *metrics.Collector

	// Usecases
	AuthUsecase   port.AuthUsecase
	AccessUsecase port.TripAccessUsecase
	AdminUsecase  port.TripAdminUsecase
	PhotoUsecase  port.PhotoUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.PhotoStore, err = storage.NewR2Store(ctx, cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize photo store: %w", err)
	}

	hasher, err := security.NewTokenHasher(cfg.HashCost)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize token hasher: %w", err)
	}

	container.Registry = prometheus.NewRegistry()
	container.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	container.Collector = metrics.NewCollector(container.Registry)

	// Repositories
	tripRepository := postgres.NewTripRepository(container.DB.Pool(), logger)
	photoRepository := postgres.NewPhotoRepository(container.DB.Pool(), logger)
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUseCase(
		userRepository, hasher, cfg.JWTSecret, cfg.SessionTTL, logger)
	container.AccessUsecase = usecase.NewTripAccessUseCase(
		tripRepository, photoRepository, hasher, container.PhotoStore, container.Collector, logger)
	container.AdminUsecase = usecase.NewTripAdminUseCase(
		tripRepository, hasher, logger)
	container.PhotoUsecase = usecase.NewPhotoUseCase(
		tripRepository, photoRepository, container.PhotoStore, container.Collector, logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		AuthUsecase:    c.AuthUsecase,
		AccessUsecase:  c.AccessUsecase,
		AdminUsecase:   c.AdminUsecase,
		PhotoUsecase:   c.PhotoUsecase,
		DB:             c.DB,
		Collector:      c.Collector,
		Registry:       c.Registry,
		AllowedOrigins: c.Config.AllowedOrigins,
		EnableMetrics:  c.Config.EnableMetrics,
	})
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
