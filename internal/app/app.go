package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"monolith-service/internal/config"
	"monolith-service/internal/db"
	"monolith-service/internal/messaging"
	"monolith-service/internal/resource"
	"monolith-service/internal/telemetry"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
)

type App struct {
	config    *config.Config
	db        *bun.DB
	publisher resource.Publisher
	telemetry *telemetry.Telemetry
	server    *http.Server
	logger    *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing application", "env", cfg.Env, "version", Version)

	tel, err := telemetry.Init(ctx, cfg.Telemetry, ServiceName, Version, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := tel.Metrics.DB().RegisterDB(database.DB, otel.Meter(ServiceName)); err != nil {
		logger.Warn("failed to register database metrics", "error", err)
	}

	if err := db.RunMigrations(ctx, database, Models()...); err != nil {
		database.Close()
		return nil, err
	}

	publisher, err := messaging.NewPublisher(cfg.Events, logger)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}
	publisher = messaging.Instrument(publisher, tel.Metrics.Broker())

	router, err := NewRouter(Dependencies{
		DB:          database,
		Logger:      logger,
		Metrics:     tel.Metrics,
		Publisher:   publisher,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	if err != nil {
		database.Close()
		return nil, err
	}

	app := &App{
		config:    cfg,
		db:        database,
		publisher: publisher,
		telemetry: tel,
		logger:    logger,
		server: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  seconds(cfg.Server.ReadTimeout, 15),
			WriteTimeout: seconds(cfg.Server.WriteTimeout, 15),
			IdleTimeout:  seconds(cfg.Server.IdleTimeout, 60),
		},
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run blocks serving HTTP until Shutdown is called.
func (a *App) Run() error {
	a.logger.Info("HTTP server starting", "port", a.config.Server.Port)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Shutdown drains the HTTP server, then closes the publisher, telemetry and database.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event publisher: %w", err))
		}
	}

	if err := a.telemetry.Shutdown(ctx, a.logger); err != nil {
		errs = append(errs, err)
	}

	if err := db.Close(a.db); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	return errors.Join(errs...)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Migrate creates the tables and returns without serving.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("running migrations", "driver", cfg.Database.Driver)
	return db.RunMigrations(ctx, database, Models()...)
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}
