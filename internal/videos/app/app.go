package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/dancereel/internal/videos/blobs"
	httpapi "github.com/aussiebroadwan/dancereel/internal/videos/http"
	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/internal/videos/store/drivers/postgres"
	"github.com/aussiebroadwan/dancereel/internal/videos/store/drivers/sqlite"
	"github.com/aussiebroadwan/dancereel/pkg/cryptox"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application owns the video service's dependencies: the database, the
// upload directory, the services and the HTTP server. Everything is built in
// New; nothing is package-global.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	blobs *blobs.Disk

	identityService *service.IdentityService
	ingestService   *service.IngestService
	catalogService  *service.CatalogService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "videos-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	disk, err := blobs.NewDisk(cfg.UploadDir)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize upload directory: %w", err)
	}
	app.blobs = disk

	if err := app.initServices(pepper); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("videos service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
		"upload_dir", app.blobs.Dir(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down videos service...")

	// Give in-flight uploads and streams a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("videos service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
			app.cfg.DatabaseFile,
		)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices wires the identity, ingest and catalog services
func (app *Application) initServices(pepper string) error {
	sealer, err := cryptox.NewTokenSealer(pepper)
	if err != nil {
		return fmt.Errorf("failed to initialize token sealer: %w", err)
	}

	app.identityService = &service.IdentityService{
		Store:  app.db,
		Hasher: cryptox.NewPasswordHasher(pepper),
		Sealer: sealer,
	}

	app.ingestService = &service.IngestService{
		Store:    app.db,
		Blobs:    app.blobs,
		Identity: app.identityService,
	}

	app.catalogService = &service.CatalogService{
		Store: app.db,
		Blobs: app.blobs,
	}

	return nil
}

// initHTTP builds the router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.blobs, app.logger)
	router.IdentityService = app.identityService
	router.IngestService = app.ingestService
	router.CatalogService = app.catalogService
	router.MaxUploadBytes = app.cfg.MaxUploadBytes
	router.ApplyRoutes()

	app.router = router

	// No WriteTimeout: /play streams arbitrarily large files.
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
