package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/clock"
	"github.com/amaumene/escort/internal/config"
	"github.com/amaumene/escort/internal/handler"
	"github.com/amaumene/escort/internal/service"
	"github.com/amaumene/escort/internal/storage"
	"github.com/amaumene/escort/internal/views"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
)

type App struct {
	cfg    *config.Config
	store  *bolthold.Store
	server *fiber.App
	seed   *service.SeedService
}

func New(cfg *config.Config) (*App, error) {
	store, err := storage.Open(cfg.DBPath(), cfg.DBFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	app := &App{
		cfg:   cfg,
		store: store,
	}
	app.wireServices()

	return app, nil
}

func (a *App) wireServices() {
	profiles := storage.NewProfileRepository(a.store)
	locations := storage.NewLocationRepository(a.store)
	stories := storage.NewStoryRepository(a.store)

	catalog := service.NewCatalogService(profiles, stories, clock.NewClock())
	locationSvc := service.NewLocationService(locations)
	a.seed = service.NewSeedService(profiles, locations, stories)

	httpHandler := handler.NewHTTPHandler(a.cfg, catalog, locationSvc)
	a.server = handler.NewServer(views.New(a.cfg.TemplateDir), a.cfg.HTTPTimeout)
	httpHandler.RegisterRoutes(a.server)
}

func (a *App) Seed() *service.SeedService {
	return a.seed
}

func (a *App) Store() *bolthold.Store {
	return a.store
}

// Run imports the configured seed file, serves HTTP and blocks until ctx is
// cancelled or a termination signal arrives.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.SeedFile != "" {
		if _, err := a.seed.ImportFile(ctx, a.cfg.SeedFile); err != nil {
			a.Close()
			return fmt.Errorf("seeding from %s: %w", a.cfg.SeedFile, err)
		}
	}

	errCh := make(chan error, 1)
	go a.startServer(errCh)

	return a.waitForShutdown(ctx, errCh)
}

func (a *App) startServer(errCh chan<- error) {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.ServerPort,
	}).Info("http server listening")

	if err := a.server.Listen(a.cfg.ServerPort); err != nil {
		errCh <- err
	}
}

func (a *App) waitForShutdown(ctx context.Context, errCh <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var serveErr error
	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	case serveErr = <-errCh:
		log.WithFields(log.Fields{
			"component": "server",
			"error":     serveErr,
		}).Error("http server failed")
	}

	if err := a.Shutdown(); err != nil {
		return err
	}
	return serveErr
}

func (a *App) Shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
	}

	return a.Close()
}

func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		log.WithFields(log.Fields{
			"component": "database",
			"error":     err,
		}).Error("database close failed")
		return err
	}
	return nil
}
