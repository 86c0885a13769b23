// Package server wires configuration, storage and transports into the
// hotelbook API process and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hotelbook/internal/logging"
	"github.com/dmitrijs2005/hotelbook/internal/server/config"
	"github.com/dmitrijs2005/hotelbook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hotelbook/internal/server/rest"
	"github.com/dmitrijs2005/hotelbook/internal/server/services"

	gs "github.com/dmitrijs2005/hotelbook/internal/server/grpc"
)

// runner is a transport that serves until its context is cancelled.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   runner
	health runner
}

// NewApp opens the database, applies migrations and builds the services
// and transports. The caller owns the returned App and must call Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	images, err := services.NewS3ImageStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("image store init error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	hs := services.NewHotelService(db, rm, images)

	app := &App{
		config: c,
		logger: logger,
		db:     db,
		http:   rest.NewServer(c, logger, us, hs),
	}
	if c.EndpointAddrHealth != "" {
		app.health = gs.NewHealthServer(c.EndpointAddrHealth, logger, db, c.HealthCheckInterval)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// start runs r and cancels the whole app if it fails.
func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or a transport fails.
// The database is closed once every transport has stopped.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "http", app.http)
	}()

	if app.health != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.start(ctx, cancelFunc, "grpc_health", app.health)
		}()
	}

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err.Error())
		}
	}

	app.logger.Info(ctx, "App stopped")
}
