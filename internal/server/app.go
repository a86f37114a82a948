// Package server wires the key lifecycle service together: storage, secret
// issuing, metrics, audit export and the gRPC endpoint. It also handles
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/logging"
	"github.com/dmitrijs2005/keykeeper/internal/server/config"
	"github.com/dmitrijs2005/keykeeper/internal/server/keycodec"
	"github.com/dmitrijs2005/keykeeper/internal/server/metrics"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/inmemory"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/keykeeper/internal/server/services"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"

	gs "github.com/dmitrijs2005/keykeeper/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

// openPostgres is a seam for tests.
var openPostgres = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	return repomanager.Open(ctx, dsn)
}

type App struct {
	config         *config.Config
	logger         logging.Logger
	repomanager    repomanager.RepositoryManager
	keyService     *services.KeyService
	archiveService *services.AuditArchiveService
	registry       *prometheus.Registry
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stdout)

	rm, err := newRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	codec, err := keycodec.New(c.HashCost)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("key codec: %w", err)
	}

	collector := metrics.NewCollector()
	registry, err := metrics.NewRegistry(collector)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("metrics registry: %w", err)
	}

	ks := services.NewKeyService(rm, codec, clock.WallClock, logger, collector)
	as := services.NewAuditArchiveService(rm, c, clock.WallClock, logger)

	return &App{
		config:         c,
		logger:         logger,
		repomanager:    rm,
		keyService:     ks,
		archiveService: as,
		registry:       registry,
	}, nil
}

func newRepositoryManager(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	if dsn == inmemory.DSN {
		return inmemory.New(), nil
	}

	rm, err := openPostgres(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return rm, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.keyService, app.archiveService,
		app.config.SecretKey, app.config.RequestTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:              app.config.MetricsAddr,
		Handler:           metrics.Handler(app.registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "metrics server shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is canceled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "close storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
