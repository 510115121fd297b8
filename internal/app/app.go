package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rebox/internal/config"
	"github.com/GlebRadaev/rebox/internal/handlers"
	"github.com/GlebRadaev/rebox/internal/levels"
	"github.com/GlebRadaev/rebox/internal/logistics"
	"github.com/GlebRadaev/rebox/internal/notify"
	"github.com/GlebRadaev/rebox/internal/pg"
	"github.com/GlebRadaev/rebox/internal/repo"
	"github.com/GlebRadaev/rebox/internal/service"
	"github.com/GlebRadaev/rebox/pkg/auth"
	"github.com/GlebRadaev/rebox/pkg/clients"
	"github.com/GlebRadaev/rebox/pkg/logger"
	"github.com/GlebRadaev/rebox/pkg/workerpool"
)

const (
	workerPoolSize = 10
	notifyPoolSize = 4
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	ext     *logistics.Service
	workers *workerpool.WorkerPool
	notify  *workerpool.WorkerPool
	db      *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	auth.SetSecretKey(cfg.JWTSecret)

	calc, err := levels.Load(cfg.LevelsFile)
	if err != nil {
		zap.L().Error("load levels failed: ", zap.Error(err))
		return fmt.Errorf("can't load levels: %w", err)
	}
	zap.L().Info("reward levels loaded",
		zap.Int("version", calc.Version()),
		zap.Int("levels", len(calc.Levels())),
	)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.db = pool
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	client := clients.NewHTTPClient()
	a.cfg = cfg
	a.workers = workerpool.NewWorkerPool(workerPoolSize)
	// poller tasks emit events, so delivery must not share their pool
	a.notify = workerpool.NewWorkerPool(notifyPoolSize)
	notifier := notify.New(cfg.NotifyAddress, client, a.notify)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, calc, notifier, cfg.RedeemUnit)
	a.api = handlers.New(a.srv)
	a.ext = logistics.New(cfg, a.repo.PickupRepo, a.srv.LedgerService, client, a.workers)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startLogisticsPoller(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startLogisticsPoller(ctx context.Context) {
	done := a.ext.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-done
	}()
}

// Wait blocks until ctx is done and every component has stopped. The first
// component error cancels the application and is returned.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.workers != nil {
		a.workers.Close()
	}
	if a.notify != nil {
		a.notify.Close()
	}
	if a.db != nil {
		a.db.Close()
	}

	return appErr
}
