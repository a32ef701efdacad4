// Package app wires the consignment desk together and runs it until the
// context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Kabir14815/rr/internal/backend"
	"github.com/Kabir14815/rr/internal/config"
	"github.com/Kabir14815/rr/internal/draft"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/repository"
	"github.com/Kabir14815/rr/internal/service"
	httpt "github.com/Kabir14815/rr/internal/transport/http"
	"github.com/Kabir14815/rr/pkg/cache"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"
	"github.com/Kabir14815/rr/pkg/storage/postgres"
	"github.com/Kabir14815/rr/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// directoryCacheCapacity holds the single users and invoices entries.
const directoryCacheCapacity = 1

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	client, err := NewBackendClient(cfg, log, metrics.Upstream())
	if err != nil {
		return err
	}

	store, closeStore, err := initStore(ctx, cfg, client, log, metrics)
	if err != nil {
		return err
	}
	defer closeStore()

	caches, err := initCaches(&cfg.Cache, log, metrics)
	if err != nil {
		return err
	}
	defer caches.stop()

	desk, err := service.NewDesk(
		store,
		client,
		client,
		client,
		client,
		caches.drafts,
		log.With("component", "desk"),
		metrics.RateCard(),
		service.DraftTTL(cfg.Cache.TTL),
		service.LookupTimeout(cfg.Lookup.Timeout),
		service.UsersPageLimit(cfg.Backend.UsersPageLimit),
		service.DirectoryCache(caches.users, caches.invoices, cfg.Cache.DirectoryTTL),
	)
	if err != nil {
		return fmt.Errorf("app.Run: desk: %w", err)
	}
	defer desk.Close()

	storefront, err := service.NewStorefront(client, client, log.With("component", "storefront"))
	if err != nil {
		return fmt.Errorf("app.Run: storefront: %w", err)
	}

	if err = initHTTPServer(ctx, eg, cfg, desk, storefront, log, metrics); err != nil {
		return err
	}

	log.Infow("consignment desk started",
		"store", cfg.Store.Driver,
		"backend", cfg.Backend.BaseURL,
		"version", cfg.App.Version,
	)

	return waitForShutdown(eg)
}

// NewBackendClient builds the remote API client shared by every collaborator.
func NewBackendClient(cfg *config.Config, log logger.Logger, metrics metric.Upstream) (*backend.Client, error) {
	client, err := backend.NewClient(cfg.Backend, log.With("component", "backend"), metrics)
	if err != nil {
		return nil, fmt.Errorf("app.NewBackendClient: %w", err)
	}
	return client, nil
}

func initMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	metricsServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.WriteTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app.initMetrics: shutdown: %w", err)
		}
		return nil
	})

	return metrics
}

// initStore picks the consignment store. The remote API is the default;
// the postgres driver opens a pool and makes sure the table exists.
func initStore(
	ctx context.Context,
	cfg *config.Config,
	client *backend.Client,
	log logger.Logger,
	metrics metric.Factory,
) (service.ConsignmentStore, func(), error) {
	if cfg.Store.Driver != config.StorePostgres {
		return client, func() {}, nil
	}

	db, err := postgres.NewPostgres(
		ctx,
		&cfg.Postgres,
		log.With("component", "database"),
		postgres.PoolSize(cfg.Postgres.PoolMax),
		postgres.ConnectRetry(cfg.Postgres.ConnAttempts, cfg.Postgres.BaseRetryDelay, cfg.Postgres.MaxRetryDelay),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("app.initStore: %w", err)
	}

	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
		transaction.Retry(cfg.Postgres.TxAttempts, cfg.Postgres.TxBackoff, cfg.Postgres.TxMaxBackoff),
	)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("app.initStore: transaction manager: %w", err)
	}

	repo := repository.NewConsignmentRepository(db, txManager)
	if err = repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("app.initStore: %w", err)
	}

	return repo, db.Close, nil
}

type cacheSet struct {
	drafts   *cache.LRUCache[uuid.UUID, *draft.Controller]
	users    *cache.LRUCache[string, []entity.User]
	invoices *cache.LRUCache[string, []entity.Invoice]
}

func initCaches(cfg *config.Cache, log logger.Logger, metrics metric.Factory) (*cacheSet, error) {
	log = log.With("component", "cache")

	drafts, err := cache.NewLRUCache[uuid.UUID, *draft.Controller]("drafts", cfg.Capacity, log, metrics.Cache())
	if err != nil {
		return nil, fmt.Errorf("app.initCaches: %w", err)
	}
	users, err := cache.NewLRUCache[string, []entity.User]("users", directoryCacheCapacity, log, metrics.Cache())
	if err != nil {
		return nil, fmt.Errorf("app.initCaches: %w", err)
	}
	invoices, err := cache.NewLRUCache[string, []entity.Invoice]("invoices", directoryCacheCapacity, log, metrics.Cache())
	if err != nil {
		return nil, fmt.Errorf("app.initCaches: %w", err)
	}

	drafts.StartCleanup(cfg.CleanupInterval)
	users.StartCleanup(cfg.CleanupInterval)
	invoices.StartCleanup(cfg.CleanupInterval)

	return &cacheSet{drafts: drafts, users: users, invoices: invoices}, nil
}

func (c *cacheSet) stop() {
	c.drafts.StopCleanup()
	c.users.StopCleanup()
	c.invoices.StopCleanup()
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	desk *service.Desk,
	storefront *service.Storefront,
	log logger.Logger,
	metrics metric.Factory,
) error {
	handler, err := httpt.NewHandler(
		desk,
		storefront,
		log.With("component", "http"),
		metrics.HTTP(),
		httpt.RequestTimeout(cfg.HTTP.WriteTimeout),
		httpt.Version(cfg.App.Version),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	httpServer := httpt.NewHTTPServer(handler.Engine(), &cfg.HTTP, log.With("component", "http server"))

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
