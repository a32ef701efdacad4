package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"
	"github.com/Kabir14815/rr/pkg/storage/postgres"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	_defaultMaxAttempts    = 3
	_defaultBaseRetryDelay = 10 * time.Millisecond
	_defaultMaxRetryDelay  = 100 * time.Millisecond
)

//go:generate mockgen -source=manager.go -destination=mock/manager.go -package=mock_transaction

type Manager interface {
	ExecuteInTransaction(
		ctx context.Context,
		operation string,
		fn func(tx postgres.QueryExecuter) error,
	) error
}

type manager struct {
	pool    *postgres.Postgres
	log     logger.Logger
	metrics metric.Transaction

	maxAttempts    int
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
}

func NewManager(
	pool *postgres.Postgres,
	log logger.Logger,
	metrics metric.Transaction,
	opts ...Option,
) (Manager, error) {
	tm := &manager{
		pool:    pool,
		log:     log,
		metrics: metrics,

		maxAttempts:    _defaultMaxAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
	}

	for _, opt := range opts {
		opt(tm)
	}
	if err := tm.validate(); err != nil {
		return nil, fmt.Errorf("storage.postgres.transaction.NewManager: %w", err)
	}

	return tm, nil
}

// ExecuteInTransaction runs fn in a read-committed transaction. Serialization
// failures, deadlocks and dropped connections are retried with jittered
// backoff; any other error from fn is returned as is.
func (tm *manager) ExecuteInTransaction(
	ctx context.Context,
	operation string,
	fn func(tx postgres.QueryExecuter) error,
) error {
	const op = "storage.postgres.transaction.ExecuteInTransaction"

	return tm.withRetry(ctx, operation, func() error {
		tx, err := tm.pool.Pool.BeginTx(ctx, pgx.TxOptions{
			IsoLevel:   pgx.ReadCommitted,
			AccessMode: pgx.ReadWrite,
		})
		if err != nil {
			return fmt.Errorf("%s: begin tx: %w", op, err)
		}
		defer tm.safelyRollback(ctx, tx, operation)

		if err = fn(&postgres.TxQueryExecuter{Tx: tx}); err != nil {
			return err
		}

		if err = tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: commit: %w", op, err)
		}
		return nil
	})
}

func (tm *manager) safelyRollback(ctx context.Context, tx pgx.Tx, operation string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		tm.log.LogAttrs(ctx, logger.ErrorLevel, "rollback failed",
			logger.String("transaction", operation),
			logger.Err(err),
		)
	}
}

// withRetry replays fn while it fails with a transient error. Delays grow
// exponentially from baseRetryDelay with random jitter, capped at maxRetryDelay.
func (tm *manager) withRetry(ctx context.Context, operation string, fn func() error) error {
	const op = "storage.postgres.transaction.withRetry"

	start := time.Now()
	defer func() {
		tm.metrics.ObserveDuration(operation, time.Since(start))
	}()

	err := retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(uint(tm.maxAttempts)),
		retry.Delay(tm.baseRetryDelay),
		retry.MaxDelay(tm.maxRetryDelay),
		retry.MaxJitter(tm.baseRetryDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.RetryIf(isRetryableError),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if int(n)+1 >= tm.maxAttempts {
				return
			}
			tm.metrics.IncrementRetries(operation)
			tm.log.LogAttrs(ctx, logger.InfoLevel, "retrying transaction",
				logger.String("transaction", operation),
				logger.Int("attempt", int(n)+1),
				logger.Int("max_attempts", tm.maxAttempts),
				logger.Err(err),
			)
		}),
	)
	if err == nil {
		return nil
	}

	tm.metrics.IncrementFailures(operation)
	if isRetryableError(err) {
		return fmt.Errorf("%s: attempts exhausted for %s: %w", op, operation, err)
	}
	return err
}

func isRetryableError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40P01", "40001", "08000", "08003", "08006", "08001", "08004", "08007", "08P01":
			return true
		}
		return false
	}

	return errors.Is(err, pgx.ErrTxClosed)
}
