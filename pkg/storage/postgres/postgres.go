package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/Kabir14815/rr/internal/config"
	"github.com/Kabir14815/rr/pkg/logger"

	"github.com/Masterminds/squirrel"
	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	_defaultMaxPoolSize    = 100
	_defaultConnAttempts   = 10
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 5 * time.Second
)

type Postgres struct {
	Builder squirrel.StatementBuilderType
	Pool    *pgxpool.Pool

	connAttempts   int
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
	maxPoolSize    int32
}

// NewPostgres opens a pool and pings it, retrying with jittered exponential
// backoff until the database answers or the attempts run out.
func NewPostgres(ctx context.Context, cfg *config.Postgres, log logger.Logger, opts ...Option) (*Postgres, error) {
	const op = "storage.postgres.NewPostgres"

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.Name,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}

	pg := &Postgres{
		connAttempts:   _defaultConnAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
		maxPoolSize:    _defaultMaxPoolSize,
	}

	for _, opt := range opts {
		opt(pg)
	}
	if err := pg.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	pg.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	poolConfig, err := pgxpool.ParseConfig(dsn.String())
	if err != nil {
		return nil, fmt.Errorf("%s: parse pool config: %w", op, err)
	}
	poolConfig.MaxConns = pg.maxPoolSize

	err = retry.Do(
		func() error {
			pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
			if err != nil {
				return err
			}
			if err = pool.Ping(ctx); err != nil {
				pool.Close()
				return err
			}
			pg.Pool = pool
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(pg.connAttempts)),
		retry.Delay(pg.baseRetryDelay),
		retry.MaxDelay(pg.maxRetryDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(pg.baseRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if int(n)+1 >= pg.connAttempts {
				return
			}
			log.LogAttrs(ctx, logger.WarnLevel, "postgres connection attempt failed",
				logger.String("host", cfg.Host),
				logger.Int("attempt", int(n)+1),
				logger.Int("max_attempts", pg.connAttempts),
				logger.Err(err),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}

	return pg, nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
