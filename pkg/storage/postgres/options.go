package postgres

import (
	"errors"
	"time"
)

type Option func(*Postgres)

func PoolSize(size int32) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}

// ConnectRetry bounds the startup connection attempts; delays double from base
// up to limit.
func ConnectRetry(attempts int, base, limit time.Duration) Option {
	return func(p *Postgres) {
		p.connAttempts = attempts
		p.baseRetryDelay = base
		p.maxRetryDelay = limit
	}
}

func (p *Postgres) validate() error {
	switch {
	case p.maxPoolSize <= 0:
		return errors.New("invalid pool size: must be > 0")
	case p.connAttempts <= 0:
		return errors.New("invalid connect attempts: must be > 0")
	case p.baseRetryDelay <= 0:
		return errors.New("invalid base retry delay: must be > 0")
	case p.maxRetryDelay < p.baseRetryDelay:
		return errors.New("max retry delay below base retry delay")
	}
	return nil
}
