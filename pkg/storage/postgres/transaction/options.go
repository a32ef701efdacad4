package transaction

import (
	"errors"
	"time"
)

type Option func(*manager)

// Retry bounds how often a transaction hitting a transient failure is replayed
// and how long the manager sleeps between attempts.
func Retry(attempts int, base, limit time.Duration) Option {
	return func(m *manager) {
		m.maxAttempts = attempts
		m.baseRetryDelay = base
		m.maxRetryDelay = limit
	}
}

func (m *manager) validate() error {
	switch {
	case m.pool == nil:
		return errors.New("pool is nil")
	case m.log == nil || m.metrics == nil:
		return errors.New("logger and metrics are required")
	case m.maxAttempts <= 0:
		return errors.New("invalid attempts: must be > 0")
	case m.baseRetryDelay <= 0 || m.maxRetryDelay <= 0:
		return errors.New("invalid retry delay: must be > 0")
	case m.baseRetryDelay > m.maxRetryDelay:
		return errors.New("base retry delay exceeds max retry delay")
	}
	return nil
}
