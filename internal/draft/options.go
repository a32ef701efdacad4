package draft

import (
	"errors"
	"time"
)

const _defaultLookupTimeout = 10 * time.Second

type Option func(*Controller)

// LookupTimeout bounds each rate card lookup.
func LookupTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		c.timeout = timeout
	}
}

// WithState seeds the controller, e.g. to resume a draft.
func WithState(s State) Option {
	return func(c *Controller) {
		c.state = s
	}
}

func (c *Controller) validate() error {
	if c.lookup == nil {
		return errors.New("rate card lookup is required")
	}
	if c.log == nil {
		return errors.New("logger is required")
	}
	if c.metrics == nil {
		return errors.New("metrics are required")
	}
	if c.timeout <= 0 {
		return errors.New("invalid lookup timeout: must be > 0")
	}
	return nil
}
