package metric

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock_metric

type (
	Factory interface {
		HTTP() HTTP
		Transaction() Transaction
		Cache() Cache
		Upstream() Upstream
		RateCard() RateCard
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Transaction interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementRetries(operation string)
		IncrementFailures(operation string)
	}

	Cache interface {
		Hit(cacheType string)
		Miss(cacheType string)
		Eviction(cacheType string, reason string)
		Size(cacheType string, size int)
	}

	Upstream interface {
		Call(operation string, status int, duration time.Duration)
		Retry(operation string)
	}

	RateCard interface {
		Lookup(outcome string, duration time.Duration)
		Stale()
	}
)
