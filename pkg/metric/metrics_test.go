package metric

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	testCases := []struct {
		status int
		want   string
	}{
		{status: 200, want: "2xx"},
		{status: 201, want: "2xx"},
		{status: 409, want: "4xx"},
		{status: 502, want: "5xx"},
		{status: 0, want: "none"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, statusClass(tc.status), tc.status)
	}
}

func TestHTTPMetrics_SlowRequestCountsOnce(t *testing.T) {
	m := newHTTPMetrics(prometheus.NewRegistry())

	m.Request(http.MethodPatch, "/api/v1/drafts/:id", 200, 700*time.Millisecond)
	m.SlowRequest(http.MethodPatch, "/api/v1/drafts/:id", 200, 700*time.Millisecond)

	require.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPatch, "/api/v1/drafts/:id", "2xx")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.slow.WithLabelValues(http.MethodPatch, "/api/v1/drafts/:id", "2xx")), 0)
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestUpstreamMetrics_Call(t *testing.T) {
	m := newUpstreamMetrics(prometheus.NewRegistry())

	m.Call("rate_card_fetch", 200, 30*time.Millisecond)
	m.Call("rate_card_fetch", 0, time.Second)
	m.Call("rate_card_fetch", 503, time.Second)
	m.Retry("rate_card_fetch")

	require.InDelta(t, 1, testutil.ToFloat64(m.calls.WithLabelValues("rate_card_fetch", "2xx")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.calls.WithLabelValues("rate_card_fetch", "transport")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.calls.WithLabelValues("rate_card_fetch", "5xx")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.retries.WithLabelValues("rate_card_fetch")), 0)
}

func TestCacheMetrics(t *testing.T) {
	m := newCacheMetrics(prometheus.NewRegistry())

	m.Hit("drafts")
	m.Hit("drafts")
	m.Miss("drafts")
	m.Eviction("drafts", "expired")
	m.Size("drafts", 3)

	require.InDelta(t, 2, testutil.ToFloat64(m.lookups.WithLabelValues("drafts", "hit")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.lookups.WithLabelValues("drafts", "miss")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.evictions.WithLabelValues("drafts", "expired")), 0)
	require.InDelta(t, 3, testutil.ToFloat64(m.entries.WithLabelValues("drafts")), 0)
}

func TestFactory_Handler(t *testing.T) {
	f := NewFactory()
	f.RateCard().Lookup("resolved", 40*time.Millisecond)
	f.Transaction().IncrementRetries("create_consignment")

	rec := httptest.NewRecorder()
	f.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, `consignment_desk_rate_card_lookups_total{outcome="resolved"} 1`), body)
	require.True(t, strings.Contains(body, `consignment_desk_db_transaction_events_total{event="retry",operation="create_consignment"} 1`), body)
}
