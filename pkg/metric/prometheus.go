package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// _namespace prefixes every series the desk exports.
const _namespace = "consignment_desk"

var _ Factory = (*prometheusFactory)(nil)

// prometheusFactory owns a private registry; factories never share series.
type prometheusFactory struct {
	registry *prometheus.Registry

	http        *httpMetrics
	transaction *transactionMetrics
	cache       *cacheMetrics
	upstream    *upstreamMetrics
	rateCard    *rateCardMetrics
}

func NewFactory() Factory {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &prometheusFactory{
		registry:    reg,
		http:        newHTTPMetrics(reg),
		transaction: newTransactionMetrics(reg),
		cache:       newCacheMetrics(reg),
		upstream:    newUpstreamMetrics(reg),
		rateCard:    newRateCardMetrics(reg),
	}
}

func (f *prometheusFactory) HTTP() HTTP               { return f.http }
func (f *prometheusFactory) Transaction() Transaction { return f.transaction }
func (f *prometheusFactory) Cache() Cache             { return f.cache }
func (f *prometheusFactory) Upstream() Upstream       { return f.upstream }
func (f *prometheusFactory) RateCard() RateCard       { return f.rateCard }

func (f *prometheusFactory) Handler() http.Handler {
	return promhttp.HandlerFor(f.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
