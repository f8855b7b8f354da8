package metrics

import (
	"net/http"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventos"

type Metrics struct {
	registry *prometheus.Registry

	created    prometheus.Counter
	delivered  *prometheus.CounterVec
	listed     prometheus.Histogram
	repository prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_created_total",
			Help:      "Events submitted through the creation form",
		}),
		delivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payloads_delivered_total",
			Help:      "Event payloads received, by merge result",
		}, []string{"result"}),
		listed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "events_listed",
			Help:      "Events returned per listing request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		repository: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "repository_events",
			Help:      "Events currently held by the repository",
		}),
	}

	m.registry.MustRegister(m.created, m.delivered, m.listed, m.repository)

	return m
}

func (m *Metrics) EventCreated() {
	m.created.Inc()
}

func (m *Metrics) PayloadDelivered(result domain.MergeResult) {
	m.delivered.WithLabelValues(string(result)).Inc()
}

func (m *Metrics) EventsListed(n int) {
	m.listed.Observe(float64(n))
}

func (m *Metrics) SetRepositorySize(n int) {
	m.repository.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
