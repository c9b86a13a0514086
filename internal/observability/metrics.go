package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the dashboard's Prometheus instruments.
type Metrics struct {
	// Registry owns these metrics. Exposed so the /metrics endpoint can
	// serve it.
	Registry *prometheus.Registry

	loadDuration      prometheus.Histogram
	loadsTotal        *prometheus.CounterVec
	recomputeDuration prometheus.Histogram
	recomputesTotal   prometheus.Counter
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	datasetRows       prometheus.Gauge
}

// NewMetrics registers all application metrics in a private registry.
// A private registry avoids duplicate-collector panics when NewMetrics is
// called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		loadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "datavista_dataset_load_duration_seconds",
			Help:    "Duration of sales dataset loads.",
			Buckets: prometheus.DefBuckets,
		}),
		loadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datavista_dataset_loads_total",
				Help: "Total dataset load attempts by result.",
			},
			[]string{"result"},
		),
		recomputeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "datavista_kpi_recompute_duration_seconds",
			Help:    "Duration of full filter-and-aggregate passes.",
			Buckets: prometheus.DefBuckets,
		}),
		recomputesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "datavista_kpi_recomputes_total",
			Help: "Total KPI recomputations triggered by filter changes.",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "datavista_dataset_cache_hits_total",
			Help: "Dataset store hits served without re-reading the source.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "datavista_dataset_cache_misses_total",
			Help: "Dataset store misses that triggered a source read.",
		}),
		datasetRows: factory.NewGauge(prometheus.GaugeOpts{
			Name: "datavista_dataset_rows",
			Help: "Rows held by the in-memory dataset after the last load.",
		}),
	}
}

func (m *Metrics) ObserveLoad(result string, rows int, d time.Duration) {
	m.loadDuration.Observe(d.Seconds())
	m.loadsTotal.WithLabelValues(result).Inc()
	m.datasetRows.Set(float64(rows))
}

func (m *Metrics) ObserveRecompute(d time.Duration) {
	m.recomputeDuration.Observe(d.Seconds())
	m.recomputesTotal.Inc()
}

func (m *Metrics) CacheHit()  { m.cacheHits.Inc() }
func (m *Metrics) CacheMiss() { m.cacheMisses.Inc() }
