// Package metrics registra as métricas prometheus do serviço
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const namespace = "kol_dashboard"

// Resultados de uma carga do dataset
const (
	LoadSuccess = "success"
	LoadFailure = "failure"
)

type Metrics struct {
	registry *prometheus.Registry

	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	cacheLoads     *prometheus.CounterVec
	loadDuration   prometheus.Histogram
	datasetRows    *prometheus.GaugeVec
	coercionIssues prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New cria um registro próprio, sem usar o registro global do prometheus
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Dataset reads served from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Dataset reads that required a load.",
		}),
		cacheLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "loads_total",
			Help:      "Dataset loads by result.",
		}, []string{"source", "result"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "load_duration_seconds",
			Help:      "Time spent fetching and deriving the dataset.",
			Buckets:   prometheus.DefBuckets,
		}),
		datasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows",
			Help:      "Rows in the current dataset by table.",
		}, []string{"table"}),
		coercionIssues: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "coercion_issues",
			Help:      "Values coerced to defaults in the current dataset.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.cacheHits,
		m.cacheMisses,
		m.cacheLoads,
		m.loadDuration,
		m.datasetRows,
		m.coercionIssues,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe o registro no formato de texto do prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      m,
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Println implementa promhttp.Logger
func (m *Metrics) Println(v ...interface{}) {
	logrus.Error(append([]interface{}{"metrics: "}, v...)...)
}

func (m *Metrics) CacheHit() {
	m.cacheHits.Inc()
}

func (m *Metrics) CacheMiss() {
	m.cacheMisses.Inc()
}

// ObserveLoad registra uma carga do dataset e sua duração em segundos
func (m *Metrics) ObserveLoad(source, result string, seconds float64) {
	m.cacheLoads.WithLabelValues(source, result).Inc()
	m.loadDuration.Observe(seconds)
}

// SetDataset atualiza os tamanhos do dataset atual
func (m *Metrics) SetDataset(kols, activities, issues int) {
	m.datasetRows.WithLabelValues("master").Set(float64(kols))
	m.datasetRows.WithLabelValues("activities").Set(float64(activities))
	m.coercionIssues.Set(float64(issues))
}

func (m *Metrics) ObserveRequest(method string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(seconds)
}
