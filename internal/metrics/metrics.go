// Package metrics provides the centralized Prometheus registry for the pool
// engine and its ingestion pipeline.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ScenariosEnumeratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bowl_pool",
		Name:      "scenarios_enumerated_total",
		Help:      "Total number of scenarios enumerated and scored",
	})
	DataQualityWarningsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bowl_pool",
		Name:      "data_quality_warnings_total",
		Help:      "Total number of data-quality warnings emitted",
	})
	RunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bowl_pool",
		Name:      "runs_total",
		Help:      "Total number of scenario runs started",
	})
	IngestionSyncsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bowl_pool",
		Name:      "ingestion_syncs_total",
		Help:      "Total number of ingestion syncs performed",
	})
	RecordsIngestedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bowl_pool",
		Name:      "records_ingested_total",
		Help:      "Total number of records ingested, by record kind",
	}, []string{"kind"})
)

// Gauge metrics
var (
	UndecidedBowls = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bowl_pool",
		Name:      "undecided_bowls",
		Help:      "Number of undecided bowls in the current run",
	})
	Bettors = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bowl_pool",
		Name:      "bettors",
		Help:      "Number of bettors in the current run",
	})
)

// Histogram metrics
var (
	EnumerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bowl_pool",
		Name:      "enumeration_duration_seconds",
		Help:      "Duration of full scenario enumeration in seconds",
		Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
	IngestionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bowl_pool",
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of ingestion syncs in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(ScenariosEnumeratedTotal)
		registry.MustRegister(DataQualityWarningsTotal)
		registry.MustRegister(RunsTotal)
		registry.MustRegister(IngestionSyncsTotal)
		registry.MustRegister(RecordsIngestedTotal)

		registry.MustRegister(UndecidedBowls)
		registry.MustRegister(Bettors)

		registry.MustRegister(EnumerationDuration)
		registry.MustRegister(IngestionDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordScenarioEnumerated records one enumerated and scored scenario.
func RecordScenarioEnumerated() {
	ScenariosEnumeratedTotal.Inc()
}

// RecordDataQualityWarning records an emitted data-quality warning.
func RecordDataQualityWarning() {
	DataQualityWarningsTotal.Inc()
}

// RecordRunStarted records the start of a scenario run.
func RecordRunStarted() {
	RunsTotal.Inc()
}

// RecordIngestionSync records a completed ingestion sync.
func RecordIngestionSync(durationSeconds float64) {
	IngestionSyncsTotal.Inc()
	IngestionDuration.Observe(durationSeconds)
}

// RecordRecordsIngested records ingested record counts by kind.
func RecordRecordsIngested(kind string, count int) {
	RecordsIngestedTotal.WithLabelValues(kind).Add(float64(count))
}

// UpdateUndecidedBowls updates the undecided-bowl gauge.
func UpdateUndecidedBowls(count float64) {
	UndecidedBowls.Set(count)
}

// UpdateBettors updates the bettor-count gauge.
func UpdateBettors(count float64) {
	Bettors.Set(count)
}

// RecordEnumerationDuration records how long a full enumeration took.
func RecordEnumerationDuration(durationSeconds float64) {
	EnumerationDuration.Observe(durationSeconds)
}
