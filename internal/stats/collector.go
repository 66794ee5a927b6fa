// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Validation metrics.
	MetricValidations    = "ecolite_validations_total"
	MetricFailures       = "ecolite_validation_failures_total"
	MetricEntriesChecked = "ecolite_entries_checked_total"

	// MetricValidateSeconds observes wall-clock time of one validation run.
	MetricValidateSeconds = "ecolite_validate_seconds"

	// MetricDatasetBytes is the decoded size of the last validated dataset.
	MetricDatasetBytes = "ecolite_dataset_bytes"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
