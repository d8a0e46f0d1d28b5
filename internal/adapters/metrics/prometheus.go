package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"declutter/internal/domain"
	"declutter/internal/ports"
)

// Recorder implements ports.Metrics with Prometheus collectors on a private registry
type Recorder struct {
	registry *prometheus.Registry

	moved          *prometheus.CounterVec
	skipped        *prometheus.CounterVec
	moveFailures   *prometheus.CounterVec
	ledgerFailures prometheus.Counter
	lastRun        prometheus.Gauge
}

// Ensure Recorder implements Metrics
var _ ports.Metrics = (*Recorder)(nil)

// NewRecorder creates a Recorder and registers its collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		moved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "declutter_files_moved_total",
				Help: "Files moved out of the source directory",
			},
			[]string{"category"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "declutter_files_skipped_total",
				Help: "Files left in place",
			},
			[]string{"reason"},
		),
		moveFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "declutter_move_failures_total",
				Help: "Files whose move failed",
			},
			[]string{"category"},
		),
		ledgerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "declutter_ledger_failures_total",
			Help: "Moves that could not be recorded in the activity ledger",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "declutter_last_run_timestamp_seconds",
			Help: "Unix time of the last finished cleanup run",
		}),
	}

	r.registry.MustRegister(r.moved, r.skipped, r.moveFailures, r.ledgerFailures, r.lastRun)
	return r
}

func (r *Recorder) FileMoved(category domain.Category) {
	r.moved.WithLabelValues(category.String()).Inc()
}

func (r *Recorder) FileSkipped(reason domain.Reason) {
	r.skipped.WithLabelValues(string(reason)).Inc()
}

func (r *Recorder) MoveFailed(category domain.Category) {
	r.moveFailures.WithLabelValues(category.String()).Inc()
}

func (r *Recorder) LedgerWriteFailed() {
	r.ledgerFailures.Inc()
}

func (r *Recorder) RunFinished() {
	r.lastRun.SetToCurrentTime()
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps the current values in the node_exporter textfile format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
