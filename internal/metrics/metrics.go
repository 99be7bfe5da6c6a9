// Package metrics counts reconciliation outcomes with Prometheus collectors.
//
// The collectors live on a private registry: a run exposes them by writing a
// text-format file at exit, there is no HTTP endpoint.
package metrics

import (
	"context"
	"fmt"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the run's collectors.
type Recorder struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	rejects  *prometheus.CounterVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nsutil_reconcile_outcomes_total",
				Help: "Reconciliation steps by mode, classification and result",
			},
			[]string{"mode", "class", "result"},
		),
		rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nsutil_registry_rejections_total",
				Help: "Register calls refused by the registry, by reason",
			},
			[]string{"reason"},
		),
	}
	r.registry.MustRegister(r.outcomes, r.rejects)
	return r
}

// Observe records one outcome. It matches reconcile.OutcomeHook.
func (r *Recorder) Observe(_ context.Context, o domain.Outcome) {
	r.outcomes.WithLabelValues(o.Mode.String(), o.Class.String(), o.Result.String()).Inc()
	if o.Result == domain.ResultRejected {
		r.rejects.WithLabelValues(rejectReason(o.Err)).Inc()
	}
}

// Registry exposes the underlying registry (tests, custom exporters).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile writes the collectors in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
