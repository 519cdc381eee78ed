// Package observability wires engine lifecycle events into Prometheus.
package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/afrisecure/ussd/pkg/domain"
)

// Metrics holds the collectors for the USSD service.
type Metrics struct {
	sessionsStarted *prometheus.CounterVec
	sessionsEnded   *prometheus.CounterVec
	inputs          *prometheus.CounterVec
	invalidInputs   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ussd_sessions_started_total",
				Help: "Total number of sessions started, by flow",
			},
			[]string{"flow"},
		),
		sessionsEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ussd_sessions_ended_total",
				Help: "Total number of sessions reaching a terminal state, by flow and outcome kind",
			},
			[]string{"flow", "outcome"},
		),
		inputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ussd_inputs_total",
				Help: "Total accepted user inputs, by flow and state",
			},
			[]string{"flow", "state"},
		),
		invalidInputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ussd_invalid_inputs_total",
				Help: "Total rejected user inputs, by flow and state",
			},
			[]string{"flow", "state"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "ussd_request_duration_seconds",
				Help: "Duration of gateway callback handling",
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(m.sessionsStarted, m.sessionsEnded, m.inputs, m.invalidInputs, m.requestDuration)
	return m
}

// Hooks returns the lifecycle callbacks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(_ context.Context, e *domain.SessionEvent) {
			m.sessionsStarted.WithLabelValues(e.FlowID).Inc()
		},
		OnInput: func(_ context.Context, e *domain.SessionEvent) {
			m.inputs.WithLabelValues(e.FlowID, e.StateID).Inc()
		},
		OnInvalidInput: func(_ context.Context, e *domain.SessionEvent) {
			m.invalidInputs.WithLabelValues(e.FlowID, e.StateID).Inc()
		},
		OnSessionEnd: func(_ context.Context, e *domain.SessionEvent) {
			outcome := e.Outcome
			if outcome == "" {
				outcome = "ended"
			}
			m.sessionsEnded.WithLabelValues(e.FlowID, outcome).Inc()
		},
	}
}

// ObserveRequest records one gateway callback's handling time.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}
