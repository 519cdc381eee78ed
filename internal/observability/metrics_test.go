package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrisecure/ussd/internal/observability"
	"github.com/afrisecure/ussd/internal/runtime"
	"github.com/afrisecure/ussd/pkg/flows"
)

// counterValue digs one labeled counter out of a gathered registry.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metric:
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if labels[l.GetName()] != l.GetValue() {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetrics_CountLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.New(reg)
	engine := runtime.New(flows.Default(flows.Options{}), runtime.WithHooks(m.Hooks()))
	ctx := context.Background()

	s, err := engine.Start(ctx, flows.FlowBalance)
	require.NoError(t, err)
	s, err = engine.Submit(ctx, s, "bad-pin")
	require.NoError(t, err)
	_, err = engine.Submit(ctx, s, "1234")
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, reg, "ussd_sessions_started_total", map[string]string{"flow": "balance"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "ussd_invalid_inputs_total", map[string]string{"flow": "balance", "state": "pin"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "ussd_inputs_total", map[string]string{"flow": "balance", "state": "pin"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "ussd_sessions_ended_total", map[string]string{"flow": "balance", "outcome": "balance"}))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.New(reg)

	m.ObserveRequest("/ussd", 25*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() == "ussd_request_duration_seconds" {
			found = true
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, found)
}
