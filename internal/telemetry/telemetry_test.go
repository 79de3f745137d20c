package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewWithNoopMeter(t *testing.T) {
	m, err := New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.NotPanics(t, func() {
		m.Tick()
		m.Collision("bounced")
		m.StationChange("skills")
		m.ContentRequest("skills-modal")
	})
}

func TestNewGlobal(t *testing.T) {
	m, err := NewGlobal()
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestNilMetricsDiscard(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Tick()
		m.Collision("clear")
		m.StationChange("")
		m.ContentRequest("about-modal")
	})
}
