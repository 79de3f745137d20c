// Package telemetry holds the OpenTelemetry instruments the simulation reports to.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "stationdrive/internal/sim"

// Metrics counts simulation events. A nil *Metrics discards everything.
type Metrics struct {
	ticks           metric.Int64Counter
	collisions      metric.Int64Counter
	stationChanges  metric.Int64Counter
	contentRequests metric.Int64Counter
}

// New registers the instruments on m.
func New(m metric.Meter) (*Metrics, error) {
	var (
		s   Metrics
		err error
	)

	s.ticks, err = m.Int64Counter(
		"stationdrive.sim.ticks",
		metric.WithDescription("Simulation ticks executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticks counter: %w", err)
	}

	s.collisions, err = m.Int64Counter(
		"stationdrive.sim.collisions",
		metric.WithDescription("Collision responses by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collisions counter: %w", err)
	}

	s.stationChanges, err = m.Int64Counter(
		"stationdrive.sim.station_changes",
		metric.WithDescription("Current station changes"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create station changes counter: %w", err)
	}

	s.contentRequests, err = m.Int64Counter(
		"stationdrive.sim.content_requests",
		metric.WithDescription("Content surfaces requested by interact"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content requests counter: %w", err)
	}

	return &s, nil
}

// NewGlobal registers the instruments on the global meter provider.
func NewGlobal() (*Metrics, error) {
	return New(otel.Meter(instrumentationName))
}

func (s *Metrics) Tick() {
	if s == nil {
		return
	}
	s.ticks.Add(context.Background(), 1)
}

func (s *Metrics) Collision(outcome string) {
	if s == nil {
		return
	}
	s.collisions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}

// StationChange records a change; to is empty when the vehicle left every station.
func (s *Metrics) StationChange(to string) {
	if s == nil {
		return
	}
	s.stationChanges.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("station", to)))
}

func (s *Metrics) ContentRequest(modal string) {
	if s == nil {
		return
	}
	s.contentRequests.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("modal", modal)))
}
