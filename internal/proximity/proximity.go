// Package proximity tracks which station, if any, the vehicle is parked near.
package proximity

import (
	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/engine"
)

// Station is a point of interest with a proximity trigger and a content surface.
type Station struct {
	ID       string
	Title    string
	Modal    string
	Position mgl32.Vec3

	// ProximityRadius overrides Tuning.DefaultRadius when positive.
	ProximityRadius float32
}

// Tuning holds the proximity and highlight constants.
type Tuning struct {
	DefaultRadius float32
	IntensityStep float32
	IntensityMax  float32
	IntensityBase float32
}

func DefaultTuning() Tuning {
	return Tuning{
		DefaultRadius: 15,
		IntensityStep: 0.02,
		IntensityMax:  0.8,
		IntensityBase: 0.3,
	}
}

// Change is emitted when the current station changes. Either side may be nil.
type Change struct {
	From *Station
	To   *Station
}

// Entered reports whether the change puts the vehicle at a station.
func (c Change) Entered() bool { return c.To != nil }

// Exited reports whether the change leaves a station.
func (c Change) Exited() bool { return c.From != nil }

// Monitor owns the current station and the per-station highlight intensity.
type Monitor struct {
	Tuning Tuning

	// OnChange fires once per change of the current station.
	OnChange engine.EventWithArg[Change]

	stations  []Station
	intensity []float32
	current   *Station
}

// NewMonitor copies the station list; the order is the tie-break order.
func NewMonitor(stations []Station, t Tuning) *Monitor {
	m := &Monitor{
		Tuning:    t,
		stations:  append([]Station(nil), stations...),
		intensity: make([]float32, len(stations)),
	}
	for i := range m.intensity {
		m.intensity[i] = t.IntensityBase
	}
	return m
}

// Radius returns the proximity radius that applies to s.
func (m *Monitor) Radius(s *Station) float32 {
	if s.ProximityRadius > 0 {
		return s.ProximityRadius
	}
	return m.Tuning.DefaultRadius
}

// Update scans stations in order and returns the current station, or nil.
// The first station in range wins.
func (m *Monitor) Update(pos mgl32.Vec3) *Station {
	if len(m.stations) == 0 {
		return m.current
	}

	var near *Station
	for i := range m.stations {
		s := &m.stations[i]
		if pos.Sub(s.Position).Len() < m.Radius(s) {
			if near == nil {
				near = s
			}
			m.intensity[i] = min(m.intensity[i]+m.Tuning.IntensityStep, m.Tuning.IntensityMax)
		} else {
			m.intensity[i] = max(m.intensity[i]-m.Tuning.IntensityStep, m.Tuning.IntensityBase)
		}
	}

	if near != m.current {
		change := Change{From: m.current, To: near}
		m.current = near
		m.OnChange.Invoke(change)
	}
	return m.current
}

// Current returns the current station or nil.
func (m *Monitor) Current() *Station {
	return m.current
}

// Stations returns the monitored stations in scan order.
func (m *Monitor) Stations() []Station {
	return m.stations
}

// Intensity returns the highlight level for the station at index i.
func (m *Monitor) Intensity(i int) float32 {
	if i < 0 || i >= len(m.intensity) {
		return 0
	}
	return m.intensity[i]
}

// IntensityOf returns the highlight level for a station id.
func (m *Monitor) IntensityOf(id string) float32 {
	for i := range m.stations {
		if m.stations[i].ID == id {
			return m.intensity[i]
		}
	}
	return 0
}
