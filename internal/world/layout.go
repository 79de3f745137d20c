// Package world describes the drivable map: stations, props and spawn.
package world

import (
	"fmt"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/physics"
	"stationdrive/internal/proximity"
)

// Color is a packed 0xRRGGBB value.
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return Color(v), nil
}

// Station is a proximity station plus its physical and visual properties.
type Station struct {
	proximity.Station

	Color Color
	// Large selects the enlarged collision radius.
	Large bool
	// CollisionRadius overrides the kind radius when positive.
	CollisionRadius float32
}

// Prop is a static obstacle that is not a station.
type Prop struct {
	Name     string
	Kind     physics.Kind
	Position mgl32.Vec3
	Yaw      float32 // radians, visual only
	Scale    float32 // visual size, not collision
	Radius   float32 // collision override, 0 uses the kind radius
}

// Layout is the static content of a session. It is built once and never mutated by the core.
type Layout struct {
	Seed     string
	Size     float32
	Spawn    mgl32.Vec3
	SpawnYaw float32

	Stations *orderedmap.OrderedMap[string, Station]
	Props    []Prop
}

func NewLayout(size float32) *Layout {
	return &Layout{
		Size:     size,
		Stations: orderedmap.NewOrderedMap[string, Station](),
	}
}

// AddStation appends s. A repeated id replaces the earlier station in place.
func (l *Layout) AddStation(s Station) {
	l.Stations.Set(s.ID, s)
}

// StationList returns the stations in insertion order.
func (l *Layout) StationList() []Station {
	out := make([]Station, 0, l.Stations.Len())
	for el := l.Stations.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// ProximityStations returns the proximity records in scan order.
func (l *Layout) ProximityStations() []proximity.Station {
	out := make([]proximity.Station, 0, l.Stations.Len())
	for el := l.Stations.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.Station)
	}
	return out
}

// Obstacles returns every collidable: stations first, then props.
func (l *Layout) Obstacles(radii physics.Radii) []physics.Obstacle {
	out := make([]physics.Obstacle, 0, l.Stations.Len()+len(l.Props))
	for el := l.Stations.Front(); el != nil; el = el.Next() {
		s := el.Value
		out = append(out, physics.NewObstacle(s.ID, s.Position, physics.KindStation, s.Large, s.CollisionRadius, radii))
	}
	for _, p := range l.Props {
		out = append(out, physics.NewObstacle(p.Name, p.Position, p.Kind, false, p.Radius, radii))
	}
	return out
}

// CountKind returns how many props have kind k.
func (l *Layout) CountKind(k physics.Kind) int {
	n := 0
	for _, p := range l.Props {
		if p.Kind == k {
			n++
		}
	}
	return n
}
