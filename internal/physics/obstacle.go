package physics

import "github.com/go-gl/mathgl/mgl32"

// Kind classifies a static obstacle.
type Kind int

const (
	KindUnknown Kind = iota
	KindStation
	KindMountain
	KindTree
	KindRock
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindStation:  "station",
	KindMountain: "mountain",
	KindTree:     "tree",
	KindRock:     "rock",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind maps a kind name back to a Kind. Unrecognized names return false.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && k != KindUnknown {
			return k, true
		}
	}
	return KindUnknown, false
}

// Radii is the collision radius table, keyed by kind.
type Radii struct {
	Station      float32
	LargeStation float32
	Mountain     float32
	Tree         float32
	Rock         float32
	Fallback     float32
}

// DefaultRadii returns the stock radius table.
func DefaultRadii() Radii {
	return Radii{
		Station:      12,
		LargeStation: 25,
		Mountain:     35,
		Tree:         3,
		Rock:         1,
		Fallback:     3,
	}
}

// For returns the radius for a kind. Large only matters for stations.
func (r Radii) For(k Kind, large bool) float32 {
	switch k {
	case KindStation:
		if large {
			return r.LargeStation
		}
		return r.Station
	case KindMountain:
		return r.Mountain
	case KindTree:
		return r.Tree
	case KindRock:
		return r.Rock
	default:
		return r.Fallback
	}
}

// Obstacle is an immutable collidable point with a radius.
type Obstacle struct {
	Name     string
	Position mgl32.Vec3
	Kind     Kind
	Radius   float32
}

// NewObstacle builds an obstacle whose radius comes from the table.
// A positive override replaces the table value.
func NewObstacle(name string, pos mgl32.Vec3, kind Kind, large bool, override float32, radii Radii) Obstacle {
	r := radii.For(kind, large)
	if override > 0 {
		r = override
	}
	return Obstacle{Name: name, Position: pos, Kind: kind, Radius: r}
}
