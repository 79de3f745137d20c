package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"

	"stationdrive/internal/physics"
)

// GenOptions controls procedural placement.
type GenOptions struct {
	Size float32

	Trees      int
	TreeSpread float32 // fraction of Size
	Rocks      int
	RockSpread float32

	MountainRings    int
	MountainsPerRing int // first ring; each further ring has two fewer
	RingSpacing      float32
	MountainDepth    float32 // y of the mountain base

	// SpawnClearance keeps props this far from the spawn point.
	SpawnClearance float32
	// StationMargin is added to a station's collision radius when placing props.
	StationMargin float32
	// MaxAttempts bounds rejection sampling for one prop.
	MaxAttempts int

	Radii physics.Radii
}

func DefaultGenOptions() GenOptions {
	return GenOptions{
		Size:             300,
		Trees:            25,
		TreeSpread:       0.7,
		Rocks:            20,
		RockSpread:       0.8,
		MountainRings:    3,
		MountainsPerRing: 12,
		RingSpacing:      100,
		MountainDepth:    -20,
		SpawnClearance:   8,
		StationMargin:    2,
		MaxAttempts:      100,
		Radii:            physics.DefaultRadii(),
	}
}

// SeedSource turns a seed string into a deterministic random source.
func SeedSource(seed string) *rand.Rand {
	h := xxh3.HashString128(seed)
	return rand.New(rand.NewPCG(h.Hi, h.Lo))
}

// Generate builds the stock stations and a seeded ring of props around them.
// The same seed and options always yield the same layout.
func Generate(seed string, opts GenOptions) *Layout {
	l := NewLayout(opts.Size)
	l.Seed = seed
	for _, s := range DefaultStations() {
		l.AddStation(s)
	}

	g := generator{rng: SeedSource(seed), opts: opts, layout: l}
	g.scatter(physics.KindTree, "tree", opts.Trees, opts.TreeSpread, 0.8, 0.4)
	g.scatter(physics.KindRock, "rock", opts.Rocks, opts.RockSpread, 1, 2)
	g.mountains()
	return l
}

type generator struct {
	rng    *rand.Rand
	opts   GenOptions
	layout *Layout
}

func (g *generator) spread(fraction float32) float32 {
	return (g.rng.Float32() - 0.5) * g.opts.Size * fraction
}

// scatter places n props of kind k uniformly in the spread square,
// rejecting spots that would block the spawn or touch a station.
func (g *generator) scatter(k physics.Kind, prefix string, n int, fraction, minScale, scaleRange float32) {
	radius := g.opts.Radii.For(k, false)
	for i := 0; i < n; i++ {
		var pos mgl32.Vec3
		placed := false
		for attempt := 0; attempt < g.opts.MaxAttempts; attempt++ {
			pos = mgl32.Vec3{g.spread(fraction), 0, g.spread(fraction)}
			if g.clear(pos, radius) {
				placed = true
				break
			}
		}
		yaw := g.rng.Float32() * 2 * math32.Pi
		scale := minScale + g.rng.Float32()*scaleRange
		if !placed {
			continue
		}
		g.layout.Props = append(g.layout.Props, Prop{
			Name:     fmt.Sprintf("%s-%d", prefix, i),
			Kind:     k,
			Position: pos,
			Yaw:      yaw,
			Scale:    scale,
		})
	}
}

func (g *generator) clear(pos mgl32.Vec3, radius float32) bool {
	if pos.Sub(g.layout.Spawn).Len() < g.opts.SpawnClearance+radius {
		return false
	}
	for el := g.layout.Stations.Front(); el != nil; el = el.Next() {
		s := el.Value
		r := s.CollisionRadius
		if r <= 0 {
			r = g.opts.Radii.For(physics.KindStation, s.Large)
		}
		if pos.Sub(s.Position).Len() < r+radius+g.opts.StationMargin {
			return false
		}
	}
	return true
}

// mountains rings the map: ring r sits at Size/2 + r*RingSpacing and holds
// MountainsPerRing - 2r evenly spaced peaks, each smaller than the last ring's.
func (g *generator) mountains() {
	for ring := 0; ring < g.opts.MountainRings; ring++ {
		dist := g.opts.Size/2 + float32(ring)*g.opts.RingSpacing
		count := g.opts.MountainsPerRing - ring*2
		heightMul := 1 - float32(ring)*0.3
		for i := 0; i < count; i++ {
			angle := float32(i) / float32(count) * 2 * math32.Pi
			g.layout.Props = append(g.layout.Props, Prop{
				Name:     fmt.Sprintf("mountain-%d-%d", ring, i),
				Kind:     physics.KindMountain,
				Position: mgl32.Vec3{math32.Cos(angle) * dist, g.opts.MountainDepth, math32.Sin(angle) * dist},
				Yaw:      g.rng.Float32() * math32.Pi,
				Scale:    (g.rng.Float32()*60 + 40) * heightMul,
			})
		}
	}
}
