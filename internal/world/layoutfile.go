package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/physics"
	"stationdrive/internal/proximity"
)

var (
	// ErrUnknownKind is returned for an object whose kind is not a known obstacle kind.
	ErrUnknownKind = errors.New("unknown obstacle kind")
	// ErrNoStations is returned for a layout file without stations.
	ErrNoStations = errors.New("layout has no stations")
	// ErrDuplicateStation is returned when two stations share an id.
	ErrDuplicateStation = errors.New("duplicate station id")
)

// --- JSON types ---

type LayoutFile struct {
	Seed     string       `json:"seed,omitempty"`
	Size     float32      `json:"size"`
	Spawn    SpawnDef     `json:"spawn"`
	Stations []StationDef `json:"stations"`
	Objects  []ObjectDef  `json:"objects"`
}

type SpawnDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw,omitempty"`
}

type StationDef struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Modal           string     `json:"modal"`
	Position        [3]float32 `json:"position"`
	Color           string     `json:"color"`
	Large           bool       `json:"large,omitempty"`
	ProximityRadius float32    `json:"proximityRadius,omitempty"`
	CollisionRadius float32    `json:"collisionRadius,omitempty"`
}

type ObjectDef struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw,omitempty"`
	Scale    float32    `json:"scale,omitempty"`
	Radius   float32    `json:"radius,omitempty"`
}

func vec(a [3]float32) mgl32.Vec3  { return mgl32.Vec3{a[0], a[1], a[2]} }
func array(v mgl32.Vec3) [3]float32 { return [3]float32{v[0], v[1], v[2]} }

// --- Loading ---

// LoadLayout reads a layout file from disk.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := DecodeLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// DecodeLayout parses and validates layout JSON.
func DecodeLayout(data []byte) (*Layout, error) {
	var lf LayoutFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(lf.Stations) == 0 {
		return nil, ErrNoStations
	}

	size := lf.Size
	if size <= 0 {
		size = DefaultGenOptions().Size
	}
	l := NewLayout(size)
	l.Seed = lf.Seed
	l.Spawn = vec(lf.Spawn.Position)
	l.SpawnYaw = lf.Spawn.Yaw

	for _, def := range lf.Stations {
		if _, ok := l.Stations.Get(def.ID); ok {
			return nil, fmt.Errorf("station %q: %w", def.ID, ErrDuplicateStation)
		}
		s, err := stationFromDef(def)
		if err != nil {
			return nil, err
		}
		l.AddStation(s)
	}

	for _, def := range lf.Objects {
		kind, ok := physics.ParseKind(def.Kind)
		if !ok || kind == physics.KindStation {
			return nil, fmt.Errorf("object %q kind %q: %w", def.Name, def.Kind, ErrUnknownKind)
		}
		scale := def.Scale
		if scale == 0 {
			scale = 1
		}
		l.Props = append(l.Props, Prop{
			Name:     def.Name,
			Kind:     kind,
			Position: vec(def.Position),
			Yaw:      def.Yaw,
			Scale:    scale,
			Radius:   def.Radius,
		})
	}
	return l, nil
}

func stationFromDef(def StationDef) (Station, error) {
	modal := def.Modal
	if modal == "" {
		modal = def.ID + "-modal"
	}
	title := def.Title
	if title == "" {
		title = def.ID
	}
	var color Color
	if def.Color != "" {
		c, err := ParseColor(def.Color)
		if err != nil {
			return Station{}, fmt.Errorf("station %q: %w", def.ID, err)
		}
		color = c
	}
	return Station{
		Station: proximity.Station{
			ID:              def.ID,
			Title:           title,
			Modal:           modal,
			Position:        vec(def.Position),
			ProximityRadius: def.ProximityRadius,
		},
		Color:           color,
		Large:           def.Large,
		CollisionRadius: def.CollisionRadius,
	}, nil
}

// --- Saving ---

// Encode converts the layout to its file form.
func (l *Layout) Encode() LayoutFile {
	lf := LayoutFile{
		Seed:  l.Seed,
		Size:  l.Size,
		Spawn: SpawnDef{Position: array(l.Spawn), Yaw: l.SpawnYaw},
	}
	for _, s := range l.StationList() {
		lf.Stations = append(lf.Stations, StationDef{
			ID:              s.ID,
			Title:           s.Title,
			Modal:           s.Modal,
			Position:        array(s.Position),
			Color:           s.Color.String(),
			Large:           s.Large,
			ProximityRadius: s.ProximityRadius,
			CollisionRadius: s.CollisionRadius,
		})
	}
	for _, p := range l.Props {
		lf.Objects = append(lf.Objects, ObjectDef{
			Name:     p.Name,
			Kind:     p.Kind.String(),
			Position: array(p.Position),
			Yaw:      p.Yaw,
			Scale:    p.Scale,
			Radius:   p.Radius,
		})
	}
	return lf
}

// SaveLayout writes the layout as indented JSON.
func (l *Layout) SaveLayout(path string) error {
	data, err := json.MarshalIndent(l.Encode(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}
