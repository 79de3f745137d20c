// Package sim runs the per-tick pipeline: motion, collision, camera, proximity.
package sim

import (
	"github.com/rs/zerolog"

	"stationdrive/internal/camera"
	"stationdrive/internal/engine"
	"stationdrive/internal/input"
	"stationdrive/internal/physics"
	"stationdrive/internal/proximity"
	"stationdrive/internal/telemetry"
	"stationdrive/internal/vehicle"
)

// ContentRequest asks the host to open the content surface of a station.
type ContentRequest struct {
	StationID string
	Modal     string
	Title     string
}

// Frame reports what one tick did.
type Frame struct {
	Outcome physics.Outcome
	Station *proximity.Station
}

// Options wires a Simulation. Nil handles disable the stage that uses them.
type Options struct {
	Vehicle   *vehicle.State
	Obstacles []physics.Obstacle
	Camera    *camera.Follow
	Monitor   *proximity.Monitor

	VehicleTuning vehicle.Tuning
	Response      physics.Response

	Logger  zerolog.Logger
	Metrics *telemetry.Metrics
}

// Simulation owns no state of its own beyond edge detection; every stage
// writes only the handle it was given.
type Simulation struct {
	vehicle   *vehicle.State
	obstacles []physics.Obstacle
	camera    *camera.Follow
	monitor   *proximity.Monitor

	vehicleTuning vehicle.Tuning
	response      physics.Response

	log     zerolog.Logger
	metrics *telemetry.Metrics

	// OnContentRequest fires on an Interact press while a station is current.
	OnContentRequest engine.EventWithArg[ContentRequest]
	// OnCloseContent fires on a Cancel press.
	OnCloseContent engine.Event
	// OnBounce fires when the vehicle is rolled back off an obstacle.
	OnBounce engine.EventWithArg[physics.Obstacle]

	prev  input.Snapshot
	ticks uint64
}

func New(o Options) *Simulation {
	s := &Simulation{
		vehicle:       o.Vehicle,
		obstacles:     o.Obstacles,
		camera:        o.Camera,
		monitor:       o.Monitor,
		vehicleTuning: o.VehicleTuning,
		response:      o.Response,
		log:           o.Logger,
		metrics:       o.Metrics,
	}
	if s.monitor != nil {
		s.monitor.OnChange.AddListener(s.onStationChange)
	}
	return s
}

// Tick advances the world by one fixed step using a single input snapshot.
func (s *Simulation) Tick(in input.Snapshot) Frame {
	if s == nil || s.vehicle == nil {
		return Frame{}
	}
	s.ticks++
	s.metrics.Tick()

	prev := *s.vehicle
	candidate := vehicle.Advance(in, prev, s.vehicleTuning)
	next, outcome := physics.Step(prev, candidate, s.obstacles, s.response)
	*s.vehicle = next

	if outcome == physics.Bounced {
		hit, _ := physics.FirstHit(candidate.Position, s.obstacles)
		s.log.Debug().
			Str("obstacle", hit.Name).
			Str("kind", hit.Kind.String()).
			Float32("velocity", next.LinearVelocity).
			Msg("collision")
		s.metrics.Collision(outcome.String())
		s.OnBounce.Invoke(hit)
	}

	if s.camera != nil {
		s.camera.Update(next, in)
	}

	var current *proximity.Station
	if s.monitor != nil {
		current = s.monitor.Update(next.Position)
	}

	s.handleRequests(in, current)
	s.prev = in

	return Frame{Outcome: outcome, Station: current}
}

func (s *Simulation) handleRequests(in input.Snapshot, current *proximity.Station) {
	if s.pressedNow(in, input.Interact) && current != nil {
		req := ContentRequest{StationID: current.ID, Modal: current.Modal, Title: current.Title}
		s.log.Debug().Str("station", req.StationID).Str("modal", req.Modal).Msg("content requested")
		s.metrics.ContentRequest(req.Modal)
		s.OnContentRequest.Invoke(req)
	}
	if s.pressedNow(in, input.Cancel) {
		s.OnCloseContent.Invoke()
	}
}

func (s *Simulation) pressedNow(in input.Snapshot, a input.Action) bool {
	return in.Pressed(a) && !s.prev.Pressed(a)
}

func (s *Simulation) onStationChange(c proximity.Change) {
	to := ""
	if c.To != nil {
		to = c.To.ID
	}
	from := ""
	if c.From != nil {
		from = c.From.ID
	}
	s.log.Debug().Str("from", from).Str("to", to).Msg("station changed")
	s.metrics.StationChange(to)
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Vehicle returns the vehicle handle the simulation drives.
func (s *Simulation) Vehicle() *vehicle.State {
	return s.vehicle
}

func (s *Simulation) Camera() *camera.Follow {
	return s.camera
}

func (s *Simulation) Monitor() *proximity.Monitor {
	return s.monitor
}

func (s *Simulation) Obstacles() []physics.Obstacle {
	return s.obstacles
}
