package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/vehicle"
)

// IsColliding reports whether pos lies strictly inside any obstacle radius.
// It stops at the first hit.
func IsColliding(pos mgl32.Vec3, obstacles []Obstacle) bool {
	_, ok := FirstHit(pos, obstacles)
	return ok
}

// FirstHit returns the first obstacle, in list order, that contains pos.
func FirstHit(pos mgl32.Vec3, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if pos.Sub(o.Position).Len() < o.Radius {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Response holds the collision response constants.
type Response struct {
	Restitution     float32 // multiplies linear velocity on impact, negative to bounce back
	TurnAttenuation float32 // multiplies turn velocity on impact
}

// DefaultResponse returns the stock bounce.
func DefaultResponse() Response {
	return Response{Restitution: -0.3, TurnAttenuation: 0.5}
}

// Outcome describes what Respond did.
type Outcome int

const (
	Clear     Outcome = iota // candidate accepted, no contact
	Bounced                  // newly entered an obstacle, rolled back
	Embedded                 // already inside before the move, candidate accepted
)

func (o Outcome) String() string {
	switch o {
	case Bounced:
		return "bounced"
	case Embedded:
		return "embedded"
	default:
		return "clear"
	}
}

// Respond settles a tentative move. Only the transition from free to
// colliding is corrected: a vehicle that starts the tick inside an obstacle
// keeps its candidate so it can drive out.
func Respond(prev, candidate vehicle.State, wasColliding, isColliding bool, r Response) (vehicle.State, Outcome) {
	switch {
	case !isColliding:
		return candidate, Clear
	case wasColliding:
		return candidate, Embedded
	}

	out := candidate
	out.Position = prev.Position
	out.LinearVelocity = candidate.LinearVelocity * r.Restitution
	out.TurnVelocity = candidate.TurnVelocity * r.TurnAttenuation
	return out, Bounced
}

// Step runs the before/after collision check around a candidate and applies Respond.
func Step(prev, candidate vehicle.State, obstacles []Obstacle, r Response) (vehicle.State, Outcome) {
	was := IsColliding(prev.Position, obstacles)
	is := IsColliding(candidate.Position, obstacles)
	return Respond(prev, candidate, was, is, r)
}
