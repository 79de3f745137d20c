package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the projection settings used for culling.
type Lens struct {
	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultLens matches the renderer's perspective camera.
func DefaultLens(aspect float32) Lens {
	return Lens{FovY: 75, Aspect: aspect, Near: 0.1, Far: 1000}
}

// Plane is ax + by + cz + d = 0 with a unit normal.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

func (p Plane) distanceTo(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) + p.Distance
}

func normalizePlane(n mgl32.Vec3, d float32) Plane {
	l := n.Len()
	if l == 0 {
		return Plane{Normal: n, Distance: d}
	}
	return Plane{Normal: n.Mul(1 / l), Distance: d / l}
}

// Frustum is the six view planes: left, right, bottom, top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// Frustum extracts the view planes for the current pose (Gribb/Hartmann).
func (s State) Frustum(lens Lens) Frustum {
	view := mgl32.LookAtV(s.Position, s.Target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(lens.FovY), lens.Aspect, lens.Near, lens.Far)
	return ExtractFrustum(proj.Mul4(view))
}

// ExtractFrustum builds the planes from a combined view-projection matrix.
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0).Vec3(), vp.Row(1).Vec3(), vp.Row(2).Vec3(), vp.Row(3).Vec3()
	w0, w1, w2, w3 := vp.At(0, 3), vp.At(1, 3), vp.At(2, 3), vp.At(3, 3)

	var f Frustum
	f.Planes[0] = normalizePlane(r3.Add(r0), w3+w0)
	f.Planes[1] = normalizePlane(r3.Sub(r0), w3-w0)
	f.Planes[2] = normalizePlane(r3.Add(r1), w3+w1)
	f.Planes[3] = normalizePlane(r3.Sub(r1), w3-w1)
	f.Planes[4] = normalizePlane(r3.Add(r2), w3+w2)
	f.Planes[5] = normalizePlane(r3.Sub(r2), w3-w2)
	return f
}

// ContainsSphere reports whether a sphere is inside or touching the frustum.
func (f *Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.distanceTo(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point is inside the frustum.
func (f *Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for _, p := range f.Planes {
		if p.distanceTo(point) < 0 {
			return false
		}
	}
	return true
}
