package locomotion

import (
	"movelab/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GroundSensor decides whether the body stands on something and what the
// surface beneath it looks like.
type GroundSensor struct {
	Query engine.PhysicsQuery
	Mask  engine.LayerMask

	// ProbeDistance is how far below the capsule's bottom sphere a surface
	// still counts as ground. ProbeOffset lifts the cast origin so a body
	// sunk slightly into the floor is not missed.
	ProbeDistance float32
	ProbeOffset   float32
	// SlopeRayExtra lengthens the normal ray past half the capsule height.
	SlopeRayExtra float32
}

func newGroundSensor(q engine.PhysicsQuery, cfg Config) GroundSensor {
	return GroundSensor{
		Query:         q,
		Mask:          cfg.GroundMask(),
		ProbeDistance: cfg.ProbeDistance,
		ProbeOffset:   cfg.ProbeOffset,
		SlopeRayExtra: cfg.SlopeRayExtra,
	}
}

// FeetPosition is the center of the capsule's bottom sphere, computed
// along the body's own up axis so non-uniform scale is handled.
func FeetPosition(b Body, c Capsule) rl.Vector3 {
	scale := b.GetScale()
	down := c.Height*scale.Y/2 - c.Radius*scale.X
	if down < 0 {
		down = 0
	}
	return rl.Vector3Subtract(b.GetPosition(), rl.Vector3Scale(b.GetUp(), down))
}

// Probe sphere-casts for ground contact and ray-casts for the surface
// normal. Against an unchanged scene it is a pure function of the body's
// position.
func (s GroundSensor) Probe(b Body, c Capsule) GroundState {
	var g GroundState
	up := b.GetUp()
	feet := FeetPosition(b, c)
	scale := b.GetScale()

	origin := rl.Vector3Add(feet, rl.Vector3Scale(up, s.ProbeOffset))
	if _, hit := s.Query.SphereCast(origin, c.Radius*scale.X, rl.Vector3Negate(up), s.ProbeDistance+s.ProbeOffset, s.Mask); hit {
		g.Grounded = true
	}

	rayLen := c.Height*scale.Y/2 + s.SlopeRayExtra
	if hit, ok := s.Query.Raycast(feet, rl.Vector3Negate(worldUp), rayLen, s.Mask); ok {
		g.HasSurface = true
		g.Normal = hit.Normal
		g.SlopeAngle = angleToUp(hit.Normal)
	}
	return g
}

// angleToUp returns the angle between n and world up in degrees.
func angleToUp(n rl.Vector3) float32 {
	l := rl.Vector3Length(n)
	if l == 0 {
		return 0
	}
	d := rl.Vector3DotProduct(n, worldUp) / l
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math32.Acos(d) * rl.Rad2deg
}
