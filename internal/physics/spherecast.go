package physics

import (
	"movelab/internal/components"
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	castSkin       = 1e-4
	castIterations = 64
)

// SphereCast sweeps a sphere along direction and returns the first static
// box it touches. A sphere already overlapping a box at the start reports
// a hit at distance zero.
func (p *PhysicsWorld) SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance < 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	end := rl.Vector3Add(origin, rl.Vector3Scale(direction, maxDistance))
	sweep := sweepBounds(origin, end, radius)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range p.Statics {
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil || box.IsTrigger || !mask.Contains(box.Layer) {
			continue
		}
		o := BoxOBB(box)
		if !o.Bounds().Intersects(sweep) {
			continue
		}
		if h, ok := sphereCastOBB(origin, radius, direction, o, maxDistance); ok && h.Distance <= closest.Distance {
			closest = h
			closest.GameObject = obj
			hit = true
		}
	}
	return closest, hit
}

// sphereCastOBB uses conservative advancement: the distance from the
// sphere to the box is a safe step along the ray because the box is convex.
func sphereCastOBB(origin rl.Vector3, radius float32, direction rl.Vector3, o OBB, maxDistance float32) (engine.RaycastResult, bool) {
	var t float32
	for i := 0; i < castIterations; i++ {
		center := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		closest := ClosestPointOnOBB(o, center)
		gap := rl.Vector3Distance(center, closest) - radius

		if gap <= castSkin {
			return engine.RaycastResult{
				Point:    closest,
				Normal:   contactNormal(o, center, closest),
				Distance: t,
			}, true
		}
		t += gap
		if t > maxDistance {
			return engine.RaycastResult{}, false
		}
	}
	return engine.RaycastResult{}, false
}

// contactNormal points from the box toward center.
func contactNormal(o OBB, center, closest rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(center, closest)
	if rl.Vector3Length(d) > 1e-6 {
		return rl.Vector3Normalize(d)
	}
	n, _ := o.exitFace(center)
	return n
}
