package physics

import (
	"movelab/internal/components"
	"movelab/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest static box hit along the ray. Boxes whose
// layer is not in mask are skipped. A ray starting inside a box does not
// hit that box.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	end := rl.Vector3Add(origin, rl.Vector3Scale(direction, maxDistance))
	sweep := sweepBounds(origin, end, 0)

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
		if h, ok := raycastOBB(origin, direction, o, maxDistance); ok && h.Distance <= closest.Distance {
			closest = h
			closest.GameObject = obj
			hit = true
		}
	}
	return closest, hit
}

// raycastOBB is the slab test done in the box's local frame. direction
// must be normalized.
func raycastOBB(origin, direction rl.Vector3, o OBB, maxDistance float32) (engine.RaycastResult, bool) {
	lo := o.toLocal(origin)
	var ld [3]float32
	for i := 0; i < 3; i++ {
		ld[i] = rl.Vector3DotProduct(direction, o.Axes[i])
	}

	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	entryAxis := -1
	var entrySign float32

	for i := 0; i < 3; i++ {
		h := o.half(i)
		if math32.Abs(ld[i]) < 1e-8 {
			if lo[i] < -h || lo[i] > h {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (-h - lo[i]) / ld[i]
		t2 := (h - lo[i]) / ld[i]
		sign := float32(-1) // entering through the -h face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = i
			entrySign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	if entryAxis < 0 || tmin < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}

	return engine.RaycastResult{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin)),
		Normal:   rl.Vector3Scale(o.Axes[entryAxis], entrySign),
		Distance: tmin,
	}, true
}
