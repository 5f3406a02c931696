package locomotion

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type SlopeClass int

const (
	NoSurface SlopeClass = iota
	Flat
	Walkable
	TooSteep
)

func (s SlopeClass) String() string {
	switch s {
	case NoSurface:
		return "none"
	case Flat:
		return "flat"
	case Walkable:
		return "walkable"
	case TooSteep:
		return "too-steep"
	}
	return "unknown"
}

// flatEpsilon absorbs float noise in normals of level ground.
const flatEpsilon = 0.01

// Classify buckets the surface angle. An angle exactly at maxWalkable is
// too steep.
func Classify(g GroundState, maxWalkable float32) SlopeClass {
	switch {
	case !g.HasSurface:
		return NoSurface
	case g.SlopeAngle < flatEpsilon:
		return Flat
	case g.SlopeAngle < maxWalkable:
		return Walkable
	default:
		return TooSteep
	}
}

// ProjectOnPlane removes v's component along the plane normal n.
func ProjectOnPlane(v, n rl.Vector3) rl.Vector3 {
	nn := rl.Vector3DotProduct(n, n)
	if nn == 0 {
		return v
	}
	return rl.Vector3Subtract(v, rl.Vector3Scale(n, rl.Vector3DotProduct(v, n)/nn))
}

// SlopeDirection projects dir onto the surface and renormalises it, so
// walking uphill is as fast as walking on the flat. A dir parallel to the
// normal yields the zero vector.
func SlopeDirection(dir, normal rl.Vector3) rl.Vector3 {
	p := ProjectOnPlane(dir, normal)
	if rl.Vector3Length(p) < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(p)
}

// SlideForce pushes the body down a surface that is too steep to stand
// on. Its magnitude grows linearly from MinSlideForce at MaxSlopeAngle to
// MaxSlideForce at SlideSaturationAngle.
func SlideForce(g GroundState, cfg Config) rl.Vector3 {
	dir := SlopeDirection(rl.Vector3Negate(worldUp), g.Normal)
	t := inverseLerp(cfg.MaxSlopeAngle, cfg.SlideSaturationAngle, g.SlopeAngle)
	mag := cfg.MinSlideForce + (cfg.MaxSlideForce-cfg.MinSlideForce)*t
	return rl.Vector3Scale(dir, mag)
}

// inverseLerp returns where v sits between a and b, clamped to [0,1].
func inverseLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	t := (v - a) / (b - a)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
