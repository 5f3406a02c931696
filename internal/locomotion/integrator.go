package locomotion

import (
	"movelab/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Step is everything the integrator needs to know about the current tick.
type Step struct {
	Dt           float32
	Dir          rl.Vector3 // unit world-space input direction, or zero
	Speed        float32
	State        State
	Ground       GroundState
	Slope        SlopeClass
	ExitingSlope bool
	Jumped       bool
}

// onWalkableSlope reports whether slope projection applies this tick.
func (s Step) onWalkableSlope() bool {
	return s.Ground.Grounded && s.Slope == Walkable && !s.ExitingSlope
}

// Integrator turns a Step into forces, gravity shaping, a speed clamp and
// a drag value on the body.
type Integrator struct {
	EngineGravityY float32

	graceLeft  float32
	wasOnSlope bool
	lastForces Forces
}

func (in *Integrator) Forces() Forces { return in.lastForces }

// Apply runs one tick. The clamp comes first so it acts on the velocity
// the last physics step produced, then this tick's forces are queued.
func (in *Integrator) Apply(b Body, cfg Config, s Step) {
	var f Forces

	full3D := s.onWalkableSlope()
	b.SetVelocity(ClampVelocity(b.GetVelocity(), s.Speed, full3D, cfg.MaxVerticalSpeed))

	if s.State != Dashing {
		f.Move, f.Slide, f.Stick = movementForces(b, cfg, s)
		b.AddForce(rl.Vector3Add(rl.Vector3Add(f.Move, f.Slide), f.Stick), engine.ForceModeForce)
	}

	f.Gravity = in.shapeGravity(b, cfg, s)
	if f.Gravity != (rl.Vector3{}) {
		b.AddForce(f.Gravity, engine.ForceModeAcceleration)
	}

	f.Friction = idleFriction(b, cfg, s)
	if f.Friction != (rl.Vector3{}) {
		b.AddForce(f.Friction, engine.ForceModeAcceleration)
	}

	b.SetDrag(SelectDrag(cfg, s))
	in.lastForces = f
}

// movementForces applies the priority rules: walkable slope, too steep,
// flat ground, air.
func movementForces(b Body, cfg Config, s Step) (move, slide, stick rl.Vector3) {
	scale := s.Speed * cfg.GroundForceScale
	switch {
	case s.onWalkableSlope():
		move = rl.Vector3Scale(SlopeDirection(s.Dir, s.Ground.Normal), scale)
		if b.GetVelocity().Y > 0 {
			stick = rl.Vector3Scale(worldUp, -cfg.SlopeStickForce)
		}
	case s.Ground.Grounded && s.Slope == TooSteep:
		slide = SlideForce(s.Ground, cfg)
	case s.Ground.Grounded:
		move = rl.Vector3Scale(s.Dir, scale)
	default:
		move = rl.Vector3Scale(s.Dir, scale*cfg.AirControl)
	}
	return move, slide, stick
}

// shapeGravity toggles native gravity and returns the extra acceleration
// to add on top of it.
func (in *Integrator) shapeGravity(b Body, cfg Config, s Step) rl.Vector3 {
	onSlope := s.onWalkableSlope()

	if in.wasOnSlope && !onSlope && !s.Ground.Grounded && !s.Jumped && !s.ExitingSlope {
		in.graceLeft = cfg.ExtraGravityAfterSlope
	}
	if s.Ground.Grounded || s.Jumped || s.ExitingSlope {
		in.graceLeft = 0
	}
	in.wasOnSlope = onSlope

	native := !(cfg.SuppressGravityOnSlope && onSlope)
	b.SetUseGravity(native)
	if !native {
		return rl.Vector3{}
	}

	var extra float32
	if cfg.TargetFallAcceleration > 0 {
		extra += -cfg.TargetFallAcceleration - in.EngineGravityY
	}
	if in.graceLeft > 0 {
		in.graceLeft -= s.Dt
		extra -= cfg.ExtraGravity * cfg.FallAcceleration(in.EngineGravityY)
	}
	return rl.Vector3Scale(worldUp, extra)
}

// idleFriction brakes a grounded body with no input. Below MinVelocity it
// stops the body outright.
func idleFriction(b Body, cfg Config, s Step) rl.Vector3 {
	if !s.Ground.Grounded || s.State == Dashing || s.Jumped || s.Slope == TooSteep {
		return rl.Vector3{}
	}
	if rl.Vector3Length(s.Dir) > 0 {
		return rl.Vector3{}
	}
	v := b.GetVelocity()
	if rl.Vector3Length(v) < cfg.MinVelocity {
		b.SetVelocity(rl.Vector3{})
		return rl.Vector3{}
	}
	horizontal := rl.Vector3{X: v.X, Z: v.Z}
	speed := rl.Vector3Length(horizontal)
	if speed == 0 || cfg.IdleFriction == 0 || s.Dt <= 0 {
		return rl.Vector3{}
	}
	// Never brake harder than what stops the body this tick.
	mag := math32.Min(cfg.IdleFriction, speed/s.Dt)
	return rl.Vector3Scale(horizontal, -mag/speed)
}

// ClampVelocity limits v to limit. Normally only the horizontal part is
// limited and vertical speed is kept; with full3D the whole vector is.
// maxUp, when positive, caps upward speed only.
func ClampVelocity(v rl.Vector3, limit float32, full3D bool, maxUp float32) rl.Vector3 {
	if full3D {
		if l := rl.Vector3Length(v); l > limit && l > 0 {
			v = rl.Vector3Scale(v, limit/l)
		}
	} else {
		h := math32.Sqrt(v.X*v.X + v.Z*v.Z)
		if h > limit && h > 0 {
			k := limit / h
			v.X *= k
			v.Z *= k
		}
	}
	if maxUp > 0 && v.Y > maxUp {
		v.Y = maxUp
	}
	return v
}

// SelectDrag picks the damping for this tick.
func SelectDrag(cfg Config, s Step) float32 {
	switch {
	case s.State == Dashing:
		return cfg.DashDrag
	case s.Ground.Grounded && s.Slope == TooSteep:
		return cfg.SlideDrag
	case s.Ground.Grounded:
		return cfg.GroundDrag
	default:
		return cfg.AirDrag
	}
}
