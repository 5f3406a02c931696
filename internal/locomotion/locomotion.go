// Package locomotion implements a grounded, force-driven character
// controller. It owns no physics: it probes the scene through a query
// service and pushes a body through a small Body interface, once per
// fixed physics step.
package locomotion

import (
	"errors"

	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoBody     = errors.New("locomotion: no body")
	ErrNoCollider = errors.New("locomotion: capsule collider missing or degenerate")
	ErrNoQuery    = errors.New("locomotion: no physics query service")
	ErrNoInput    = errors.New("locomotion: no input source")
)

var worldUp = rl.Vector3{Y: 1}

// Body is the rigid body the controller drives. The controller only
// changes velocity, forces, drag and whether native gravity applies.
type Body interface {
	GetPosition() rl.Vector3
	GetVelocity() rl.Vector3
	SetVelocity(v rl.Vector3)
	AddForce(f rl.Vector3, mode engine.ForceMode)
	SetDrag(d float32)
	SetUseGravity(on bool)
	GetUp() rl.Vector3
	GetScale() rl.Vector3
}

// Capsule is the body's collider shape before scaling.
type Capsule struct {
	Height float32
	Radius float32
}

func (c Capsule) valid() bool {
	return c.Height > 0 && c.Radius > 0 && c.Height >= 2*c.Radius
}

// Orientation supplies the horizontal basis used to turn 2D input into a
// world direction, usually from a camera look component.
type Orientation interface {
	Forward() rl.Vector3
	Right() rl.Vector3
}

type worldAxes struct{}

func (worldAxes) Forward() rl.Vector3 { return rl.Vector3{Z: 1} }
func (worldAxes) Right() rl.Vector3   { return rl.Vector3{X: -1} }

// GroundState is recomputed every physics step.
type GroundState struct {
	Grounded   bool
	HasSurface bool
	Normal     rl.Vector3
	SlopeAngle float32 // degrees from world up, 0 when HasSurface is false
}

// State is the speed state machine's current variant.
type State int

const (
	Walking State = iota
	Sprinting
	Dashing
	Airborne
)

func (s State) String() string {
	switch s {
	case Walking:
		return "walking"
	case Sprinting:
		return "sprinting"
	case Dashing:
		return "dashing"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

// Features switches whole behaviours on or off, replacing the separate
// controller variants.
type Features struct {
	Slopes    bool `yaml:"slopes"`
	MultiJump bool `yaml:"multi_jump"`
	Dash      bool `yaml:"dash"`
	Sprint    bool `yaml:"sprint"`
}

// Forces records what the integrator pushed this step.
type Forces struct {
	Move     rl.Vector3
	Slide    rl.Vector3
	Stick    rl.Vector3
	Gravity  rl.Vector3 // acceleration on top of native gravity
	Friction rl.Vector3
}
