package components

import (
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody()
	})
}

// Rigidbody is a dynamic body integrated by the physics world. Rotation is
// never simulated; FreezeRotation only records the intent for level files.
type Rigidbody struct {
	engine.BaseComponent
	Velocity       rl.Vector3
	Mass           float32
	Drag           float32 // linear damping, fraction of velocity removed per second
	Friction       float32 // tangential damping while touching a surface, 0 = ice
	UseGravity     bool
	IsKinematic    bool // moved by code only, never by forces or contacts
	FreezeRotation bool

	force        rl.Vector3 // mass-scaled, cleared every step
	acceleration rl.Vector3 // mass-independent, cleared every step
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:           1.0,
		Friction:       0,
		UseGravity:     true,
		FreezeRotation: true,
	}
}

func (r *Rigidbody) GetPosition() rl.Vector3 {
	return r.GetGameObject().Transform.Position
}

func (r *Rigidbody) SetPosition(p rl.Vector3) {
	r.GetGameObject().Transform.Position = p
}

func (r *Rigidbody) GetVelocity() rl.Vector3 {
	return r.Velocity
}

func (r *Rigidbody) SetVelocity(v rl.Vector3) {
	r.Velocity = v
}

func (r *Rigidbody) SetDrag(d float32) {
	r.Drag = d
}

func (r *Rigidbody) SetUseGravity(on bool) {
	r.UseGravity = on
}

func (r *Rigidbody) GetUp() rl.Vector3 {
	return r.GetGameObject().Transform.Up()
}

func (r *Rigidbody) GetScale() rl.Vector3 {
	return r.GetGameObject().Transform.Scale
}

// AddForce applies f using the given mode. Continuous modes accumulate
// until the next physics step; instantaneous modes change velocity now.
func (r *Rigidbody) AddForce(f rl.Vector3, mode engine.ForceMode) {
	if r.IsKinematic {
		return
	}
	switch mode {
	case engine.ForceModeForce:
		r.force = rl.Vector3Add(r.force, f)
	case engine.ForceModeAcceleration:
		r.acceleration = rl.Vector3Add(r.acceleration, f)
	case engine.ForceModeImpulse:
		r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(f, 1/r.mass()))
	case engine.ForceModeVelocityChange:
		r.Velocity = rl.Vector3Add(r.Velocity, f)
	}
}

// TakeAcceleration returns the acceleration queued since the last step
// and clears the accumulators.
func (r *Rigidbody) TakeAcceleration() rl.Vector3 {
	a := rl.Vector3Add(r.acceleration, rl.Vector3Scale(r.force, 1/r.mass()))
	r.force = rl.Vector3{}
	r.acceleration = rl.Vector3{}
	return a
}

func (r *Rigidbody) mass() float32 {
	if r.Mass <= 0 {
		return 1
	}
	return r.Mass
}

// TypeName implements engine.Serializable
func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

// Serialize implements engine.Serializable
func (r *Rigidbody) Serialize() map[string]any {
	return map[string]any{
		"mass":           r.Mass,
		"drag":           r.Drag,
		"friction":       r.Friction,
		"useGravity":     r.UseGravity,
		"isKinematic":    r.IsKinematic,
		"freezeRotation": r.FreezeRotation,
	}
}

// Deserialize implements engine.Serializable
func (r *Rigidbody) Deserialize(data map[string]any) {
	if m, ok := engine.Float32(data, "mass"); ok {
		r.Mass = m
	}
	if d, ok := engine.Float32(data, "drag"); ok {
		r.Drag = d
	}
	if f, ok := engine.Float32(data, "friction"); ok {
		r.Friction = f
	}
	if g, ok := engine.Bool(data, "useGravity"); ok {
		r.UseGravity = g
	}
	if k, ok := engine.Bool(data, "isKinematic"); ok {
		r.IsKinematic = k
	}
	if fr, ok := engine.Bool(data, "freezeRotation"); ok {
		r.FreezeRotation = fr
	}
}
