package components

import (
	"movelab/internal/engine"
	"movelab/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Look", func() engine.Serializable {
		return NewLook()
	})
}

// Look turns look input into yaw and pitch and provides the horizontal
// basis the locomotion controller moves along. Yaw 0 faces +Z; positive
// yaw turns toward +X.
type Look struct {
	engine.BaseComponent
	Input     input.Source
	Yaw       float32 // degrees
	Pitch     float32 // degrees, positive looks up
	MinPitch  float32
	MaxPitch  float32
	EyeHeight float32 // above the object's position

	// BodyFollowsYaw copies Yaw into the object's rotation every frame.
	BodyFollowsYaw bool
}

func NewLook() *Look {
	return &Look{
		MinPitch:       -89,
		MaxPitch:       89,
		EyeHeight:      0.6,
		BodyFollowsYaw: true,
	}
}

func (l *Look) Update(deltaTime float32) {
	if l.Input != nil {
		d := l.Input.LookDelta()
		l.Turn(d.X, d.Y)
	}
	if g := l.GetGameObject(); g != nil && l.BodyFollowsYaw {
		g.Transform.Rotation.Y = l.Yaw
	}
}

// Turn adds to yaw (positive turns right) and pitch (positive looks up).
// Yaw wraps to [0, 360); pitch is clamped.
func (l *Look) Turn(right, up float32) {
	l.Yaw = wrapDegrees(l.Yaw - right)
	l.Pitch = clampPitch(l.Pitch+up, l.MinPitch, l.MaxPitch)
}

// Forward is the flattened view direction.
func (l *Look) Forward() rl.Vector3 {
	yaw := l.Yaw * rl.Deg2rad
	return rl.Vector3{X: math32.Sin(yaw), Z: math32.Cos(yaw)}
}

// Right is perpendicular to Forward on the horizontal plane.
func (l *Look) Right() rl.Vector3 {
	return rl.Vector3CrossProduct(l.Forward(), rl.Vector3{Y: 1})
}

// LookDirection includes pitch.
func (l *Look) LookDirection() rl.Vector3 {
	yaw := l.Yaw * rl.Deg2rad
	pitch := l.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Sin(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Cos(yaw) * math32.Cos(pitch),
	}
}

// Eye is the camera position in world space.
func (l *Look) Eye() rl.Vector3 {
	p := l.GetGameObject().Transform.Position
	p.Y += l.EyeHeight
	return p
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clampPitch(p, lo, hi float32) float32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if p < lo {
		return lo
	}
	if p > hi {
		return hi
	}
	return p
}

// TypeName implements engine.Serializable
func (l *Look) TypeName() string {
	return "Look"
}

// Serialize implements engine.Serializable
func (l *Look) Serialize() map[string]any {
	return map[string]any{
		"yaw":            l.Yaw,
		"pitch":          l.Pitch,
		"minPitch":       l.MinPitch,
		"maxPitch":       l.MaxPitch,
		"eyeHeight":      l.EyeHeight,
		"bodyFollowsYaw": l.BodyFollowsYaw,
	}
}

// Deserialize implements engine.Serializable
func (l *Look) Deserialize(data map[string]any) {
	if v, ok := engine.Float32(data, "yaw"); ok {
		l.Yaw = v
	}
	if v, ok := engine.Float32(data, "pitch"); ok {
		l.Pitch = v
	}
	if v, ok := engine.Float32(data, "minPitch"); ok {
		l.MinPitch = v
	}
	if v, ok := engine.Float32(data, "maxPitch"); ok {
		l.MaxPitch = v
	}
	if v, ok := engine.Float32(data, "eyeHeight"); ok {
		l.EyeHeight = v
	}
	if v, ok := engine.Bool(data, "bodyFollowsYaw"); ok {
		l.BodyFollowsYaw = v
	}
}
