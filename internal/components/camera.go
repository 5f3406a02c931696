package components

import (
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

// Camera renders from the Look on the same object. Distance > 0 pulls the
// eye back along the view direction for a third-person view.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Distance   float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Projection: rl.CameraPerspective,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"fov":      c.FOV,
		"distance": c.Distance,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := engine.Float32(data, "fov"); ok {
		c.FOV = f
	}
	if d, ok := engine.Float32(data, "distance"); ok {
		c.Distance = d
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eye := g.Transform.Position
	dir := g.Transform.Forward()
	if look := engine.GetComponent[*Look](g); look != nil {
		eye = look.Eye()
		dir = look.LookDirection()
	}
	target := rl.Vector3Add(eye, dir)
	if c.Distance > 0 {
		target = eye
		eye = rl.Vector3Subtract(eye, rl.Vector3Scale(dir, c.Distance))
	}

	return rl.Camera3D{
		Position:   eye,
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
