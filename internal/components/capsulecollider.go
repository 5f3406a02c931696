package components

import (
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("CapsuleCollider", func() engine.Serializable {
		return NewCapsuleCollider(2, 0.5)
	})
}

// CapsuleCollider is an upright capsule along the object's local Y axis.
// Height is the full tip-to-tip length before scaling.
type CapsuleCollider struct {
	engine.BaseComponent
	Height float32
	Radius float32
	Offset rl.Vector3
}

func NewCapsuleCollider(height, radius float32) *CapsuleCollider {
	return &CapsuleCollider{Height: height, Radius: radius}
}

func (c *CapsuleCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(c.GetGameObject().Transform.Position, c.Offset)
}

// ScaledRadius uses the X scale, matching how the ground probe sizes its sphere.
func (c *CapsuleCollider) ScaledRadius() float32 {
	return c.Radius * c.GetGameObject().Transform.Scale.X
}

// Segment returns the end points of the capsule's inner line segment in
// world space. Sweeping a sphere of ScaledRadius along it gives the shape.
func (c *CapsuleCollider) Segment() (a, b rl.Vector3) {
	t := c.GetGameObject().Transform
	half := c.Height*t.Scale.Y/2 - c.ScaledRadius()
	if half < 0 {
		half = 0
	}
	center := c.GetCenter()
	up := rl.Vector3Scale(t.Up(), half)
	return rl.Vector3Subtract(center, up), rl.Vector3Add(center, up)
}

// TypeName implements engine.Serializable
func (c *CapsuleCollider) TypeName() string {
	return "CapsuleCollider"
}

// Serialize implements engine.Serializable
func (c *CapsuleCollider) Serialize() map[string]any {
	return map[string]any{
		"height": c.Height,
		"radius": c.Radius,
	}
}

// Deserialize implements engine.Serializable
func (c *CapsuleCollider) Deserialize(data map[string]any) {
	if h, ok := engine.Float32(data, "height"); ok {
		c.Height = h
	}
	if r, ok := engine.Float32(data, "radius"); ok {
		c.Radius = r
	}
}
