package components

import (
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

// BoxCollider is an oriented box following the object's rotation and scale.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Layer  int // 0..31, matched against query layer masks

	// IsTrigger boxes report contacts but never push bodies or answer queries.
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the box center in world space, with Offset rotated
// into the object's frame.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	t := b.GetGameObject().Transform
	offset := rl.Vector3Transform(rl.Vector3Multiply(b.Offset, t.Scale), t.RotationMatrix())
	return rl.Vector3Add(t.Position, offset)
}

// GetWorldSize returns Size multiplied by the object's scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	return rl.Vector3Multiply(b.Size, b.GetGameObject().Transform.Scale)
}

// TypeName implements engine.Serializable
func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

// Serialize implements engine.Serializable
func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"size":      []float32{b.Size.X, b.Size.Y, b.Size.Z},
		"offset":    []float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
		"layer":     b.Layer,
		"isTrigger": b.IsTrigger,
	}
}

// Deserialize implements engine.Serializable
func (b *BoxCollider) Deserialize(data map[string]any) {
	if v, ok := engine.Vec3(data, "size"); ok {
		b.Size = v
	}
	if v, ok := engine.Vec3(data, "offset"); ok {
		b.Offset = v
	}
	if l, ok := engine.Int(data, "layer"); ok {
		b.Layer = l
	}
	if t, ok := engine.Bool(data, "isTrigger"); ok {
		b.IsTrigger = t
	}
}
