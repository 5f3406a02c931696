package components

import (
	"fmt"
	"strings"

	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.LightGray, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshCapsule
)

var meshTypeNames = []string{"cube", "capsule"}

func (t MeshType) String() string {
	if t < 0 || int(t) >= len(meshTypeNames) {
		return fmt.Sprintf("mesh(%d)", int(t))
	}
	return meshTypeNames[t]
}

func ParseMeshType(name string) (MeshType, error) {
	for i, n := range meshTypeNames {
		if strings.EqualFold(n, name) {
			return MeshType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mesh type %q%s", name, engine.DidYouMean(name, meshTypeNames))
}

// MeshRenderer draws a primitive with the object's transform. Cubes use
// Size; capsules take their shape from the object's CapsuleCollider.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	switch m.MeshType {
	case MeshCube:
		m.drawCube(g.Transform)
	case MeshCapsule:
		m.drawCapsule(g)
	}
}

func (m *MeshRenderer) drawCube(t engine.Transform) {
	rl.PushMatrix()
	rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
	// rlgl applies the last rotation first; Transform rotates X, then Y, then Z.
	rl.Rotatef(t.Rotation.Z, 0, 0, 1)
	rl.Rotatef(t.Rotation.Y, 0, 1, 0)
	rl.Rotatef(t.Rotation.X, 1, 0, 0)
	size := rl.Vector3Multiply(m.Size, t.Scale)
	if m.Wireframe {
		rl.DrawCubeWiresV(rl.Vector3{}, size, m.Color)
	} else {
		rl.DrawCubeV(rl.Vector3{}, size, m.Color)
		rl.DrawCubeWiresV(rl.Vector3{}, size, rl.Fade(rl.Black, 0.3))
	}
	rl.PopMatrix()
}

func (m *MeshRenderer) drawCapsule(g *engine.GameObject) {
	c := engine.GetComponent[*CapsuleCollider](g)
	if c == nil {
		return
	}
	a, b := c.Segment()
	if m.Wireframe {
		rl.DrawCapsuleWires(a, b, c.ScaledRadius(), 12, 6, m.Color)
		return
	}
	rl.DrawCapsule(a, b, c.ScaledRadius(), 12, 6, m.Color)
}

// TypeName implements engine.Serializable
func (m *MeshRenderer) TypeName() string {
	return "MeshRenderer"
}

// Serialize implements engine.Serializable
func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"mesh":      m.MeshType.String(),
		"color":     []int{int(m.Color.R), int(m.Color.G), int(m.Color.B), int(m.Color.A)},
		"size":      []float32{m.Size.X, m.Size.Y, m.Size.Z},
		"wireframe": m.Wireframe,
	}
}

// Deserialize implements engine.Serializable. Unknown mesh names keep
// the current mesh.
func (m *MeshRenderer) Deserialize(data map[string]any) {
	if s, ok := data["mesh"].(string); ok {
		if t, err := ParseMeshType(s); err == nil {
			m.MeshType = t
		}
	}
	if c, ok := engine.Color(data, "color"); ok {
		m.Color = c
	}
	if v, ok := engine.Vec3(data, "size"); ok {
		m.Size = v
	}
	if w, ok := engine.Bool(data, "wireframe"); ok {
		m.Wireframe = w
	}
}
