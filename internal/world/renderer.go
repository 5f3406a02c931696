package world

import (
	"movelab/internal/components"
	"movelab/internal/engine"
	"movelab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene's mesh renderers plus optional debug shapes.
// It needs an open window.
type Renderer struct {
	Background rl.Color
	GridSlices int32
	ShowProbe  bool // ground probe sphere and slope ray of the player
	ShowBounds bool // wire boxes for colliders, triggers included

	drawn, culled int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.NewColor(32, 36, 44, 255),
		GridSlices: 40,
		ShowProbe:  true,
	}
}

// Stats reports how many objects the last Draw drew and skipped.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

func (r *Renderer) Draw(w *World, cam rl.Camera3D) {
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := ExtractFrustum(cam, aspect)
	r.drawn, r.culled = 0, 0

	rl.ClearBackground(r.Background)
	rl.BeginMode3D(cam)
	rl.DrawGrid(r.GridSlices, 1)

	for _, g := range w.Scene.GameObjects {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil || !g.Active {
			continue
		}
		// first person: the camera sits inside the player's capsule
		if g == w.Player && cam.Position == lookEye(g) {
			continue
		}
		if !visible(&frustum, g) {
			r.culled++
			continue
		}
		mr.Draw()
		r.drawn++
	}

	if r.ShowBounds {
		r.drawBounds(w)
	}
	if r.ShowProbe && w.Player != nil {
		r.drawProbe(w)
	}

	rl.EndMode3D()
}

func (r *Renderer) drawBounds(w *World) {
	for _, g := range w.Physics.Statics {
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		color := rl.Green
		if box.IsTrigger {
			color = rl.Red
		}
		b := physics.BoxOBB(box).Bounds()
		size := rl.Vector3Subtract(b.Max, b.Min)
		center := rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
		rl.DrawCubeWiresV(center, size, rl.Fade(color, 0.6))
	}
}

func (r *Renderer) drawProbe(w *World) {
	m := w.Motor()
	if m == nil || m.Controller() == nil {
		return
	}
	snap := m.Controller().Snapshot()
	capsule := engine.GetComponent[*components.CapsuleCollider](w.Player)
	if capsule == nil {
		return
	}
	a, _ := capsule.Segment()

	color := rl.Red
	if snap.Ground.Grounded {
		color = rl.Lime
	}
	rl.DrawSphereWires(a, capsule.ScaledRadius(), 6, 8, color)
	if snap.Ground.HasSurface {
		tip := rl.Vector3Add(a, rl.Vector3Scale(snap.Ground.Normal, 1))
		rl.DrawLine3D(a, tip, rl.SkyBlue)
	}
	v := snap.Velocity
	rl.DrawLine3D(w.Player.Transform.Position, rl.Vector3Add(w.Player.Transform.Position, rl.Vector3Scale(v, 0.25)), rl.Yellow)
}

// visible culls by collider bounds. Objects without a collider are always
// drawn.
func visible(f *Frustum, g *engine.GameObject) bool {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		b := physics.BoxOBB(box).Bounds()
		return f.ContainsBox(b.Min, b.Max)
	}
	if c := engine.GetComponent[*components.CapsuleCollider](g); c != nil {
		a, b := c.Segment()
		center := rl.Vector3Scale(rl.Vector3Add(a, b), 0.5)
		return f.ContainsSphere(center, rl.Vector3Distance(a, b)/2+c.ScaledRadius())
	}
	return true
}

func lookEye(g *engine.GameObject) rl.Vector3 {
	if look := engine.GetComponent[*components.Look](g); look != nil {
		return look.Eye()
	}
	return g.Transform.Position
}
