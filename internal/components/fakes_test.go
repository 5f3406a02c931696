package components

import (
	"movelab/internal/engine"
	"movelab/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeInput struct {
	axes rl.Vector2
	look rl.Vector2
	held map[input.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[input.Action]bool)}
}

func (f *fakeInput) Axes() rl.Vector2         { return f.axes }
func (f *fakeInput) LookDelta() rl.Vector2    { return f.look }
func (f *fakeInput) Held(a input.Action) bool { return f.held[a] }

// floorQuery is an endless floor with its top at y = 0.
type floorQuery struct{}

func (floorQuery) Raycast(origin, dir rl.Vector3, maxDist float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if dir.Y >= 0 || origin.Y < 0 {
		return engine.RaycastResult{}, false
	}
	d := origin.Y / -dir.Y
	if d > maxDist {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{Point: rl.Vector3{X: origin.X, Z: origin.Z}, Normal: rl.Vector3{Y: 1}, Distance: d}, true
}

func (floorQuery) SphereCast(origin rl.Vector3, radius float32, dir rl.Vector3, maxDist float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if dir.Y >= 0 {
		return engine.RaycastResult{}, false
	}
	d := (origin.Y - radius) / -dir.Y
	if d < 0 {
		d = 0
	}
	if d > maxDist {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{Point: rl.Vector3{X: origin.X, Z: origin.Z}, Normal: rl.Vector3{Y: 1}, Distance: d}, true
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}
