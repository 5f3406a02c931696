package locomotion

import (
	"movelab/internal/engine"
	"movelab/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeBody integrates nothing on its own; tests call step to advance it.
type fakeBody struct {
	pos, vel   rl.Vector3
	scale      rl.Vector3
	drag       float32
	useGravity bool
	force      rl.Vector3
	accel      rl.Vector3
	instant    []engine.ForceMode
}

func newFakeBody(pos rl.Vector3) *fakeBody {
	return &fakeBody{pos: pos, scale: rl.Vector3{X: 1, Y: 1, Z: 1}, useGravity: true}
}

func (b *fakeBody) GetPosition() rl.Vector3  { return b.pos }
func (b *fakeBody) GetVelocity() rl.Vector3  { return b.vel }
func (b *fakeBody) SetVelocity(v rl.Vector3) { b.vel = v }
func (b *fakeBody) SetDrag(d float32)        { b.drag = d }
func (b *fakeBody) SetUseGravity(on bool)    { b.useGravity = on }
func (b *fakeBody) GetUp() rl.Vector3        { return rl.Vector3{Y: 1} }
func (b *fakeBody) GetScale() rl.Vector3     { return b.scale }

func (b *fakeBody) AddForce(f rl.Vector3, mode engine.ForceMode) {
	switch mode {
	case engine.ForceModeForce:
		b.force = rl.Vector3Add(b.force, f)
	case engine.ForceModeAcceleration:
		b.accel = rl.Vector3Add(b.accel, f)
	default:
		b.instant = append(b.instant, mode)
		b.vel = rl.Vector3Add(b.vel, f)
	}
}

func (b *fakeBody) clearForces() {
	b.force = rl.Vector3{}
	b.accel = rl.Vector3{}
	b.instant = nil
}

// step advances the body like a unit-mass rigid body resting on a floor
// at floorY with the given capsule half height.
func (b *fakeBody) step(dt, gravityY, floorY, halfHeight float32) {
	a := rl.Vector3Add(b.force, b.accel)
	if b.useGravity {
		a.Y += gravityY
	}
	b.vel = rl.Vector3Add(b.vel, rl.Vector3Scale(a, dt))
	damp := 1 - b.drag*dt
	if damp < 0 {
		damp = 0
	}
	b.vel = rl.Vector3Scale(b.vel, damp)
	b.pos = rl.Vector3Add(b.pos, rl.Vector3Scale(b.vel, dt))
	if b.pos.Y < floorY+halfHeight {
		b.pos.Y = floorY + halfHeight
		if b.vel.Y < 0 {
			b.vel.Y = 0
		}
	}
	b.clearForces()
}

// planeQuery is an infinite plane through point with the given normal.
type planeQuery struct {
	point  rl.Vector3
	normal rl.Vector3
	calls  int
}

func flatFloor(y float32) *planeQuery {
	return &planeQuery{point: rl.Vector3{Y: y}, normal: rl.Vector3{Y: 1}}
}

// tiltedFloor is a plane through the origin tilted by deg around Z.
func tiltedFloor(deg float32) *planeQuery {
	r := deg * rl.Deg2rad
	return &planeQuery{normal: rl.Vector3{X: math32.Sin(r), Y: math32.Cos(r)}}
}

func (q *planeQuery) Raycast(origin, dir rl.Vector3, maxDist float32, _ engine.LayerMask) (engine.RaycastResult, bool) {
	q.calls++
	denom := rl.Vector3DotProduct(dir, q.normal)
	if denom >= 0 {
		return engine.RaycastResult{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(q.point, origin), q.normal) / denom
	if t < 0 || t > maxDist {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(dir, t)),
		Normal:   q.normal,
		Distance: t,
	}, true
}

func (q *planeQuery) SphereCast(origin rl.Vector3, radius float32, dir rl.Vector3, maxDist float32, _ engine.LayerMask) (engine.RaycastResult, bool) {
	q.calls++
	dist := rl.Vector3DotProduct(rl.Vector3Subtract(origin, q.point), q.normal)
	if dist <= radius {
		return engine.RaycastResult{Normal: q.normal}, true
	}
	denom := rl.Vector3DotProduct(dir, q.normal)
	if denom >= 0 {
		return engine.RaycastResult{}, false
	}
	t := (dist - radius) / -denom
	if t > maxDist {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{Normal: q.normal, Distance: t}, true
}

// fakeInput is a hand-driven input source.
type fakeInput struct {
	axes rl.Vector2
	held map[input.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[input.Action]bool{}}
}

func (f *fakeInput) Axes() rl.Vector2         { return f.axes }
func (f *fakeInput) LookDelta() rl.Vector2    { return rl.Vector2{} }
func (f *fakeInput) Held(a input.Action) bool { return f.held[a] }

var testCapsule = Capsule{Height: 2, Radius: 0.5}

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
