package components

import (
	"testing"

	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLookTurn(t *testing.T) {
	tests := []struct {
		name          string
		right, up     float32
		wantYaw       float32
		wantPitch     float32
		wantForwardXZ [2]float32
	}{
		{"no input", 0, 0, 0, 0, [2]float32{0, 1}},
		{"quarter right", 90, 0, 270, 0, [2]float32{-1, 0}},
		{"quarter left", -90, 0, 90, 0, [2]float32{1, 0}},
		{"full circle", 360, 0, 0, 0, [2]float32{0, 1}},
		{"look up clamps", 0, 120, 0, 89, [2]float32{0, 1}},
		{"look down clamps", 0, -120, 0, -89, [2]float32{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLook()
			l.Turn(tt.right, tt.up)
			if !approx(l.Yaw, tt.wantYaw) {
				t.Errorf("Yaw = %v, want %v", l.Yaw, tt.wantYaw)
			}
			if !approx(l.Pitch, tt.wantPitch) {
				t.Errorf("Pitch = %v, want %v", l.Pitch, tt.wantPitch)
			}
			f := l.Forward()
			if !approx(f.X, tt.wantForwardXZ[0]) || !approx(f.Z, tt.wantForwardXZ[1]) || f.Y != 0 {
				t.Errorf("Forward = %v, want XZ %v", f, tt.wantForwardXZ)
			}
		})
	}
}

func TestLookRightIsPerpendicular(t *testing.T) {
	l := NewLook()
	for _, yaw := range []float32{0, 33, 90, 181, 300} {
		l.Yaw = yaw
		f, r := l.Forward(), l.Right()
		if d := rl.Vector3DotProduct(f, r); !approx(d, 0) {
			t.Errorf("yaw %v: forward·right = %v", yaw, d)
		}
		if r.Y != 0 || !approx(rl.Vector3Length(r), 1) {
			t.Errorf("yaw %v: Right = %v, want horizontal unit", yaw, r)
		}
	}

	l.Yaw = 0
	if r := l.Right(); !approx(r.X, -1) {
		t.Errorf("Right at yaw 0 = %v, want -X", r)
	}
}

func TestLookUpdate(t *testing.T) {
	in := newFakeInput()
	in.look = rl.Vector2{X: -45, Y: 10}

	g := engine.NewGameObject("Player")
	l := NewLook()
	l.Input = in
	g.AddComponent(l)

	l.Update(0.016)

	if !approx(l.Yaw, 45) || !approx(l.Pitch, 10) {
		t.Errorf("yaw/pitch = %v/%v, want 45/10", l.Yaw, l.Pitch)
	}
	if !approx(g.Transform.Rotation.Y, 45) {
		t.Errorf("body yaw = %v, want 45", g.Transform.Rotation.Y)
	}
	if f := g.Transform.Forward(); !approx(f.X, l.Forward().X) || !approx(f.Z, l.Forward().Z) {
		t.Errorf("body forward %v does not match look forward %v", f, l.Forward())
	}

	l.BodyFollowsYaw = false
	l.Update(0.016)
	if !approx(g.Transform.Rotation.Y, 45) {
		t.Errorf("body yaw moved to %v with BodyFollowsYaw off", g.Transform.Rotation.Y)
	}
}

func TestCameraFollowsLook(t *testing.T) {
	g := engine.NewGameObject("Player")
	g.Transform.Position = rl.Vector3{Y: 1}
	l := NewLook()
	l.EyeHeight = 0.5
	g.AddComponent(l)
	cam := NewCamera()
	g.AddComponent(cam)

	c := cam.GetRaylibCamera()
	if c.Position != (rl.Vector3{Y: 1.5}) {
		t.Errorf("Position = %v, want eye at y 1.5", c.Position)
	}
	if !approx(c.Target.Z, 1) {
		t.Errorf("Target = %v, want one unit ahead on +Z", c.Target)
	}

	cam.Distance = 4
	c = cam.GetRaylibCamera()
	if !approx(c.Position.Z, -4) || c.Target != (rl.Vector3{Y: 1.5}) {
		t.Errorf("third person: Position %v Target %v", c.Position, c.Target)
	}
}
