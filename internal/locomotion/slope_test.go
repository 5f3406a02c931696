package locomotion

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func surface(angle float32) GroundState {
	r := angle * rl.Deg2rad
	return GroundState{
		Grounded:   true,
		HasSurface: true,
		Normal:     rl.Vector3{X: math32.Sin(r), Y: math32.Cos(r)},
		SlopeAngle: angle,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		state GroundState
		want  SlopeClass
	}{
		{"no surface", GroundState{Grounded: true}, NoSurface},
		{"level", surface(0), Flat},
		{"float noise", surface(0.005), Flat},
		{"gentle ramp", surface(20), Walkable},
		{"just under limit", surface(44.9), Walkable},
		{"exactly at limit", surface(45), TooSteep},
		{"wall-like", surface(80), TooSteep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.state, 45); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.state.SlopeAngle, got, tt.want)
			}
		})
	}
}

func TestSlopeDirectionIsTangent(t *testing.T) {
	dirs := []rl.Vector3{
		{X: 1}, {X: -1}, {Z: 1}, {X: 0.6, Z: 0.8}, {X: -0.7071, Z: -0.7071},
	}
	for angle := float32(1); angle < 45; angle += 3 {
		n := surface(angle).Normal
		for _, d := range dirs {
			p := SlopeDirection(d, n)
			if dot := rl.Vector3DotProduct(p, n); !approx(dot, 0, 1e-5) {
				t.Errorf("angle %v dir %v: dot with normal = %v", angle, d, dot)
			}
			if l := rl.Vector3Length(p); !approx(l, 1, 1e-5) {
				t.Errorf("angle %v dir %v: length = %v, want 1", angle, d, l)
			}
		}
	}
}

func TestSlopeDirectionDegenerate(t *testing.T) {
	if got := SlopeDirection(rl.Vector3{Y: 1}, rl.Vector3{Y: 1}); got != (rl.Vector3{}) {
		t.Errorf("direction along normal should give zero, got %v", got)
	}
}

func TestProjectOnPlaneZeroNormal(t *testing.T) {
	v := rl.Vector3{X: 1, Y: 2, Z: 3}
	if got := ProjectOnPlane(v, rl.Vector3{}); got != v {
		t.Errorf("zero normal should leave v unchanged, got %v", got)
	}
}

func TestSlideForce(t *testing.T) {
	cfg := Default()

	tests := []struct {
		angle float32
		mag   float32
	}{
		{45, cfg.MinSlideForce},
		{57.5, (cfg.MinSlideForce + cfg.MaxSlideForce) / 2},
		{70, cfg.MaxSlideForce},
		{85, cfg.MaxSlideForce},
	}

	for _, tt := range tests {
		g := surface(tt.angle)
		f := SlideForce(g, cfg)
		if l := rl.Vector3Length(f); !approx(l, tt.mag, 1e-3) {
			t.Errorf("angle %v: magnitude %v, want %v", tt.angle, l, tt.mag)
		}
		if f.Y >= 0 {
			t.Errorf("angle %v: slide force should point downhill, got %v", tt.angle, f)
		}
		if dot := rl.Vector3DotProduct(f, g.Normal); !approx(dot, 0, 1e-3) {
			t.Errorf("angle %v: slide force not along surface, dot %v", tt.angle, dot)
		}
	}
}
