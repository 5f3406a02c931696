package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFrustumContainsSphere(t *testing.T) {
	cam := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 16.0/9.0)

	tests := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"ahead", rl.Vector3{Z: 10}, 0.5, true},
		{"behind", rl.Vector3{Z: -10}, 0.5, false},
		{"far off to the side", rl.Vector3{X: 50, Z: 5}, 1, false},
		{"large sphere reaching in", rl.Vector3{X: 12, Z: 5}, 10, true},
		{"beyond far plane", rl.Vector3{Z: 2000}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsSphere(tt.center, tt.radius); got != tt.want {
				t.Errorf("ContainsSphere(%v, %v) = %v, want %v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestFrustumContainsBox(t *testing.T) {
	cam := rl.Camera3D{
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 1)

	tests := []struct {
		name   string
		lo, hi rl.Vector3
		want   bool
	}{
		{"ahead", rl.Vector3{X: -1, Y: -1, Z: 9}, rl.Vector3{X: 1, Y: 1, Z: 11}, true},
		{"behind", rl.Vector3{X: -1, Y: -1, Z: -11}, rl.Vector3{X: 1, Y: 1, Z: -9}, false},
		{"floor under the camera reaching forward", rl.Vector3{X: -50, Y: -2, Z: -50}, rl.Vector3{X: 50, Y: -1, Z: 50}, true},
		{"off to the side", rl.Vector3{X: 40, Y: -1, Z: 4}, rl.Vector3{X: 42, Y: 1, Z: 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsBox(tt.lo, tt.hi); got != tt.want {
				t.Errorf("ContainsBox = %v, want %v", got, tt.want)
			}
		})
	}
}
