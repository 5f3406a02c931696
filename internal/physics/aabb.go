package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is the broad-phase bound for statics and swept shapes.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Expand grows the box by r on every side.
func (a AABB) Expand(r float32) AABB {
	e := rl.Vector3{X: r, Y: r, Z: r}
	return AABB{Min: rl.Vector3Subtract(a.Min, e), Max: rl.Vector3Add(a.Max, e)}
}

// sweepBounds encloses a sphere of radius r moving from a to b.
func sweepBounds(a, b rl.Vector3, r float32) AABB {
	box := AABB{
		Min: rl.Vector3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: rl.Vector3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
	return box.Expand(r)
}
