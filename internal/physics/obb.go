package physics

import (
	"movelab/internal/components"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rotX := rl.MatrixRotateX(rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rotation.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: math32.Abs(size.X) / 2, Y: math32.Abs(size.Y) / 2, Z: math32.Abs(size.Z) / 2},
		Axes:     axes,
	}
}

// BoxOBB builds the world-space OBB of a box collider.
func BoxOBB(box *components.BoxCollider) OBB {
	g := box.GetGameObject()
	return NewOBB(box.GetCenter(), box.GetWorldSize(), g.Transform.Rotation)
}

func (o OBB) half(i int) float32 {
	switch i {
	case 0:
		return o.HalfSize.X
	case 1:
		return o.HalfSize.Y
	}
	return o.HalfSize.Z
}

// toLocal expresses a world point in the box's frame, relative to its center.
func (o OBB) toLocal(p rl.Vector3) [3]float32 {
	d := rl.Vector3Subtract(p, o.Center)
	return [3]float32{
		rl.Vector3DotProduct(d, o.Axes[0]),
		rl.Vector3DotProduct(d, o.Axes[1]),
		rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// Contains reports whether p is inside or on the box.
func (o OBB) Contains(p rl.Vector3) bool {
	l := o.toLocal(p)
	for i := 0; i < 3; i++ {
		if math32.Abs(l[i]) > o.half(i) {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	closest := ClosestPointOnOBB(o, center)
	d := rl.Vector3Subtract(closest, center)
	return rl.Vector3DotProduct(d, d) <= radius*radius
}

// ClosestPointOnOBB returns the closest point on or in the OBB to the given
// point. Points inside the box are returned unchanged.
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	l := o.toLocal(point)
	result := o.Center
	for i := 0; i < 3; i++ {
		c := clampf(l[i], -o.half(i), o.half(i))
		result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[i], c))
	}
	return result
}

// exitFace returns the outward normal of the face nearest to an interior
// point and how deep the point is behind it.
func (o OBB) exitFace(p rl.Vector3) (rl.Vector3, float32) {
	l := o.toLocal(p)
	best := -1
	var depth float32
	var sign float32 = 1
	for i := 0; i < 3; i++ {
		d := o.half(i) - math32.Abs(l[i])
		if best < 0 || d < depth {
			best = i
			depth = d
			sign = 1
			if l[i] < 0 {
				sign = -1
			}
		}
	}
	return rl.Vector3Scale(o.Axes[best], sign), depth
}

// Bounds returns the world-space AABB enclosing the box.
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	for i := 0; i < 3; i++ {
		a := rl.Vector3Scale(o.Axes[i], o.half(i))
		ext.X += math32.Abs(a.X)
		ext.Y += math32.Abs(a.Y)
		ext.Z += math32.Abs(a.Z)
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
