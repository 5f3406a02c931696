package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the camera's view volume as six planes facing inward: left,
// right, bottom, top, near, far.
type Frustum [6]plane

type plane struct {
	normal rl.Vector3
	d      float32
}

func (p plane) distance(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, v) + p.d
}

// ExtractFrustum derives the planes from the camera's view-projection
// matrix (Gribb/Hartmann). aspect is width over height.
func ExtractFrustum(cam rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(cam)

	var proj rl.Matrix
	if cam.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := cam.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}
	vp := rl.MatrixMultiply(view, proj)

	// rows of the clip matrix
	r0 := rl.Vector4{X: vp.M0, Y: vp.M4, Z: vp.M8, W: vp.M12}
	r1 := rl.Vector4{X: vp.M1, Y: vp.M5, Z: vp.M9, W: vp.M13}
	r2 := rl.Vector4{X: vp.M2, Y: vp.M6, Z: vp.M10, W: vp.M14}
	r3 := rl.Vector4{X: vp.M3, Y: vp.M7, Z: vp.M11, W: vp.M15}

	return Frustum{
		combine(r3, r0, 1), combine(r3, r0, -1),
		combine(r3, r1, 1), combine(r3, r1, -1),
		combine(r3, r2, 1), combine(r3, r2, -1),
	}
}

// combine builds the plane a + sign*b and normalizes it.
func combine(a, b rl.Vector4, sign float32) plane {
	p := plane{
		normal: rl.Vector3{X: a.X + sign*b.X, Y: a.Y + sign*b.Y, Z: a.Z + sign*b.Z},
		d:      a.W + sign*b.W,
	}
	if l := rl.Vector3Length(p.normal); l > 0 {
		p.normal = rl.Vector3Scale(p.normal, 1/l)
		p.d /= l
	}
	return p
}

// ContainsSphere reports whether any part of the sphere may be visible.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f {
		if p.distance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsBox tests an axis-aligned box by its corner furthest along each
// plane normal.
func (f *Frustum) ContainsBox(lo, hi rl.Vector3) bool {
	for _, p := range f {
		far := lo
		if p.normal.X > 0 {
			far.X = hi.X
		}
		if p.normal.Y > 0 {
			far.Y = hi.Y
		}
		if p.normal.Z > 0 {
			far.Z = hi.Z
		}
		if p.distance(far) < 0 {
			return false
		}
	}
	return true
}
