package physics

import rl "github.com/gen2brain/raylib-go/raylib"

const segmentSearchIterations = 40

// Contact describes how to separate a shape from a box: move it Depth
// along Normal, which points away from the box.
type Contact struct {
	Point  rl.Vector3 // closest point on the box
	Normal rl.Vector3
	Depth  float32
}

// CapsuleVsOBB tests the capsule swept from a to b with radius r against o.
func CapsuleVsOBB(a, b rl.Vector3, r float32, o OBB) (Contact, bool) {
	center := closestOnSegment(a, b, o)
	closest := ClosestPointOnOBB(o, center)
	d := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(d)

	if dist > 1e-6 {
		depth := r - dist
		if depth <= 0 {
			return Contact{}, false
		}
		return Contact{Point: closest, Normal: rl.Vector3Scale(d, 1/dist), Depth: depth}, true
	}

	// Segment passes through the box: leave by the nearest face.
	normal, faceDepth := o.exitFace(center)
	return Contact{Point: closest, Normal: normal, Depth: faceDepth + r}, true
}

// SphereVsOBB is CapsuleVsOBB for a zero-length segment.
func SphereVsOBB(center rl.Vector3, r float32, o OBB) (Contact, bool) {
	return CapsuleVsOBB(center, center, r, o)
}

// closestOnSegment finds the point of segment ab nearest to the box. The
// distance to a convex shape is convex along a line, so a ternary search
// converges on the minimum.
func closestOnSegment(a, b rl.Vector3, o OBB) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	if rl.Vector3Length(ab) < 1e-6 {
		return a
	}
	at := func(t float32) rl.Vector3 {
		return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
	}
	dist := func(t float32) float32 {
		p := at(t)
		return rl.Vector3Distance(p, ClosestPointOnOBB(o, p))
	}

	lo, hi := float32(0), float32(1)
	for i := 0; i < segmentSearchIterations; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if dist(m1) <= dist(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return at((lo + hi) / 2)
}
