package locomotion

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testSensor(q *planeQuery) GroundSensor {
	return newGroundSensor(q, Default())
}

func TestFeetPosition(t *testing.T) {
	b := newFakeBody(rl.Vector3{Y: 5})
	if got := FeetPosition(b, testCapsule); got != (rl.Vector3{Y: 4.5}) {
		t.Errorf("FeetPosition = %v, want y 4.5", got)
	}

	// Stretched vertically: half height 2, radius still 0.5.
	b.scale = rl.Vector3{X: 1, Y: 2, Z: 1}
	if got := FeetPosition(b, testCapsule); got != (rl.Vector3{Y: 3.5}) {
		t.Errorf("FeetPosition with scale = %v, want y 3.5", got)
	}
}

func TestProbeResting(t *testing.T) {
	s := testSensor(flatFloor(0))
	b := newFakeBody(rl.Vector3{Y: 1})

	g := s.Probe(b, testCapsule)
	if !g.Grounded || !g.HasSurface {
		t.Fatalf("resting body should be grounded with a surface, got %+v", g)
	}
	if g.SlopeAngle != 0 || Classify(g, 45) != Flat {
		t.Errorf("flat floor angle %v class %v", g.SlopeAngle, Classify(g, 45))
	}
}

func TestProbeSlightlySunk(t *testing.T) {
	s := testSensor(flatFloor(0))
	b := newFakeBody(rl.Vector3{Y: 0.97})

	if g := s.Probe(b, testCapsule); !g.Grounded {
		t.Error("body sunk by less than the probe offset should be grounded")
	}
}

func TestProbeHovering(t *testing.T) {
	s := testSensor(flatFloor(0))

	// Above probe range but inside the normal ray.
	g := s.Probe(newFakeBody(rl.Vector3{Y: 1.5}), testCapsule)
	if g.Grounded {
		t.Error("body 0.5 above the floor should not be grounded")
	}
	if !g.HasSurface {
		t.Error("normal ray should still reach the floor")
	}

	// Out of range of both.
	g = s.Probe(newFakeBody(rl.Vector3{Y: 4}), testCapsule)
	if g.Grounded || g.HasSurface || g.SlopeAngle != 0 {
		t.Errorf("high body should see nothing, got %+v", g)
	}
}

func TestProbeSlopeAngle(t *testing.T) {
	s := testSensor(tiltedFloor(30))
	// Bottom sphere center sits radius/cos(30) above the plane at x=0.
	b := newFakeBody(rl.Vector3{Y: 0.5/0.8660254 + 0.5})

	g := s.Probe(b, testCapsule)
	if !g.Grounded {
		t.Fatal("body on a 30 degree ramp should be grounded")
	}
	if !approx(g.SlopeAngle, 30, 0.01) {
		t.Errorf("SlopeAngle = %v, want 30", g.SlopeAngle)
	}
	if Classify(g, 45) != Walkable {
		t.Errorf("30 degrees should be walkable")
	}
}

func TestProbeIdempotent(t *testing.T) {
	q := flatFloor(0)
	s := testSensor(q)
	b := newFakeBody(rl.Vector3{Y: 1})

	first := s.Probe(b, testCapsule)
	for i := 0; i < 50; i++ {
		if got := s.Probe(b, testCapsule); got != first {
			t.Fatalf("probe %d flickered: %+v vs %+v", i, got, first)
		}
	}
	if q.calls != 102 {
		t.Errorf("expected one sphere cast and one ray per probe, got %d calls", q.calls)
	}
}
