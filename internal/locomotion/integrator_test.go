package locomotion

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestClampVelocityHorizontal(t *testing.T) {
	v := rl.Vector3{X: 9, Y: -4, Z: 12} // horizontal magnitude 15
	got := ClampVelocity(v, 5, false, 0)

	if h := math32.Sqrt(got.X*got.X + got.Z*got.Z); !approx(h, 5, 1e-4) {
		t.Errorf("horizontal magnitude = %v, want 5", h)
	}
	if got.Y != -4 {
		t.Errorf("vertical component changed to %v", got.Y)
	}
	if !approx(got.X/got.Z, 0.75, 1e-4) {
		t.Errorf("direction changed: %v", got)
	}
}

func TestClampVelocityUnderLimit(t *testing.T) {
	v := rl.Vector3{X: 1, Y: 30, Z: 1}
	if got := ClampVelocity(v, 5, false, 0); got != v {
		t.Errorf("slow horizontal velocity should pass, got %v", got)
	}
}

func TestClampVelocityFull3D(t *testing.T) {
	v := rl.Vector3{X: 4, Y: 3} // length 5
	got := ClampVelocity(v, 2.5, true, 0)
	if l := rl.Vector3Length(got); !approx(l, 2.5, 1e-4) {
		t.Errorf("3D length = %v, want 2.5", l)
	}
}

func TestClampVelocityVerticalCap(t *testing.T) {
	up := ClampVelocity(rl.Vector3{Y: 20}, 5, false, 8)
	if up.Y != 8 {
		t.Errorf("upward speed = %v, want capped at 8", up.Y)
	}
	down := ClampVelocity(rl.Vector3{Y: -40}, 5, false, 8)
	if down.Y != -40 {
		t.Errorf("falling speed must never be capped, got %v", down.Y)
	}
}

func TestSelectDrag(t *testing.T) {
	cfg := Default()
	flat := surface(0)
	steep := surface(60)

	tests := []struct {
		name string
		step Step
		want float32
	}{
		{"grounded", Step{State: Walking, Ground: flat, Slope: Flat}, cfg.GroundDrag},
		{"too steep", Step{State: Walking, Ground: steep, Slope: TooSteep}, cfg.SlideDrag},
		{"air", Step{State: Airborne}, cfg.AirDrag},
		{"dash on ground", Step{State: Dashing, Ground: flat, Slope: Flat}, cfg.DashDrag},
	}
	for _, tt := range tests {
		if got := SelectDrag(cfg, tt.step); got != tt.want {
			t.Errorf("%s: drag %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDashSuppressesMovement(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 1})
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{X: 1}, Speed: 20, State: Dashing, Ground: surface(0), Slope: Flat})

	if b.force != (rl.Vector3{}) {
		t.Errorf("dashing should apply no movement force, got %v", b.force)
	}
	if b.drag != cfg.DashDrag {
		t.Errorf("drag = %v, want dash drag", b.drag)
	}
}

func TestFlatGroundForce(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 1})
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{Z: 1}, Speed: 7, State: Walking, Ground: surface(0), Slope: Flat})

	want := 7 * cfg.GroundForceScale
	if !approx(b.force.Z, want, 1e-4) || b.force.X != 0 || b.force.Y != 0 {
		t.Errorf("force = %v, want %v along +Z", b.force, want)
	}
}

func TestAirControl(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 10})
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{X: 1}, Speed: 7, State: Airborne})

	want := 7 * cfg.GroundForceScale * cfg.AirControl
	if !approx(b.force.X, want, 1e-4) {
		t.Errorf("air force = %v, want %v", b.force.X, want)
	}
	if b.drag != cfg.AirDrag {
		t.Errorf("drag = %v, want air drag", b.drag)
	}
}

func TestWalkableSlopeForce(t *testing.T) {
	cfg := Default()
	g := surface(30)
	b := newFakeBody(rl.Vector3{Y: 1})
	b.vel = rl.Vector3{X: -1, Y: 0.5}
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{X: -1}, Speed: 7, State: Walking, Ground: g, Slope: Walkable})

	f := in.Forces()
	if dot := rl.Vector3DotProduct(f.Move, g.Normal); !approx(dot, 0, 1e-3) {
		t.Errorf("slope move force not tangent, dot %v", dot)
	}
	if f.Move.Y <= 0 {
		t.Errorf("walking uphill should push up the slope, got %v", f.Move)
	}
	if f.Stick != (rl.Vector3{Y: -cfg.SlopeStickForce}) {
		t.Errorf("rising on a slope should add stick force, got %v", f.Stick)
	}
	if f.Slide != (rl.Vector3{}) {
		t.Errorf("walkable slope must not slide, got %v", f.Slide)
	}
}

func TestNoStickWhenDescending(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 1})
	b.vel = rl.Vector3{X: 1, Y: -0.5}
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{X: 1}, Speed: 7, State: Walking, Ground: surface(30), Slope: Walkable})
	if in.Forces().Stick != (rl.Vector3{}) {
		t.Errorf("stick force applied while moving down: %v", in.Forces().Stick)
	}
}

func TestExitingSlopeSkipsProjection(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 1})
	b.vel = rl.Vector3{Y: 6}
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{X: 1}, Speed: 7, State: Walking, Ground: surface(30), Slope: Walkable, ExitingSlope: true, Jumped: true})

	f := in.Forces()
	if f.Stick != (rl.Vector3{}) {
		t.Error("no stick force right after a jump")
	}
	if f.Move.Y != 0 {
		t.Errorf("move force should use the raw direction, got %v", f.Move)
	}
}

func TestTooSteepSlides(t *testing.T) {
	cfg := Default()
	for _, angle := range []float32{45, 50, 65, 80} {
		g := surface(angle)
		b := newFakeBody(rl.Vector3{Y: 1})
		var in Integrator

		in.Apply(b, cfg, Step{Dt: 0.02, Dir: rl.Vector3{Z: 1}, Speed: 7, State: Walking, Ground: g, Slope: Classify(g, cfg.MaxSlopeAngle)})

		f := in.Forces()
		if rl.Vector3Length(f.Slide) < cfg.MinSlideForce-1e-3 {
			t.Errorf("angle %v: slide force %v too weak", angle, f.Slide)
		}
		if f.Slide.Y >= 0 {
			t.Errorf("angle %v: slide should point downhill, got %v", angle, f.Slide)
		}
		if f.Move != (rl.Vector3{}) {
			t.Errorf("angle %v: input should not push on a steep slope, got %v", angle, f.Move)
		}
		if b.drag != cfg.SlideDrag {
			t.Errorf("angle %v: drag %v, want slide drag", angle, b.drag)
		}
	}
}

func TestGravityPolicy(t *testing.T) {
	cfg := Default()
	slope := Step{Dt: 0.02, State: Walking, Ground: surface(30), Slope: Walkable}

	b := newFakeBody(rl.Vector3{Y: 1})
	in := Integrator{EngineGravityY: -9.81}
	in.Apply(b, cfg, slope)
	if !b.useGravity {
		t.Error("gravity should stay on by default")
	}

	cfg.SuppressGravityOnSlope = true
	in.Apply(b, cfg, slope)
	if b.useGravity {
		t.Error("gravity should be off on a walkable slope when suppressed")
	}

	in.Apply(b, cfg, Step{Dt: 0.02, State: Walking, Ground: surface(0), Slope: Flat})
	if !b.useGravity {
		t.Error("gravity should be back on flat ground")
	}
}

func TestTargetFallAcceleration(t *testing.T) {
	cfg := Default()
	cfg.TargetFallAcceleration = 19.62
	b := newFakeBody(rl.Vector3{Y: 10})
	in := Integrator{EngineGravityY: -9.81}

	in.Apply(b, cfg, Step{Dt: 0.02, State: Airborne})

	if !approx(b.accel.Y, -9.81, 1e-4) {
		t.Errorf("extra acceleration = %v, want -9.81 so the total is -19.62", b.accel.Y)
	}
}

func TestExtraGravityAfterLeavingSlope(t *testing.T) {
	cfg := Default()
	cfg.ExtraGravity = 2
	cfg.ExtraGravityAfterSlope = 0.125
	b := newFakeBody(rl.Vector3{Y: 1})
	in := Integrator{EngineGravityY: -10}

	in.Apply(b, cfg, Step{Dt: 0.03125, State: Walking, Ground: surface(20), Slope: Walkable})
	b.clearForces()

	var graceTicks int
	for i := 0; i < 20; i++ {
		in.Apply(b, cfg, Step{Dt: 0.03125, State: Airborne})
		if b.accel.Y < 0 {
			graceTicks++
			if !approx(b.accel.Y, -20, 1e-4) {
				t.Errorf("tick %d: extra gravity %v, want -20", i, b.accel.Y)
			}
		}
		b.clearForces()
	}
	if graceTicks != 4 {
		t.Errorf("extra gravity lasted %d ticks, want 4", graceTicks)
	}
}

func TestNoExtraGravityAfterJump(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 1})
	in := Integrator{EngineGravityY: -9.81}

	in.Apply(b, cfg, Step{Dt: 0.02, State: Walking, Ground: surface(20), Slope: Walkable})
	in.Apply(b, cfg, Step{Dt: 0.02, State: Airborne, Jumped: true, ExitingSlope: true})
	b.clearForces()
	in.Apply(b, cfg, Step{Dt: 0.02, State: Airborne, ExitingSlope: true})

	if b.accel.Y != 0 {
		t.Errorf("jumping off a slope should not add extra gravity, got %v", b.accel.Y)
	}
}

func TestIdleFrictionSnapsSlowBody(t *testing.T) {
	cfg := Default()
	b := newFakeBody(rl.Vector3{Y: 1})
	b.vel = rl.Vector3{X: 0.05}
	var in Integrator

	in.Apply(b, cfg, Step{Dt: 0.02, State: Walking, Speed: 7, Ground: surface(0), Slope: Flat})
	if b.vel != (rl.Vector3{}) {
		t.Errorf("velocity below min should snap to zero, got %v", b.vel)
	}

	b.vel = rl.Vector3{X: 3}
	in.Apply(b, cfg, Step{Dt: 0.02, State: Walking, Speed: 7, Ground: surface(0), Slope: Flat})
	if in.Forces().Friction.X >= 0 {
		t.Errorf("friction should oppose motion, got %v", in.Forces().Friction)
	}
}
