package locomotion

import (
	"strings"
	"testing"

	"movelab/internal/engine"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.WalkSpeed = 0
	cfg.AirControl = 2
	cfg.MaxSlopeAngle = 95
	cfg.MaxJumps = 0
	cfg.GroundLayers = []int{40}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"walk_speed", "air_control", "max_slope_angle", "max_jumps", "ground_layers"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestJumpNeedsVelocityOrHeight(t *testing.T) {
	cfg := Default()
	cfg.JumpVelocity = 0
	cfg.JumpHeight = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when neither jump_velocity nor jump_height is set")
	}
	cfg.JumpHeight = 1.5
	if err := cfg.Validate(); err != nil {
		t.Errorf("jump_height alone should be enough: %v", err)
	}
}

func TestGroundMask(t *testing.T) {
	cfg := Default()
	if cfg.GroundMask() != engine.AllLayers {
		t.Error("empty ground_layers should match every layer")
	}
	cfg.GroundLayers = []int{0, 3}
	m := cfg.GroundMask()
	if !m.Contains(0) || !m.Contains(3) || m.Contains(1) {
		t.Errorf("mask %b", m)
	}
}

func TestEffectiveMaxJumps(t *testing.T) {
	cfg := Default()
	cfg.MaxJumps = 3
	if got := cfg.effectiveMaxJumps(); got != 1 {
		t.Errorf("multi-jump off should allow 1 jump, got %d", got)
	}
	cfg.Features.MultiJump = true
	if got := cfg.effectiveMaxJumps(); got != 3 {
		t.Errorf("multi-jump on should allow 3 jumps, got %d", got)
	}
}
