package locomotion

import (
	"errors"
	"fmt"

	"movelab/internal/engine"

	"github.com/chewxy/math32"
)

// Config holds every locomotion tunable. Speeds are in units per second,
// angles in degrees, durations in seconds.
type Config struct {
	WalkSpeed             float32 `yaml:"walk_speed"`
	SprintSpeed           float32 `yaml:"sprint_speed"`
	DashSpeed             float32 `yaml:"dash_speed"`
	DashSpeedChangeFactor float32 `yaml:"dash_speed_change_factor"`

	GroundForceScale float32 `yaml:"ground_force_scale"`
	AirControl       float32 `yaml:"air_control"`

	GroundDrag float32 `yaml:"ground_drag"`
	AirDrag    float32 `yaml:"air_drag"`
	SlideDrag  float32 `yaml:"slide_drag"`
	DashDrag   float32 `yaml:"dash_drag"`

	MaxSlopeAngle          float32 `yaml:"max_slope_angle"`
	MinSlideForce          float32 `yaml:"min_slide_force"`
	MaxSlideForce          float32 `yaml:"max_slide_force"`
	SlideSaturationAngle   float32 `yaml:"slide_saturation_angle"`
	SlopeStickForce        float32 `yaml:"slope_stick_force"`
	SuppressGravityOnSlope bool    `yaml:"suppress_gravity_on_slope"`

	JumpVelocity float32 `yaml:"jump_velocity"`
	JumpHeight   float32 `yaml:"jump_height"` // overrides JumpVelocity when > 0
	MaxJumps     int     `yaml:"max_jumps"`
	JumpCooldown float32 `yaml:"jump_cooldown"`

	ProbeDistance float32 `yaml:"probe_distance"`
	ProbeOffset   float32 `yaml:"probe_offset"`
	SlopeRayExtra float32 `yaml:"slope_ray_extra"`
	GroundLayers  []int   `yaml:"ground_layers"` // empty means every layer

	TargetFallAcceleration float32 `yaml:"target_fall_acceleration"` // 0 keeps engine gravity
	ExtraGravity           float32 `yaml:"extra_gravity"`            // multiple of |g|
	ExtraGravityAfterSlope float32 `yaml:"extra_gravity_after_slope"`
	MaxVerticalSpeed       float32 `yaml:"max_vertical_speed"` // 0 disables

	MinVelocity  float32 `yaml:"min_velocity"`
	IdleFriction float32 `yaml:"idle_friction"`

	DashForce       float32 `yaml:"dash_force"`
	DashUpwardForce float32 `yaml:"dash_upward_force"`
	DashDuration    float32 `yaml:"dash_duration"`
	DashCooldown    float32 `yaml:"dash_cooldown"`

	Features Features `yaml:"features"`
}

func Default() Config {
	return Config{
		WalkSpeed:             7,
		SprintSpeed:           10,
		DashSpeed:             20,
		DashSpeedChangeFactor: 50,

		GroundForceScale: 10,
		AirControl:       0.4,

		GroundDrag: 6,
		AirDrag:    1,
		SlideDrag:  2,
		DashDrag:   0,

		MaxSlopeAngle:        45,
		MinSlideForce:        10,
		MaxSlideForce:        30,
		SlideSaturationAngle: 70,
		SlopeStickForce:      80,

		JumpVelocity: 6,
		MaxJumps:     1,
		JumpCooldown: 0.25,

		ProbeDistance: 0.05,
		ProbeOffset:   0.05,
		SlopeRayExtra: 0.3,

		ExtraGravity:           1,
		ExtraGravityAfterSlope: 0.3,

		MinVelocity:  0.1,
		IdleFriction: 10,

		DashForce:    20,
		DashDuration: 0.25,
		DashCooldown: 1,

		Features: Features{Slopes: true, MultiJump: false, Dash: true, Sprint: true},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.WalkSpeed > 0, "walk_speed must be positive, got %v", c.WalkSpeed)
	check(c.SprintSpeed > 0, "sprint_speed must be positive, got %v", c.SprintSpeed)
	check(c.DashSpeed > 0, "dash_speed must be positive, got %v", c.DashSpeed)
	check(c.DashSpeedChangeFactor > 0, "dash_speed_change_factor must be positive, got %v", c.DashSpeedChangeFactor)
	check(c.GroundForceScale > 0, "ground_force_scale must be positive, got %v", c.GroundForceScale)
	check(c.AirControl >= 0 && c.AirControl <= 1, "air_control must be in [0,1], got %v", c.AirControl)

	check(c.GroundDrag >= 0, "ground_drag must not be negative, got %v", c.GroundDrag)
	check(c.AirDrag >= 0, "air_drag must not be negative, got %v", c.AirDrag)
	check(c.SlideDrag >= 0, "slide_drag must not be negative, got %v", c.SlideDrag)
	check(c.DashDrag >= 0, "dash_drag must not be negative, got %v", c.DashDrag)

	check(c.MaxSlopeAngle > 0 && c.MaxSlopeAngle < 90, "max_slope_angle must be in (0,90), got %v", c.MaxSlopeAngle)
	check(c.SlideSaturationAngle > c.MaxSlopeAngle && c.SlideSaturationAngle <= 90,
		"slide_saturation_angle must be in (max_slope_angle,90], got %v", c.SlideSaturationAngle)
	check(c.MinSlideForce >= 0 && c.MaxSlideForce >= c.MinSlideForce,
		"slide forces must satisfy 0 <= min <= max, got %v and %v", c.MinSlideForce, c.MaxSlideForce)
	check(c.SlopeStickForce >= 0, "slope_stick_force must not be negative, got %v", c.SlopeStickForce)

	check(c.JumpVelocity > 0 || c.JumpHeight > 0, "one of jump_velocity or jump_height must be positive")
	check(c.JumpHeight >= 0, "jump_height must not be negative, got %v", c.JumpHeight)
	check(c.MaxJumps >= 1, "max_jumps must be at least 1, got %d", c.MaxJumps)
	check(c.JumpCooldown >= 0, "jump_cooldown must not be negative, got %v", c.JumpCooldown)

	check(c.ProbeDistance > 0, "probe_distance must be positive, got %v", c.ProbeDistance)
	check(c.ProbeOffset >= 0, "probe_offset must not be negative, got %v", c.ProbeOffset)
	check(c.SlopeRayExtra >= 0, "slope_ray_extra must not be negative, got %v", c.SlopeRayExtra)
	for _, l := range c.GroundLayers {
		check(l >= 0 && l <= 31, "ground_layers entries must be in [0,31], got %d", l)
	}

	check(c.TargetFallAcceleration >= 0, "target_fall_acceleration is a magnitude, got %v", c.TargetFallAcceleration)
	check(c.ExtraGravity >= 0, "extra_gravity must not be negative, got %v", c.ExtraGravity)
	check(c.ExtraGravityAfterSlope >= 0, "extra_gravity_after_slope must not be negative, got %v", c.ExtraGravityAfterSlope)
	check(c.MaxVerticalSpeed >= 0, "max_vertical_speed must not be negative, got %v", c.MaxVerticalSpeed)
	check(c.MinVelocity >= 0, "min_velocity must not be negative, got %v", c.MinVelocity)
	check(c.IdleFriction >= 0, "idle_friction must not be negative, got %v", c.IdleFriction)

	check(c.DashForce >= 0, "dash_force must not be negative, got %v", c.DashForce)
	check(c.DashDuration > 0, "dash_duration must be positive, got %v", c.DashDuration)
	check(c.DashCooldown >= 0, "dash_cooldown must not be negative, got %v", c.DashCooldown)

	return errors.Join(errs...)
}

// GroundMask turns GroundLayers into a query mask.
func (c Config) GroundMask() engine.LayerMask {
	if len(c.GroundLayers) == 0 {
		return engine.AllLayers
	}
	var m engine.LayerMask
	for _, l := range c.GroundLayers {
		m |= engine.LayerBit(l)
	}
	return m
}

// effectiveMaxJumps is MaxJumps, or 1 with multi-jump switched off.
func (c Config) effectiveMaxJumps() int {
	if !c.Features.MultiJump {
		return 1
	}
	return c.MaxJumps
}

// FallAcceleration is the downward acceleration magnitude the body ends up
// with: the target when one is set, otherwise the engine's own.
func (c Config) FallAcceleration(engineGravityY float32) float32 {
	if c.TargetFallAcceleration > 0 {
		return c.TargetFallAcceleration
	}
	return math32.Abs(engineGravityY)
}

// LaunchVelocity is the upward speed a jump gives. With JumpHeight set it
// is derived so the apex lands at that height.
func (c Config) LaunchVelocity(engineGravityY float32) float32 {
	if c.JumpHeight > 0 {
		return JumpVelocityForHeight(c.JumpHeight, c.FallAcceleration(engineGravityY))
	}
	return c.JumpVelocity
}

// JumpVelocityForHeight returns sqrt(2*h*g).
func JumpVelocityForHeight(height, gravity float32) float32 {
	if height <= 0 || gravity <= 0 {
		return 0
	}
	return math32.Sqrt(2 * height * gravity)
}
