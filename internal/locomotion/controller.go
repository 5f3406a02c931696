package locomotion

import (
	"fmt"
	"log/slog"

	"movelab/internal/engine"
	"movelab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Deps are the collaborators a Controller needs. Body, Query and Input
// are required and Capsule must describe a real capsule.
type Deps struct {
	Body        Body
	Capsule     Capsule
	Query       engine.PhysicsQuery
	Input       input.Source
	Orientation Orientation // nil means world axes

	// EngineGravityY is the physics world's gravity along Y, e.g. -9.81.
	EngineGravityY float32
	Logger         *slog.Logger
}

// StateChange is published when the speed state machine changes state.
type StateChange struct {
	From, To State
}

// Snapshot is a read-only view of the controller for overlays and traces.
type Snapshot struct {
	Tick         uint64
	Enabled      bool
	Ground       GroundState
	Slope        SlopeClass
	State        State
	Speed        SpeedTarget
	Jump         JumpBudget
	ExitingSlope bool
	Dashing      bool
	Velocity     rl.Vector3
	Forces       Forces
	LastJump     JumpOutcome
}

// Controller is the grounded locomotion controller. Call Update once per
// rendered frame and FixedTick once per physics step.
type Controller struct {
	cfg  Config
	deps Deps
	log  *slog.Logger

	sensor     GroundSensor
	speed      *SpeedMachine
	jump       *JumpArbiter
	dash       Dasher
	integrator Integrator

	enabled  bool
	dir      rl.Vector3
	sprint   bool
	ground   GroundState
	slope    SlopeClass
	lastJump JumpOutcome
	tick     uint64

	StateChanged engine.Event[StateChange]
	Jumped       engine.Event[float32]
}

// New validates the configuration and collaborators. A controller missing
// its body, collider or query service fails here rather than later.
func New(cfg Config, d Deps) (*Controller, error) {
	if d.Body == nil {
		return nil, ErrNoBody
	}
	if !d.Capsule.valid() {
		return nil, fmt.Errorf("%w: height=%v radius=%v", ErrNoCollider, d.Capsule.Height, d.Capsule.Radius)
	}
	if d.Query == nil {
		return nil, ErrNoQuery
	}
	if d.Input == nil {
		return nil, ErrNoInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion: config: %w", err)
	}
	if d.Orientation == nil {
		d.Orientation = worldAxes{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	return &Controller{
		cfg:        cfg,
		deps:       d,
		log:        d.Logger,
		sensor:     newGroundSensor(d.Query, cfg),
		speed:      NewSpeedMachine(cfg),
		jump:       NewJumpArbiter(cfg.effectiveMaxJumps(), cfg.JumpCooldown),
		integrator: Integrator{EngineGravityY: d.EngineGravityY},
		enabled:    true,
	}, nil
}

func (c *Controller) Config() Config { return c.cfg }

// SetConfig swaps tunables live. In-flight state is kept.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("locomotion: config: %w", err)
	}
	if c.cfg.Features.Dash && !cfg.Features.Dash {
		// Nothing ticks the dash window down once the feature is off.
		c.dash.Stop()
	}
	c.cfg = cfg
	c.sensor = newGroundSensor(c.deps.Query, cfg)
	c.jump.Configure(cfg.effectiveMaxJumps(), cfg.JumpCooldown)
	return nil
}

func (c *Controller) Enabled() bool { return c.enabled }

// SetEnabled turns control on or off. A disabled controller ignores input
// and applies no forces; the body is left to the physics world.
func (c *Controller) SetEnabled(on bool) {
	c.enabled = on
}

// SetDashing holds the controller in the dash state from outside.
func (c *Controller) SetDashing(active bool) {
	c.dash.SetExternal(active)
}

// Reset forgets all transient state, as after a respawn.
func (c *Controller) Reset() {
	c.speed.Reset(c.cfg)
	c.jump = NewJumpArbiter(c.cfg.effectiveMaxJumps(), c.cfg.JumpCooldown)
	c.dash.Reset()
	c.integrator = Integrator{EngineGravityY: c.deps.EngineGravityY}
	c.dir = rl.Vector3{}
	c.sprint = false
	c.lastJump = JumpNone
}

// Update samples input for this frame. Button presses are latched here and
// consumed by the next FixedTick.
func (c *Controller) Update(dt float32) {
	if !c.enabled {
		c.dir = rl.Vector3{}
		c.sprint = false
		return
	}
	in := c.deps.Input
	c.dir = MoveDirection(in.Axes(), c.deps.Orientation)
	c.sprint = c.cfg.Features.Sprint && in.Held(input.ActionSprint)
	c.jump.Observe(in.Held(input.ActionJump))
	if c.cfg.Features.Dash {
		c.dash.Observe(in.Held(input.ActionDash))
	}
}

// FixedTick runs one physics step of the controller.
func (c *Controller) FixedTick(dt float32) {
	c.tick++
	body := c.deps.Body

	c.ground = c.sensor.Probe(body, c.deps.Capsule)
	c.slope = Classify(c.ground, c.cfg.MaxSlopeAngle)
	if !c.cfg.Features.Slopes && c.slope != NoSurface {
		c.slope = Flat
	}

	if !c.enabled {
		return
	}

	if c.cfg.Features.Dash {
		if c.dash.Tick(dt, c.cfg, body, c.dir, flatten(c.deps.Orientation.Forward())) {
			c.log.Debug("dash started", "dir", c.dir)
		}
	}

	from := c.speed.State()
	if c.speed.Tick(dt, c.ground.Grounded, c.sprint, c.dash.Active(), c.cfg) {
		change := StateChange{From: from, To: c.speed.State()}
		c.log.Debug("locomotion state", "from", change.From, "to", change.To, "speed", c.speed.Target().Desired)
		c.StateChanged.Emit(change)
	}

	launch := c.cfg.LaunchVelocity(c.deps.EngineGravityY)
	c.lastJump = c.jump.Tick(dt, c.ground.Grounded, body, launch)
	switch c.lastJump {
	case JumpExecuted:
		c.log.Debug("jump", "remaining", c.jump.Budget().Remaining, "vy", launch)
		c.Jumped.Emit(launch)
	case JumpRejectedCooldown, JumpRejectedExhausted:
		c.log.Debug("jump dropped", "reason", c.lastJump, "remaining", c.jump.Budget().Remaining)
	}

	c.integrator.Apply(body, c.cfg, Step{
		Dt:           dt,
		Dir:          c.dir,
		Speed:        c.speed.Target().Current,
		State:        c.speed.State(),
		Ground:       c.ground,
		Slope:        c.slope,
		ExitingSlope: c.jump.ExitingSlope(),
		Jumped:       c.lastJump == JumpExecuted,
	})
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Tick:         c.tick,
		Enabled:      c.enabled,
		Ground:       c.ground,
		Slope:        c.slope,
		State:        c.speed.State(),
		Speed:        c.speed.Target(),
		Jump:         c.jump.Budget(),
		ExitingSlope: c.jump.ExitingSlope(),
		Dashing:      c.dash.Active(),
		Velocity:     c.deps.Body.GetVelocity(),
		Forces:       c.integrator.Forces(),
		LastJump:     c.lastJump,
	}
}

// MoveDirection converts stick axes into a unit world direction on the
// horizontal plane, or zero when there is no input.
func MoveDirection(axes rl.Vector2, o Orientation) rl.Vector3 {
	forward := flatten(o.Forward())
	right := flatten(o.Right())
	dir := rl.Vector3Add(rl.Vector3Scale(forward, axes.Y), rl.Vector3Scale(right, axes.X))
	if rl.Vector3Length(dir) < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(dir)
}

func flatten(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	if rl.Vector3Length(v) < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(v)
}
