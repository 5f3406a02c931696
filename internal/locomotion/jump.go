package locomotion

import (
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// JumpBudget is the arbiter's bookkeeping, exposed for diagnostics.
type JumpBudget struct {
	Remaining int
	Max       int
	Cooldown  float32 // seconds until the budget may refill, and for a single jump until it may fire
	Buffered  bool
}

// JumpOutcome says what happened to a buffered request on a tick.
type JumpOutcome int

const (
	JumpNone JumpOutcome = iota
	JumpExecuted
	JumpRejectedCooldown
	JumpRejectedExhausted
)

func (o JumpOutcome) String() string {
	switch o {
	case JumpExecuted:
		return "executed"
	case JumpRejectedCooldown:
		return "rejected-cooldown"
	case JumpRejectedExhausted:
		return "rejected-exhausted"
	}
	return "none"
}

// JumpArbiter latches jump presses and decides on each physics tick
// whether one may fire.
type JumpArbiter struct {
	budget       JumpBudget
	cooldown     float32
	prevHeld     bool
	exitingSlope bool
}

func NewJumpArbiter(maxJumps int, cooldown float32) *JumpArbiter {
	return &JumpArbiter{
		budget:   JumpBudget{Remaining: maxJumps, Max: maxJumps},
		cooldown: cooldown,
	}
}

func (j *JumpArbiter) Budget() JumpBudget { return j.budget }

// ExitingSlope is true from a jump until its cooldown elapses. Slope
// projection, stick force and the 3D clamp stay off meanwhile.
func (j *JumpArbiter) ExitingSlope() bool { return j.exitingSlope }

// Configure changes the budget size and cooldown, trimming what is left
// of the budget if needed.
func (j *JumpArbiter) Configure(maxJumps int, cooldown float32) {
	j.budget.Max = maxJumps
	if j.budget.Remaining > maxJumps {
		j.budget.Remaining = maxJumps
	}
	j.cooldown = cooldown
}

// Observe feeds the jump button level. Only a press (up to down) buffers
// a request; holding the button does nothing more.
func (j *JumpArbiter) Observe(held bool) {
	if held && !j.prevHeld {
		j.budget.Buffered = true
	}
	j.prevHeld = held
}

// Request buffers a jump directly, as if the button had just gone down.
func (j *JumpArbiter) Request() {
	j.budget.Buffered = true
}

// Tick runs one physics step: the cooldown counts down, a grounded body
// gets its budget back, then a buffered request is consumed or dropped.
// The buffer never outlives the tick.
func (j *JumpArbiter) Tick(dt float32, grounded bool, b Body, launch float32) JumpOutcome {
	if j.budget.Cooldown > 0 {
		j.budget.Cooldown -= dt
		if j.budget.Cooldown <= 0 {
			j.budget.Cooldown = 0
			j.exitingSlope = false
		}
	} else {
		j.exitingSlope = false
	}

	// While the cooldown runs the body may still be inside the probe
	// range from the surface it just left.
	if grounded && j.budget.Cooldown == 0 {
		j.budget.Remaining = j.budget.Max
	}

	if !j.budget.Buffered {
		return JumpNone
	}
	j.budget.Buffered = false

	// With more than one jump the budget is the limit; the cooldown only
	// holds off the refill.
	if j.budget.Cooldown > 0 && j.budget.Max <= 1 {
		return JumpRejectedCooldown
	}
	if j.budget.Remaining <= 0 {
		return JumpRejectedExhausted
	}
	j.execute(b, launch)
	return JumpExecuted
}

// execute zeroes vertical velocity first so every jump reaches the same
// height whether the body was rising or falling.
func (j *JumpArbiter) execute(b Body, launch float32) {
	v := b.GetVelocity()
	v.Y = 0
	b.SetVelocity(v)
	b.AddForce(rl.Vector3Scale(worldUp, launch), engine.ForceModeVelocityChange)

	j.budget.Remaining--
	j.exitingSlope = true
	j.budget.Cooldown = j.cooldown
}
