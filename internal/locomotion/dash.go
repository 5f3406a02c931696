package locomotion

import (
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dasher runs the dash ability: a one-shot impulse followed by a short
// window in which the speed machine reports Dashing.
type Dasher struct {
	active    bool
	external  bool
	left      float32
	cooldown  float32
	prevHeld  bool
	requested bool
}

func (d *Dasher) Active() bool { return d.active || d.external }

func (d *Dasher) Cooldown() float32 { return d.cooldown }

// Observe feeds the dash button level; a press requests a dash.
func (d *Dasher) Observe(held bool) {
	if held && !d.prevHeld {
		d.requested = true
	}
	d.prevHeld = held
}

// SetExternal lets another system hold the controller in the dash state.
func (d *Dasher) SetExternal(active bool) {
	d.external = active
}

// Tick counts the dash window and cooldown down and starts a requested
// dash when allowed. dir is the input direction; with no input the dash
// goes along forward.
func (d *Dasher) Tick(dt float32, cfg Config, b Body, dir, forward rl.Vector3) bool {
	if d.cooldown > 0 {
		d.cooldown -= dt
		if d.cooldown < 0 {
			d.cooldown = 0
		}
	}
	if d.active {
		d.left -= dt
		if d.left <= 0 {
			d.active = false
			d.left = 0
		}
	}

	if !d.requested {
		return false
	}
	d.requested = false
	if d.Active() || d.cooldown > 0 {
		return false
	}

	d.active = true
	d.left = cfg.DashDuration
	d.cooldown = cfg.DashCooldown

	along := dir
	if rl.Vector3Length(along) == 0 {
		along = forward
	}
	impulse := rl.Vector3Add(rl.Vector3Scale(along, cfg.DashForce), rl.Vector3Scale(worldUp, cfg.DashUpwardForce))
	b.AddForce(impulse, engine.ForceModeImpulse)
	return true
}

// Stop ends the dash this Dasher started, if any. An external hold stays.
func (d *Dasher) Stop() {
	d.active = false
	d.left = 0
	d.requested = false
}

func (d *Dasher) Reset() {
	*d = Dasher{}
}
