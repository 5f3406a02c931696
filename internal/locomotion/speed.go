package locomotion

import "github.com/chewxy/math32"

// SpeedTarget is the speed the integrator and the clamp aim for.
type SpeedTarget struct {
	Desired      float32
	Current      float32
	ChangeFactor float32 // how fast an interpolation runs, 1 is real time
}

// speedLerp moves Current from one speed to another. Elapsed advances by
// dt*boost per tick and the interpolation finishes once it reaches the
// size of the speed change, so bigger changes take longer.
type speedLerp struct {
	from, to float32
	elapsed  float32
	total    float32
	boost    float32
}

// SpeedMachine picks the locomotion state and target speed each tick.
type SpeedMachine struct {
	state        State
	lastState    State
	target       SpeedTarget
	lastDesired  float32
	keepMomentum bool
	lerp         *speedLerp
}

func NewSpeedMachine(cfg Config) *SpeedMachine {
	return &SpeedMachine{
		state:       Walking,
		lastState:   Walking,
		target:      SpeedTarget{Desired: cfg.WalkSpeed, Current: cfg.WalkSpeed, ChangeFactor: 1},
		lastDesired: cfg.WalkSpeed,
	}
}

func (m *SpeedMachine) State() State        { return m.state }
func (m *SpeedMachine) Target() SpeedTarget { return m.target }
func (m *SpeedMachine) Interpolating() bool { return m.lerp != nil }

// Tick evaluates the transition function in priority order and updates
// the target speed. It returns true when the state changed.
func (m *SpeedMachine) Tick(dt float32, grounded, sprint, dashing bool, cfg Config) bool {
	prev := m.state

	switch {
	case dashing:
		m.state = Dashing
		m.target.Desired = cfg.DashSpeed
		m.target.ChangeFactor = cfg.DashSpeedChangeFactor
	case grounded && sprint:
		m.state = Sprinting
		m.target.Desired = cfg.SprintSpeed
	case grounded:
		m.state = Walking
		m.target.Desired = cfg.WalkSpeed
	default:
		m.state = Airborne
		// Keep the sprint tier through a jump; anything slower falls back
		// to walking.
		if m.target.Desired < cfg.SprintSpeed {
			m.target.Desired = cfg.WalkSpeed
		} else {
			m.target.Desired = cfg.SprintSpeed
		}
	}

	if m.lastState == Dashing {
		m.keepMomentum = true
	}

	if m.target.Desired != m.lastDesired {
		if m.keepMomentum {
			m.startLerp()
		} else {
			m.lerp = nil
			m.target.Current = m.target.Desired
		}
	}

	m.advanceLerp(dt)

	m.lastDesired = m.target.Desired
	m.lastState = m.state
	return m.state != prev
}

// startLerp replaces any interpolation in flight.
func (m *SpeedMachine) startLerp() {
	diff := math32.Abs(m.target.Desired - m.target.Current)
	if diff == 0 {
		m.finishLerp()
		return
	}
	m.lerp = &speedLerp{
		from:  m.target.Current,
		to:    m.target.Desired,
		total: diff,
		boost: m.target.ChangeFactor,
	}
}

func (m *SpeedMachine) advanceLerp(dt float32) {
	l := m.lerp
	if l == nil {
		return
	}
	if l.elapsed >= l.total {
		m.finishLerp()
		return
	}
	m.target.Current = l.from + (l.to-l.from)*(l.elapsed/l.total)
	l.elapsed += dt * l.boost
}

func (m *SpeedMachine) finishLerp() {
	if m.lerp != nil {
		m.target.Current = m.lerp.to
	} else {
		m.target.Current = m.target.Desired
	}
	m.lerp = nil
	m.target.ChangeFactor = 1
	m.keepMomentum = false
}

// Reset drops any interpolation and returns to walking speed.
func (m *SpeedMachine) Reset(cfg Config) {
	*m = *NewSpeedMachine(cfg)
}
