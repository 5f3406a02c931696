package engine

import (
	"cmp"
	"slices"
)

// FixedClock turns variable render frame times into a whole number of
// fixed simulation steps. Leftover time carries into the next frame.
type FixedClock struct {
	Step     float32
	MaxSteps int // per frame; extra accumulated time is dropped

	accumulator float32
	time        float64
	ticks       uint64
}

func NewFixedClock(step float32) *FixedClock {
	return &FixedClock{Step: step, MaxSteps: 8}
}

// Advance adds frameDelta to the accumulator and calls fn once per whole
// step. It returns how many steps ran.
func (c *FixedClock) Advance(frameDelta float32, fn func(step float32)) int {
	if c.Step <= 0 || frameDelta <= 0 {
		return 0
	}
	c.accumulator += frameDelta
	steps := 0
	for c.accumulator >= c.Step {
		if c.MaxSteps > 0 && steps >= c.MaxSteps {
			c.accumulator = 0
			break
		}
		c.accumulator -= c.Step
		c.time += float64(c.Step)
		c.ticks++
		steps++
		fn(c.Step)
	}
	return steps
}

// Alpha is the fraction of a step left in the accumulator, for interpolation.
func (c *FixedClock) Alpha() float32 {
	if c.Step <= 0 {
		return 0
	}
	return c.accumulator / c.Step
}

// Time is the simulated time in seconds.
func (c *FixedClock) Time() float64 { return c.time }

func (c *FixedClock) Ticks() uint64 { return c.ticks }

type timer struct {
	key string
	due float64
	seq uint64
	fn  func()
}

// Scheduler runs keyed one-shot callbacks on the simulation clock.
// Scheduling a key that is already pending replaces the earlier timer,
// so at most one callback per key is ever in flight.
type Scheduler struct {
	now    float64
	seq    uint64
	timers map[string]*timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*timer)}
}

// After schedules fn to run delay seconds from now under key.
func (s *Scheduler) After(key string, delay float32, fn func()) {
	if s.timers == nil {
		s.timers = make(map[string]*timer)
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.timers[key] = &timer{key: key, due: s.now + float64(delay), seq: s.seq, fn: fn}
}

// Cancel drops the pending timer for key. It reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	if _, ok := s.timers[key]; !ok {
		return false
	}
	delete(s.timers, key)
	return true
}

func (s *Scheduler) Pending(key string) bool {
	_, ok := s.timers[key]
	return ok
}

// Remaining returns the time left on key's timer.
func (s *Scheduler) Remaining(key string) (float32, bool) {
	t, ok := s.timers[key]
	if !ok {
		return 0, false
	}
	return float32(t.due - s.now), true
}

func (s *Scheduler) Len() int { return len(s.timers) }

func (s *Scheduler) Now() float64 { return s.now }

// Advance moves the clock forward by dt and fires every timer that came
// due, oldest deadline first. Callbacks may schedule or cancel timers; a
// timer replaced or cancelled by an earlier callback in the same pass does
// not fire.
func (s *Scheduler) Advance(dt float32) {
	s.now += float64(dt)

	var due []*timer
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return
	}
	slices.SortFunc(due, func(a, b *timer) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	for _, t := range due {
		current, ok := s.timers[t.key]
		if !ok || current.seq != t.seq {
			continue
		}
		delete(s.timers, t.key)
		t.fn()
	}
}
