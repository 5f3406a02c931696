package components

import (
	"fmt"
	"log/slog"

	"movelab/internal/engine"
	"movelab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KillZoneTag marks trigger boxes that send the player back to spawn.
const KillZoneTag = "killzone"

// Spawner places its object at the spawn point and can freeze control for
// a short delay after each spawn. It also respawns on the respawn and
// reset-origin actions, on touching a kill zone and on falling below KillY.
// Add it after the Motor so the first spawn can freeze a started controller.
type Spawner struct {
	engine.BaseComponent
	Position      rl.Vector3
	HeightOffset  float32
	FreezeOnSpawn bool
	FreezeDelay   float32 // seconds of simulation time
	KillY         float32
	UseKillY      bool

	Input     input.Source
	Scheduler *engine.Scheduler
	Logger    *slog.Logger

	Respawned engine.Event[rl.Vector3]

	frozen      bool
	pending     bool
	prevRespawn bool
	prevOrigin  bool
	enableTimer string
}

func NewSpawner(scheduler *engine.Scheduler) *Spawner {
	return &Spawner{
		HeightOffset:  1.5,
		FreezeOnSpawn: true,
		FreezeDelay:   0.5,
		Scheduler:     scheduler,
	}
}

// SpawnPoint is Position lifted by HeightOffset.
func (s *Spawner) SpawnPoint() rl.Vector3 {
	return rl.Vector3Add(s.Position, rl.Vector3{Y: s.HeightOffset})
}

// Frozen reports whether control is held off after a spawn.
func (s *Spawner) Frozen() bool { return s.frozen }

func (s *Spawner) Start() {
	g := s.GetGameObject()
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	s.enableTimer = fmt.Sprintf("spawn-enable/%d", g.UID)
	s.Reset(s.SpawnPoint(), s.FreezeOnSpawn)
}

// Update handles the reset hotkeys. They are ignored while frozen.
func (s *Spawner) Update(deltaTime float32) {
	if s.Input == nil {
		return
	}
	respawn := s.Input.Held(input.ActionRespawn)
	origin := s.Input.Held(input.ActionResetOrigin)
	defer func() { s.prevRespawn, s.prevOrigin = respawn, origin }()

	if s.frozen {
		return
	}
	switch {
	case respawn && !s.prevRespawn:
		s.Reset(s.SpawnPoint(), false)
	case origin && !s.prevOrigin:
		s.Reset(rl.Vector3{}, false)
	}
}

func (s *Spawner) FixedUpdate(fixedDelta float32) {
	if s.pending {
		s.pending = false
		s.Reset(s.SpawnPoint(), s.FreezeOnSpawn)
		return
	}
	if s.UseKillY && s.GetGameObject().Transform.Position.Y < s.KillY {
		s.Logger.Info("fell out of the level", "y", s.GetGameObject().Transform.Position.Y)
		s.Reset(s.SpawnPoint(), s.FreezeOnSpawn)
	}
}

// OnCollisionEnter queues a respawn for the next fixed step; the physics
// world is still dispatching contacts.
func (s *Spawner) OnCollisionEnter(other *engine.GameObject) {
	if other.HasTag(KillZoneTag) {
		s.Logger.Info("kill zone", "zone", other.Name)
		s.pending = true
	}
}

func (s *Spawner) OnCollisionExit(other *engine.GameObject) {}

// Reset moves the object to pos with zero velocity and clears the motor's
// transient state. A pending re-enable from an earlier Reset is always
// cancelled; with freeze the body is held kinematic and control disabled
// until FreezeDelay has elapsed.
func (s *Spawner) Reset(pos rl.Vector3, freeze bool) {
	g := s.GetGameObject()
	g.Transform.Position = pos

	rb := engine.GetComponent[*Rigidbody](g)
	if rb != nil {
		rb.Velocity = rl.Vector3{}
		rb.TakeAcceleration()
	}
	motor := engine.GetComponent[*Motor](g)
	if motor != nil && motor.Controller() != nil {
		motor.Controller().Reset()
	}

	if s.Scheduler != nil {
		s.Scheduler.Cancel(s.enableTimer)
	}

	if freeze && s.Scheduler != nil && s.FreezeDelay > 0 {
		s.setFrozen(true)
		s.Scheduler.After(s.enableTimer, s.FreezeDelay, func() {
			s.setFrozen(false)
			s.Logger.Debug("control enabled", "object", g.Name)
		})
	} else {
		s.setFrozen(false)
	}

	s.Logger.Info("spawned", "object", g.Name, "pos", pos, "frozen", s.frozen)
	s.Respawned.Emit(pos)
}

func (s *Spawner) setFrozen(on bool) {
	s.frozen = on
	g := s.GetGameObject()
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		rb.IsKinematic = on
	}
	if motor := engine.GetComponent[*Motor](g); motor != nil {
		motor.SetEnabled(!on)
	}
}
