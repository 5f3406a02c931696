// Package world ties a scene, its physics and the simulation clock
// together and knows how to build levels and the player from config.
package world

import (
	"fmt"
	"log/slog"

	"movelab/internal/components"
	"movelab/internal/config"
	"movelab/internal/engine"
	"movelab/internal/input"
	"movelab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerName is the name given to the spawned player object.
const PlayerName = "Player"

type World struct {
	Scene     *engine.Scene
	Physics   *physics.PhysicsWorld
	Clock     *engine.FixedClock
	Scheduler *engine.Scheduler
	Player    *engine.GameObject
	LevelName string

	spawn *rl.Vector3 // level override of the configured spawn position
	log   *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	phys := physics.NewPhysicsWorld(log.With("system", "physics"))
	phys.Gravity = rl.Vector3{Y: cfg.Physics.Gravity}
	phys.Iterations = cfg.Physics.Iterations

	clock := engine.NewFixedClock(cfg.Physics.FixedStep)
	clock.MaxSteps = cfg.Physics.MaxSteps

	return &World{
		Scene:     engine.NewScene("Main"),
		Physics:   phys,
		Clock:     clock,
		Scheduler: engine.NewScheduler(),
		log:       log,
	}
}

// Add puts g in the scene and registers it with physics.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
}

func (w *World) Remove(g *engine.GameObject) {
	w.Physics.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
}

// LoadLevel replaces every non-player object with the level at path. On
// error the current level is kept.
func (w *World) LoadLevel(path string) error {
	lf, err := ReadLevel(path)
	if err != nil {
		return err
	}
	objs, err := BuildObjects(lf.Objects)
	if err != nil {
		return fmt.Errorf("level %s: %w", path, err)
	}

	for _, g := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		if g != w.Player {
			w.Remove(g)
		}
	}
	for _, g := range objs {
		w.Add(g)
	}

	w.LevelName = lf.Name
	w.spawn = nil
	if lf.Spawn != nil {
		w.spawn = &rl.Vector3{X: lf.Spawn[0], Y: lf.Spawn[1], Z: lf.Spawn[2]}
		if sp := w.Spawner(); sp != nil {
			sp.Position = *w.spawn
		}
	}
	w.log.Info("level loaded", "name", lf.Name, "path", path, "objects", len(objs))
	return nil
}

// AddGround adds a flat square floor with its top at y = 0, for running
// without a level file.
func (w *World) AddGround(size float32) *engine.GameObject {
	g := engine.NewGameObject("Ground")
	g.Transform.Position = rl.Vector3{Y: -0.5}
	dims := rl.Vector3{X: size, Y: 1, Z: size}
	g.AddComponent(components.NewBoxCollider(dims))
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.DarkGray, dims))
	w.Add(g)
	w.LevelName = "ground"
	return g
}

// SpawnPlayer builds the player from cfg and adds it to the world. The
// player starts with the scene; call Start afterwards.
func (w *World) SpawnPlayer(cfg config.Config, in input.Source) *engine.GameObject {
	g := engine.NewGameObject(PlayerName)
	g.Tags = []string{"player"}

	rb := components.NewRigidbody()
	g.AddComponent(rb)
	g.AddComponent(components.NewCapsuleCollider(2, 0.5))

	look := components.NewLook()
	look.Input = in
	g.AddComponent(look)

	motor := components.NewMotor(cfg.Locomotion, in, w.Physics, cfg.Physics.Gravity)
	motor.Logger = w.log.With("system", "locomotion")
	g.AddComponent(motor)

	spawner := components.NewSpawner(w.Scheduler)
	spawner.Input = in
	spawner.Logger = w.log.With("system", "spawn")
	w.applySpawn(spawner, cfg.Spawn)
	g.AddComponent(spawner)

	cam := components.NewCamera()
	g.AddComponent(cam)
	g.AddComponent(components.NewMeshRenderer(components.MeshCapsule, rl.Orange, rl.Vector3{}))

	w.Player = g
	w.Add(g)
	return g
}

func (w *World) applySpawn(sp *components.Spawner, sc config.SpawnConfig) {
	if len(sc.Position) == 3 {
		sp.Position = rl.Vector3{X: sc.Position[0], Y: sc.Position[1], Z: sc.Position[2]}
	}
	if w.spawn != nil {
		sp.Position = *w.spawn
	}
	sp.HeightOffset = sc.HeightOffset
	sp.FreezeOnSpawn = sc.Freeze
	sp.FreezeDelay = sc.Delay
	sp.UseKillY = sc.KillPlane
	sp.KillY = sc.KillY
}

// Start runs Start on every object. Safe to call again after adding objects.
func (w *World) Start() {
	w.Scene.Start()
}

// Update runs the per-frame pass, then as many fixed steps as the frame
// time covers. It returns the number of fixed steps.
func (w *World) Update(frameDelta float32) int {
	w.Scene.Update(frameDelta)
	return w.Clock.Advance(frameDelta, w.FixedStep)
}

// FixedStep advances the simulation by one step: controllers queue forces,
// physics integrates and resolves contacts, then due timers fire.
func (w *World) FixedStep(step float32) {
	w.Scene.FixedUpdate(step)
	w.Physics.Step(step)
	w.Scheduler.Advance(step)
}

// ApplyConfig pushes reloadable settings into a running world. Physics
// gravity and step size only take effect on restart.
func (w *World) ApplyConfig(cfg config.Config) error {
	if m := w.Motor(); m != nil {
		if err := m.SetConfig(cfg.Locomotion); err != nil {
			return err
		}
	}
	if sp := w.Spawner(); sp != nil {
		w.applySpawn(sp, cfg.Spawn)
	}
	w.Physics.Iterations = cfg.Physics.Iterations
	w.Clock.MaxSteps = cfg.Physics.MaxSteps
	return nil
}

func (w *World) Motor() *components.Motor {
	return engine.GetComponent[*components.Motor](w.Player)
}

func (w *World) Spawner() *components.Spawner {
	return engine.GetComponent[*components.Spawner](w.Player)
}

func (w *World) Camera() *components.Camera {
	return engine.GetComponent[*components.Camera](w.Player)
}
