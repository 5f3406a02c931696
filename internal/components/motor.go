package components

import (
	"log/slog"

	"movelab/internal/engine"
	"movelab/internal/input"
	"movelab/internal/locomotion"
)

// Motor drives its object's Rigidbody with a locomotion controller. The
// controller is built in Start from the Rigidbody, CapsuleCollider and
// optional Look on the same object.
type Motor struct {
	engine.BaseComponent
	Config   locomotion.Config
	Input    input.Source
	Query    engine.PhysicsQuery
	GravityY float32
	Logger   *slog.Logger

	controller *locomotion.Controller
	err        error
}

func NewMotor(cfg locomotion.Config, in input.Source, query engine.PhysicsQuery, gravityY float32) *Motor {
	return &Motor{Config: cfg, Input: in, Query: query, GravityY: gravityY}
}

// Start builds the controller. On failure the motor logs the error, stays
// disabled and reports it from Err.
func (m *Motor) Start() {
	g := m.GetGameObject()
	if m.Logger == nil {
		m.Logger = slog.Default()
	}

	deps := locomotion.Deps{
		Query:          m.Query,
		Input:          m.Input,
		EngineGravityY: m.GravityY,
		Logger:         m.Logger.With("object", g.Name),
	}
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		deps.Body = rb
	}
	if c := engine.GetComponent[*CapsuleCollider](g); c != nil {
		deps.Capsule = locomotion.Capsule{Height: c.Height, Radius: c.Radius}
	}
	if look := engine.GetComponent[*Look](g); look != nil {
		deps.Orientation = look
	}

	ctrl, err := locomotion.New(m.Config, deps)
	if err != nil {
		m.err = err
		m.Logger.Error("motor disabled", "object", g.Name, "err", err)
		return
	}
	m.controller = ctrl
}

// Err is the error Start failed with, if any.
func (m *Motor) Err() error { return m.err }

// Controller is nil until Start succeeds.
func (m *Motor) Controller() *locomotion.Controller { return m.controller }

func (m *Motor) Update(deltaTime float32) {
	if m.controller != nil {
		m.controller.Update(deltaTime)
	}
}

func (m *Motor) FixedUpdate(fixedDelta float32) {
	if m.controller != nil {
		m.controller.FixedTick(fixedDelta)
	}
}

func (m *Motor) SetEnabled(on bool) {
	if m.controller != nil {
		m.controller.SetEnabled(on)
	}
}

// Enabled is false while the motor failed to start or control is frozen.
func (m *Motor) Enabled() bool {
	return m.controller != nil && m.controller.Enabled()
}

// SetConfig applies new tunables to a running controller.
func (m *Motor) SetConfig(cfg locomotion.Config) error {
	if m.controller != nil {
		if err := m.controller.SetConfig(cfg); err != nil {
			return err
		}
	}
	m.Config = cfg
	return nil
}
