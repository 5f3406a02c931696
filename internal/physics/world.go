package physics

import (
	"cmp"
	"log/slog"
	"slices"

	"movelab/internal/components"
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGravity is the engine gravity the locomotion tunables are written against.
const DefaultGravity float32 = -9.81

// DefaultIterations is how many times bodies are pushed out of statics per step.
const DefaultIterations = 4

// ContactPair is a dynamic body touching a static collider.
type ContactPair struct {
	Body, Static *engine.GameObject
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Iterations int
	Bodies     []*engine.GameObject // rigidbody + capsule collider
	Statics    []*engine.GameObject // box colliders, including triggers

	log *slog.Logger

	// Collision tracking for callbacks
	activeContacts  map[ContactPair]bool
	currentContacts map[ContactPair]bool
	contactOrder    []ContactPair
}

func NewPhysicsWorld(log *slog.Logger) *PhysicsWorld {
	if log == nil {
		log = slog.Default()
	}
	return &PhysicsWorld{
		Gravity:         rl.Vector3{Y: DefaultGravity},
		Iterations:      DefaultIterations,
		log:             log,
		activeContacts:  make(map[ContactPair]bool),
		currentContacts: make(map[ContactPair]bool),
	}
}

// AddObject classifies g by its components. Objects with neither a
// rigidbody nor a box collider are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	switch {
	case rb != nil:
		if slices.Contains(p.Bodies, g) {
			return
		}
		p.Bodies = append(p.Bodies, g)
		p.log.Debug("physics body added", "name", g.Name, "kinematic", rb.IsKinematic)
	case engine.GetComponent[*components.BoxCollider](g) != nil:
		if slices.Contains(p.Statics, g) {
			return
		}
		p.Statics = append(p.Statics, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Bodies = slices.DeleteFunc(p.Bodies, func(o *engine.GameObject) bool { return o == g })
	p.Statics = slices.DeleteFunc(p.Statics, func(o *engine.GameObject) bool { return o == g })
	for pair := range p.activeContacts {
		if pair.Body == g || pair.Static == g {
			delete(p.activeContacts, pair)
		}
	}
}

// Touching reports whether body was in contact with static at the end of
// the last step.
func (p *PhysicsWorld) Touching(body, static *engine.GameObject) bool {
	return p.activeContacts[ContactPair{Body: body, Static: static}]
}

// Step advances every body by dt: queued forces and gravity, drag, position,
// then contact resolution against statics.
func (p *PhysicsWorld) Step(dt float32) {
	if dt <= 0 {
		return
	}
	clear(p.currentContacts)
	p.contactOrder = p.contactOrder[:0]

	for _, obj := range p.Bodies {
		if !obj.Active {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}
		if !rb.IsKinematic {
			p.integrate(obj, rb, dt)
		}

		capsule := engine.GetComponent[*components.CapsuleCollider](obj)
		if capsule == nil {
			continue
		}
		iterations := max(p.Iterations, 1)
		for i := 0; i < iterations; i++ {
			if !p.resolveStatics(obj, rb, capsule, dt, i == 0) {
				break
			}
		}
	}

	p.dispatchCollisionCallbacks()
}

func (p *PhysicsWorld) integrate(obj *engine.GameObject, rb *components.Rigidbody, dt float32) {
	accel := rb.TakeAcceleration()
	if rb.UseGravity {
		accel = rl.Vector3Add(accel, p.Gravity)
	}
	rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(accel, dt))

	damping := clampf(1-rb.Drag*dt, 0, 1)
	rb.Velocity = rl.Vector3Scale(rb.Velocity, damping)

	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, dt))
}

// resolveStatics runs one push-out pass and reports whether anything moved.
// Contacts are recorded on the first pass only.
func (p *PhysicsWorld) resolveStatics(obj *engine.GameObject, rb *components.Rigidbody, capsule *components.CapsuleCollider, dt float32, record bool) bool {
	moved := false
	for _, static := range p.Statics {
		if !static.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](static)
		if box == nil {
			continue
		}
		a, b := capsule.Segment()
		r := capsule.ScaledRadius()
		o := BoxOBB(box)
		if !o.Bounds().Intersects(sweepBounds(a, b, r)) {
			continue
		}
		c, ok := CapsuleVsOBB(a, b, r, o)
		if !ok {
			continue
		}
		if record {
			p.recordContact(obj, static)
		}
		if box.IsTrigger || rb.IsKinematic {
			continue
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(c.Normal, c.Depth))
		rb.Velocity = removeInward(rb.Velocity, c.Normal, rb.Friction*dt)
		moved = true
	}
	return moved
}

// removeInward cancels the part of v pointing into the surface and damps
// the tangential part by friction (a fraction, clamped to 0..1).
func removeInward(v, normal rl.Vector3, friction float32) rl.Vector3 {
	vn := rl.Vector3DotProduct(v, normal)
	if vn >= 0 {
		return v
	}
	v = rl.Vector3Subtract(v, rl.Vector3Scale(normal, vn))
	if friction > 0 {
		v = rl.Vector3Scale(v, 1-clampf(friction, 0, 1))
	}
	return v
}

func (p *PhysicsWorld) recordContact(body, static *engine.GameObject) {
	pair := ContactPair{Body: body, Static: static}
	if p.currentContacts[pair] {
		return
	}
	p.currentContacts[pair] = true
	p.contactOrder = append(p.contactOrder, pair)
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers on
// both objects. Enters go out in discovery order.
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	var exits []ContactPair
	for pair := range p.activeContacts {
		if !p.currentContacts[pair] {
			exits = append(exits, pair)
		}
	}
	slices.SortFunc(exits, func(x, y ContactPair) int {
		if c := cmp.Compare(x.Body.UID, y.Body.UID); c != 0 {
			return c
		}
		return cmp.Compare(x.Static.UID, y.Static.UID)
	})

	var enters []ContactPair
	for _, pair := range p.contactOrder {
		if !p.activeContacts[pair] {
			enters = append(enters, pair)
		}
	}

	// Swap before notifying so handlers may add or remove objects.
	p.activeContacts, p.currentContacts = p.currentContacts, p.activeContacts

	for _, pair := range exits {
		p.log.Debug("contact exit", "body", pair.Body.Name, "other", pair.Static.Name)
		notifyCollisionExit(pair.Body, pair.Static)
		notifyCollisionExit(pair.Static, pair.Body)
	}
	for _, pair := range enters {
		p.log.Debug("contact enter", "body", pair.Body.Name, "other", pair.Static.Name)
		notifyCollisionEnter(pair.Body, pair.Static)
		notifyCollisionEnter(pair.Static, pair.Body)
	}
}

// notifyCollisionEnter calls OnCollisionEnter on all handlers in obj
func notifyCollisionEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

// notifyCollisionExit calls OnCollisionExit on all handlers in obj
func notifyCollisionExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}
