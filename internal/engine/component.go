package engine

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Component is anything attached to a GameObject. Update runs once per
// rendered frame, FixedUpdate once per fixed simulation step.
type Component interface {
	Start()
	Update(deltaTime float32)
	FixedUpdate(fixedDelta float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Serializable components can be created by name from level files.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// CollisionHandler is implemented by components that want contact callbacks.
// Enter fires on the first step two objects touch, Exit on the first step
// they no longer do.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) FixedUpdate(fixedDelta float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

var componentRegistry = map[string]func() Serializable{}

// RegisterComponent makes a component type constructible by name.
// Registering the same name twice panics.
func RegisterComponent(name string, factory func() Serializable) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent builds a registered component and applies data to it.
func CreateComponent(name string, data map[string]any) (Serializable, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q%s", name, DidYouMean(name, RegisteredComponents()))
	}
	c := factory()
	if data != nil {
		c.Deserialize(data)
	}
	return c, nil
}

// RegisteredComponents returns the sorted names of all registered components.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Float32 reads a numeric field from decoded level data. YAML decodes
// numbers as int or float64 depending on how they were written.
func Float32(data map[string]any, key string) (float32, bool) {
	return toFloat32(data[key])
}

// Vec3 reads a three element list such as [0, 1.5, 0].
func Vec3(data map[string]any, key string) (rl.Vector3, bool) {
	var list []any
	switch v := data[key].(type) {
	case []any:
		list = v
	case []float32:
		if len(v) == 3 {
			return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, true
		}
		return rl.Vector3{}, false
	default:
		return rl.Vector3{}, false
	}
	if len(list) != 3 {
		return rl.Vector3{}, false
	}
	var out [3]float32
	for i, item := range list {
		f, ok := toFloat32(item)
		if !ok {
			return rl.Vector3{}, false
		}
		out[i] = f
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}, true
}

func toFloat32(raw any) (float32, bool) {
	switch v := raw.(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	}
	return 0, false
}

// Bool reads a boolean field from decoded level data.
func Bool(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)
	return v, ok
}

// Int reads an integer field from decoded level data.
func Int(data map[string]any, key string) (int, bool) {
	return toInt(data[key])
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Color reads [r, g, b] or [r, g, b, a] with components in 0..255.
func Color(data map[string]any, key string) (rl.Color, bool) {
	var list []int
	switch v := data[key].(type) {
	case []int:
		list = v
	case []any:
		for _, item := range v {
			n, ok := toInt(item)
			if !ok {
				return rl.Color{}, false
			}
			list = append(list, n)
		}
	default:
		return rl.Color{}, false
	}
	if len(list) != 3 && len(list) != 4 {
		return rl.Color{}, false
	}
	c := rl.Color{A: 255}
	ch := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i, n := range list {
		*ch[i] = uint8(min(max(n, 0), 255))
	}
	return c, true
}
