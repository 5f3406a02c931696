package world

import (
	"errors"
	"fmt"
	"os"

	"movelab/internal/components"
	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type LevelFile struct {
	Name    string      `yaml:"name"`
	Spawn   []float32   `yaml:"spawn,omitempty"`
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef is one level object. Each component entry names a registered
// component under "type"; the other keys go to its Deserialize.
type ObjectDef struct {
	Name       string           `yaml:"name"`
	Tags       []string         `yaml:"tags,omitempty"`
	Position   []float32        `yaml:"position,omitempty"`
	Rotation   []float32        `yaml:"rotation,omitempty"`
	Scale      []float32        `yaml:"scale,omitempty"`
	Components []map[string]any `yaml:"components"`
}

var ErrBadLevel = errors.New("bad level")

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func colorNames() []string {
	names := make([]string, 0, len(colorByName))
	for n := range colorByName {
		names = append(names, n)
	}
	return names
}

// --- Loading ---

// ReadLevel parses a level file without building anything.
func ReadLevel(path string) (LevelFile, error) {
	var lf LevelFile
	data, err := os.ReadFile(path)
	if err != nil {
		return lf, fmt.Errorf("read level: %w", err)
	}
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return lf, fmt.Errorf("parse level %s: %w", path, err)
	}
	if lf.Spawn != nil && len(lf.Spawn) != 3 {
		return lf, fmt.Errorf("%w: spawn needs 3 values, got %d", ErrBadLevel, len(lf.Spawn))
	}
	return lf, nil
}

// BuildObjects turns level definitions into game objects. Every problem is
// reported; objects with errors are left out.
func BuildObjects(defs []ObjectDef) ([]*engine.GameObject, error) {
	var objs []*engine.GameObject
	var errs []error
	for i, def := range defs {
		g, err := buildObject(def)
		if err != nil {
			errs = append(errs, fmt.Errorf("object %d (%s): %w", i, def.Name, err))
			continue
		}
		objs = append(objs, g)
	}
	return objs, errors.Join(errs...)
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags

	var err error
	if g.Transform.Position, err = vec3Or(def.Position, rl.Vector3{}, "position"); err != nil {
		return nil, err
	}
	if g.Transform.Rotation, err = vec3Or(def.Rotation, rl.Vector3{}, "rotation"); err != nil {
		return nil, err
	}
	if g.Transform.Scale, err = vec3Or(def.Scale, rl.Vector3{X: 1, Y: 1, Z: 1}, "scale"); err != nil {
		return nil, err
	}

	for _, raw := range def.Components {
		typeName, _ := raw["type"].(string)
		if typeName == "" {
			return nil, fmt.Errorf("%w: component without type", ErrBadLevel)
		}
		data := make(map[string]any, len(raw))
		for k, v := range raw {
			if k != "type" {
				data[k] = v
			}
		}
		if name, ok := data["color"].(string); ok {
			c, ok := colorByName[name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown color %q%s", ErrBadLevel, name, engine.DidYouMean(name, colorNames()))
			}
			data["color"] = []int{int(c.R), int(c.G), int(c.B), int(c.A)}
		}
		comp, err := engine.CreateComponent(typeName, data)
		if err != nil {
			return nil, err
		}
		g.AddComponent(comp)
	}
	return g, nil
}

func vec3Or(v []float32, def rl.Vector3, field string) (rl.Vector3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
	}
	return def, fmt.Errorf("%w: %s needs 3 values, got %d", ErrBadLevel, field, len(v))
}

// --- Saving ---

// SaveLevel writes every level object in the scene. The player is code
// managed and skipped.
func (w *World) SaveLevel(path string) error {
	lf := LevelFile{Name: w.LevelName}
	if w.spawn != nil {
		lf.Spawn = []float32{w.spawn.X, w.spawn.Y, w.spawn.Z}
	}

	for _, g := range w.Scene.GameObjects {
		if g == w.Player {
			continue
		}
		t := g.Transform
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: []float32{t.Position.X, t.Position.Y, t.Position.Z},
			Rotation: []float32{t.Rotation.X, t.Rotation.Y, t.Rotation.Z},
			Scale:    []float32{t.Scale.X, t.Scale.Y, t.Scale.Z},
		}
		for _, c := range g.Components() {
			s, ok := c.(engine.Serializable)
			if !ok {
				continue
			}
			data := s.Serialize()
			data["type"] = s.TypeName()
			if r, ok := c.(*components.MeshRenderer); ok {
				if name, ok := nameByColor[r.Color]; ok {
					data["color"] = name
				}
			}
			def.Components = append(def.Components, data)
		}
		lf.Objects = append(lf.Objects, def)
	}

	data, err := yaml.Marshal(lf)
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}
