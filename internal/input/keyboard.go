package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bindings maps actions to key names such as "SPACE" or "LEFT_SHIFT".
type Bindings struct {
	Jump        string  `yaml:"jump"`
	Sprint      string  `yaml:"sprint"`
	Dash        string  `yaml:"dash"`
	Respawn     string  `yaml:"respawn"`
	ResetOrigin string  `yaml:"reset_origin"`
	Sensitivity float32 `yaml:"sensitivity"`
	InvertY     bool    `yaml:"invert_y"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Jump:        "SPACE",
		Sprint:      "LEFT_SHIFT",
		Dash:        "E",
		Respawn:     "R",
		ResetOrigin: "T",
		Sensitivity: 0.1,
	}
}

var namedKeys = map[string]int32{
	"SPACE":         rl.KeySpace,
	"LEFT_SHIFT":    rl.KeyLeftShift,
	"RIGHT_SHIFT":   rl.KeyRightShift,
	"LEFT_CONTROL":  rl.KeyLeftControl,
	"RIGHT_CONTROL": rl.KeyRightControl,
	"LEFT_ALT":      rl.KeyLeftAlt,
	"TAB":           rl.KeyTab,
	"ENTER":         rl.KeyEnter,
	"BACKSPACE":     rl.KeyBackspace,
}

// ParseKey resolves a key name. Single letters and digits map to their
// ASCII key codes.
func ParseKey(name string) (int32, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if k, ok := namedKeys[name]; ok {
		return k, nil
	}
	if len(name) == 1 {
		c := name[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return int32(c), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q%s", name, engine.DidYouMean(name, slices.Sorted(maps.Keys(namedKeys))))
}

// Resolve parses every binding. All bad names are reported together.
func (b Bindings) Resolve() (map[Action]int32, error) {
	names := map[Action]string{
		ActionJump:        b.Jump,
		ActionSprint:      b.Sprint,
		ActionDash:        b.Dash,
		ActionRespawn:     b.Respawn,
		ActionResetOrigin: b.ResetOrigin,
	}
	keys := make(map[Action]int32, len(names))
	var bad []string
	for a := ActionJump; a < actionCount; a++ {
		k, err := ParseKey(names[a])
		if err != nil {
			bad = append(bad, fmt.Sprintf("%s: %v", a, err))
			continue
		}
		keys[a] = k
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("input bindings: %s", strings.Join(bad, "; "))
	}
	return keys, nil
}

// Keyboard reads WASD, the mouse and the bound action keys through raylib.
// It must only be used while a window is open.
type Keyboard struct {
	keys        map[Action]int32
	sensitivity float32
	invertY     bool
}

func NewKeyboard(b Bindings) (*Keyboard, error) {
	keys, err := b.Resolve()
	if err != nil {
		return nil, err
	}
	return &Keyboard{keys: keys, sensitivity: b.Sensitivity, invertY: b.InvertY}, nil
}

// Rebind swaps in new bindings. On error the current ones stay.
func (k *Keyboard) Rebind(b Bindings) error {
	keys, err := b.Resolve()
	if err != nil {
		return err
	}
	k.keys, k.sensitivity, k.invertY = keys, b.Sensitivity, b.InvertY
	return nil
}

func (k *Keyboard) Axes() rl.Vector2 {
	var v rl.Vector2
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		v.Y++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		v.Y--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		v.X++
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		v.X--
	}
	return v
}

func (k *Keyboard) LookDelta() rl.Vector2 {
	d := rl.GetMouseDelta()
	pitch := -d.Y
	if k.invertY {
		pitch = d.Y
	}
	return rl.Vector2{X: d.X * k.sensitivity, Y: pitch * k.sensitivity}
}

func (k *Keyboard) Held(a Action) bool {
	key, ok := k.keys[a]
	if !ok {
		return false
	}
	return rl.IsKeyDown(key)
}
