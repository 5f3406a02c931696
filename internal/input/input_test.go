package input

import (
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"jump", ActionJump, false},
		{" Sprint ", ActionSprint, false},
		{"reset_origin", ActionResetOrigin, false},
		{"crouch", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAction(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"SPACE", rl.KeySpace},
		{"left_shift", rl.KeyLeftShift},
		{"e", rl.KeyE},
		{"7", rl.KeySeven},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if err != nil {
			t.Errorf("ParseKey(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKey("HYPER"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestBindingsResolveReportsAllErrors(t *testing.T) {
	b := DefaultBindings()
	b.Jump = "NOPE"
	b.Dash = "ALSO_NOPE"

	_, err := b.Resolve()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "jump") || !strings.Contains(err.Error(), "dash") {
		t.Errorf("error should name both bad bindings: %v", err)
	}
}

func TestDefaultBindingsResolve(t *testing.T) {
	keys, err := DefaultBindings().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if keys[ActionJump] != rl.KeySpace {
		t.Errorf("jump bound to %d, want space", keys[ActionJump])
	}
}

func TestKeyboardRebind(t *testing.T) {
	k, err := NewKeyboard(DefaultBindings())
	if err != nil {
		t.Fatal(err)
	}

	b := DefaultBindings()
	b.Jump = "J"
	b.Sensitivity = 0.5
	if err := k.Rebind(b); err != nil {
		t.Fatalf("Rebind: %v", err)
	}
	if k.keys[ActionJump] != rl.KeyJ || k.sensitivity != 0.5 {
		t.Errorf("jump = %d, sensitivity = %v", k.keys[ActionJump], k.sensitivity)
	}

	b.Jump = "NOPE"
	if err := k.Rebind(b); err == nil {
		t.Fatal("expected error")
	}
	if k.keys[ActionJump] != rl.KeyJ {
		t.Error("failed rebind must keep the old keys")
	}
}

const walkThenJump = `
name: walk-then-jump
frames:
  - repeat: 3
    move: [0, 1]
    hold: [sprint]
  - move: [0, 1]
    hold: [sprint, jump]
  - repeat: 2
    look: [5, -2]
`

func TestScriptPlayback(t *testing.T) {
	s, err := ParseScript([]byte(walkThenJump))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}

	var jumps, sprints int
	for !s.Done() {
		if s.Held(ActionJump) {
			jumps++
		}
		if s.Held(ActionSprint) {
			sprints++
			if s.Axes().Y != 1 {
				t.Errorf("expected forward input while sprinting, got %v", s.Axes())
			}
		}
		s.Step()
	}
	if jumps != 1 || sprints != 4 {
		t.Errorf("jumps=%d sprints=%d, want 1 and 4", jumps, sprints)
	}
	if s.Axes() != (rl.Vector2{}) || s.Held(ActionSprint) {
		t.Error("finished script should report no input")
	}
}

func TestScriptLookAndRewind(t *testing.T) {
	s, err := ParseScript([]byte(walkThenJump))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	for i := 0; i < 4; i++ {
		s.Step()
	}
	if got := s.LookDelta(); got != (rl.Vector2{X: 5, Y: -2}) {
		t.Errorf("LookDelta() = %v", got)
	}

	s.Rewind()
	if s.Done() || !s.Held(ActionSprint) {
		t.Error("Rewind should return to the first frame")
	}
}

func TestScriptClampsAxes(t *testing.T) {
	s, err := ParseScript([]byte("frames:\n  - move: [3, -2]\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if got := s.Axes(); got != (rl.Vector2{X: 1, Y: -1}) {
		t.Errorf("Axes() = %v, want clamped", got)
	}
}

func TestScriptRejectsBadFrames(t *testing.T) {
	bad := []string{
		"frames:\n  - hold: [teleport]\n",
		"frames:\n  - move: [1]\n",
		"frames: {",
	}
	for _, src := range bad {
		if _, err := ParseScript([]byte(src)); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestEmptyScriptIsDone(t *testing.T) {
	for _, src := range []string{"name: empty\n", ""} {
		s, err := ParseScript([]byte(src))
		if err != nil {
			t.Fatalf("ParseScript(%q): %v", src, err)
		}
		if !s.Done() || s.Len() != 0 {
			t.Errorf("%q: empty script should be done", src)
		}
		s.Step()
		if s.Axes() != (rl.Vector2{}) || s.Held(ActionJump) {
			t.Errorf("%q: empty script should give no input", src)
		}
	}
}

func TestShippedScriptsLoad(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "assets", "scripts", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no scripts found")
	}
	for _, p := range paths {
		s, err := LoadScript(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if s.Len() == 0 {
			t.Errorf("%s: empty script", p)
		}
	}
}
