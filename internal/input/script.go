package input

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ScriptFrame is one entry of a recorded input script. It is held for
// Repeat ticks (at least one).
type ScriptFrame struct {
	Repeat int       `yaml:"repeat"`
	Move   []float32 `yaml:"move"`
	Look   []float32 `yaml:"look"`
	Hold   []string  `yaml:"hold"`

	held [actionCount]bool
}

// Script replays frames one tick at a time. After the last frame it
// reports no input.
type Script struct {
	Name   string        `yaml:"name"`
	Frames []ScriptFrame `yaml:"frames"`

	frame int
	left  int
	done  bool
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("input: script %s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	for i := range s.Frames {
		f := &s.Frames[i]
		if f.Repeat <= 0 {
			f.Repeat = 1
		}
		if !pairOrEmpty(f.Move) || !pairOrEmpty(f.Look) {
			return nil, fmt.Errorf("frame %d: move and look take two values", i)
		}
		for _, name := range f.Hold {
			a, err := ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
			f.held[a] = true
		}
	}
	s.Rewind()
	return &s, nil
}

// Rewind restarts playback from the first frame.
func (s *Script) Rewind() {
	s.frame = 0
	s.done = len(s.Frames) == 0
	if !s.done {
		s.left = s.Frames[0].Repeat
	}
}

// Step moves to the next tick.
func (s *Script) Step() {
	if s.done {
		return
	}
	s.left--
	if s.left > 0 {
		return
	}
	s.frame++
	if s.frame >= len(s.Frames) {
		s.done = true
		return
	}
	s.left = s.Frames[s.frame].Repeat
}

func (s *Script) Done() bool { return s.done }

// Len is the total number of ticks the script covers.
func (s *Script) Len() int {
	n := 0
	for _, f := range s.Frames {
		n += f.Repeat
	}
	return n
}

func (s *Script) current() *ScriptFrame {
	if s.done {
		return nil
	}
	return &s.Frames[s.frame]
}

func (s *Script) Axes() rl.Vector2 {
	f := s.current()
	if f == nil || len(f.Move) != 2 {
		return rl.Vector2{}
	}
	return rl.Vector2{X: clampAxis(f.Move[0]), Y: clampAxis(f.Move[1])}
}

func (s *Script) LookDelta() rl.Vector2 {
	f := s.current()
	if f == nil || len(f.Look) != 2 {
		return rl.Vector2{}
	}
	return rl.Vector2{X: f.Look[0], Y: f.Look[1]}
}

func (s *Script) Held(a Action) bool {
	f := s.current()
	if f == nil || a < 0 || a >= actionCount {
		return false
	}
	return f.held[a]
}

func pairOrEmpty(v []float32) bool {
	return len(v) == 0 || len(v) == 2
}
