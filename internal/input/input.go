// Package input turns devices or recorded scripts into per-frame movement
// intent. Nothing outside this package polls a device.
package input

import (
	"fmt"
	"strings"

	"movelab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Action int

const (
	ActionJump Action = iota
	ActionSprint
	ActionDash
	ActionRespawn
	ActionResetOrigin
	actionCount
)

var actionNames = [actionCount]string{
	ActionJump:        "jump",
	ActionSprint:      "sprint",
	ActionDash:        "dash",
	ActionRespawn:     "respawn",
	ActionResetOrigin: "reset_origin",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q%s", name, engine.DidYouMean(name, actionNames[:]))
}

// Source is sampled once per rendered frame.
type Source interface {
	// Axes returns strafe (X, right positive) and forward (Y) in [-1, 1].
	Axes() rl.Vector2
	// LookDelta is the yaw/pitch change requested this frame, in degrees.
	LookDelta() rl.Vector2
	// Held reports whether the action's button is down right now.
	Held(a Action) bool
}

func clampAxis(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
