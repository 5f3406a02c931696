package game

import (
	"fmt"

	"movelab/internal/components"
	"movelab/internal/locomotion"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 320
	rowHeight   = 24
	labelWidth  = 130
	panelMargin = 10
)

type tunable struct {
	label    string
	value    *float32
	min, max float32
}

// TuningPanel edits the running motor's config with raygui sliders. Edits
// the controller rejects are rolled back.
type TuningPanel struct {
	edit   locomotion.Config
	synced bool
	err    error
}

func tunables(c *locomotion.Config) []tunable {
	return []tunable{
		{"Walk speed", &c.WalkSpeed, 1, 20},
		{"Sprint speed", &c.SprintSpeed, 1, 30},
		{"Dash speed", &c.DashSpeed, 1, 60},
		{"Jump velocity", &c.JumpVelocity, 1, 20},
		{"Air control", &c.AirControl, 0, 1},
		{"Ground drag", &c.GroundDrag, 0, 15},
		{"Max slope", &c.MaxSlopeAngle, 5, 89},
		{"Slope stick", &c.SlopeStickForce, 0, 200},
		{"Extra gravity", &c.ExtraGravity, 0, 5},
	}
}

// Sync drops pending edits and reads the motor's current config.
func (p *TuningPanel) Sync(m *components.Motor) {
	p.edit = m.Config
	p.synced = true
	p.err = nil
}

// Draw renders the panel at the right edge of the screen. Revert applies
// base, the config as loaded from file. It returns true when the respawn
// button was pressed.
func (p *TuningPanel) Draw(m *components.Motor, base locomotion.Config) (respawn bool) {
	if m == nil {
		return false
	}
	if !p.synced {
		p.Sync(m)
	}

	rows := tunables(&p.edit)
	height := int32(len(rows)*rowHeight + 9*rowHeight)
	x := int32(rl.GetScreenWidth()) - panelWidth - panelMargin
	y := int32(panelMargin)

	rl.DrawRectangle(x, y, panelWidth, height, colorBgPanel)
	rl.DrawRectangleLines(x, y, panelWidth, height, colorAccent)
	drawText("Locomotion", x+10, y+6, 18, colorAccentLight)

	changed := false
	row := y + 32
	for _, t := range rows {
		drawText(t.label, x+10, row+4, 15, colorTextSecondary)
		bounds := rl.Rectangle{X: float32(x + labelWidth), Y: float32(row), Width: panelWidth - labelWidth - 60, Height: rowHeight - 6}
		v := gui.Slider(bounds, "", fmt.Sprintf("%.2f", *t.value), *t.value, t.min, t.max)
		changed = changed || v != *t.value
		*t.value = v
		row += rowHeight
	}

	bounds := rl.Rectangle{X: float32(x + labelWidth), Y: float32(row), Width: panelWidth - labelWidth - 60, Height: rowHeight - 6}
	drawText("Max jumps", x+10, row+4, 15, colorTextSecondary)
	jumps := int(gui.Slider(bounds, "", fmt.Sprintf("%d", p.edit.MaxJumps), float32(p.edit.MaxJumps), 1, 5) + 0.5)
	changed = changed || jumps != p.edit.MaxJumps
	p.edit.MaxJumps = jumps
	row += rowHeight + 6

	f := &p.edit.Features
	check := func(label string, on *bool) {
		v := gui.CheckBox(rl.Rectangle{X: float32(x + 10), Y: float32(row), Width: 16, Height: 16}, label, *on)
		changed = changed || v != *on
		*on = v
		row += rowHeight
	}
	check("Slopes", &f.Slopes)
	check("Multi jump", &f.MultiJump)
	check("Dash", &f.Dash)
	check("Sprint", &f.Sprint)
	check("Suppress gravity on slope", &p.edit.SuppressGravityOnSlope)

	if changed {
		p.apply(m, p.edit)
	}

	row += 4
	half := float32(panelWidth-30) / 2
	if gui.Button(rl.Rectangle{X: float32(x + 10), Y: float32(row), Width: half, Height: rowHeight}, "Respawn") {
		respawn = true
	}
	if gui.Button(rl.Rectangle{X: float32(x+20) + half, Y: float32(row), Width: half, Height: rowHeight}, "Revert") {
		p.apply(m, base)
	}
	row += rowHeight + 6

	if p.err != nil {
		drawText(p.err.Error(), x+10, row, 13, colorWarn)
	}
	return respawn
}

func (p *TuningPanel) apply(m *components.Motor, cfg locomotion.Config) {
	if err := m.SetConfig(cfg); err != nil {
		p.err = err
	} else {
		p.err = nil
	}
	p.edit = m.Config
}
