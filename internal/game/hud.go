package game

import (
	"fmt"

	"movelab/internal/locomotion"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const helpText = "WASD move, mouse look, F1 tuning, F2 bounds, F3 probe, F5 save level"

// hudLines formats a controller snapshot for the overlay.
func hudLines(s locomotion.Snapshot) []string {
	v := s.Velocity
	flat := math32.Hypot(v.X, v.Z)
	lines := []string{
		fmt.Sprintf("state     %s", s.State),
		fmt.Sprintf("ground    %v  slope %s %.1f°", s.Ground.Grounded, s.Slope, s.Ground.SlopeAngle),
		fmt.Sprintf("speed     %.2f / %.2f", s.Speed.Current, s.Speed.Desired),
		fmt.Sprintf("velocity  %.2f flat  %.2f up", flat, v.Y),
		fmt.Sprintf("jumps     %d / %d", s.Jump.Remaining, s.Jump.Max),
	}
	if s.LastJump != locomotion.JumpNone {
		lines = append(lines, fmt.Sprintf("last jump %s", s.LastJump))
	}
	if s.Dashing {
		lines = append(lines, "dashing")
	}
	if s.ExitingSlope {
		lines = append(lines, "exiting slope")
	}
	if !s.Enabled {
		lines = append(lines, "control frozen")
	}
	return lines
}

func (g *Game) drawHUD() {
	drawText(helpText, 10, 10, 16, colorTextMuted)
	rl.DrawFPS(10, 32)

	y := int32(58)
	if m := g.World.Motor(); m != nil && m.Controller() != nil {
		for _, line := range hudLines(m.Controller().Snapshot()) {
			drawText(line, 10, y, 16, colorTextPrimary)
			y += 20
		}
	}

	drawn, culled := g.Renderer.Stats()
	y += 6
	drawText(fmt.Sprintf("level %s  drawn %d  culled %d", g.World.LevelName, drawn, culled), 10, y, 14, colorTextMuted)
	y += 18
	drawText(fmt.Sprintf("update %.2f ms  draw %.2f ms", g.updateMs, g.drawMs), 10, y, 14, colorTextMuted)

	if g.status != "" && rl.GetTime()-g.statusTime < statusSeconds {
		drawText(g.status, 10, int32(rl.GetScreenHeight())-28, 16, colorWarn)
	}
}
