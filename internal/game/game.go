// Package game runs the interactive playground: a window, the player in a
// level, a tuning overlay and config hot reload.
package game

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"movelab/internal/components"
	"movelab/internal/config"
	"movelab/internal/engine"
	"movelab/internal/input"
	"movelab/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusSeconds = 4

type Game struct {
	World    *world.World
	Renderer *world.Renderer
	Config   config.Config

	configPath string
	keyboard   *input.Keyboard
	watcher    *config.Watcher
	tuning     TuningPanel
	showPanel  bool
	log        *slog.Logger

	status     string
	statusTime float64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the world from cfg, which was loaded from configPath. The
// window is opened by Run.
func New(configPath string, cfg config.Config, log *slog.Logger) (*Game, error) {
	kb, err := input.NewKeyboard(cfg.Input)
	if err != nil {
		return nil, err
	}

	w := world.New(cfg, log)
	if cfg.Level != "" {
		if err := w.LoadLevel(cfg.LevelPath()); err != nil {
			return nil, err
		}
	} else {
		w.AddGround(100)
	}
	w.SpawnPlayer(cfg, kb)
	if err := startWorld(w); err != nil {
		return nil, err
	}

	g := &Game{
		World:      w,
		Renderer:   world.NewRenderer(),
		Config:     cfg,
		configPath: configPath,
		keyboard:   kb,
		log:        log,
	}
	g.watch()
	return g, nil
}

// startWorld starts every object. A player whose controller could not be
// built is an error, not a frozen capsule.
func startWorld(w *world.World) error {
	w.Start()
	if m := w.Motor(); m != nil && m.Err() != nil {
		return fmt.Errorf("player: %w", m.Err())
	}
	return nil
}

// watch (re)starts the file watcher on the config and the current level.
func (g *Game) watch() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if g.configPath == "" {
		return
	}
	files := []string{g.configPath}
	if g.Config.Level != "" {
		files = append(files, g.Config.LevelPath())
	}
	w, err := config.NewWatcher(config.DefaultDebounce, files...)
	if err != nil {
		g.log.Warn("hot reload disabled", "err", err)
		return
	}
	g.watcher = w
}

func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	defer g.Close()

	rl.SetTargetFPS(win.FPS)
	rl.DisableCursor()
	initRayguiStyle(g.log)

	for !rl.WindowShouldClose() {
		g.pollReload()
		g.Update()
		g.Draw()
	}
}

// Close stops the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.handleChange(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("watch", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) handleChange(name string) {
	if sameFile(name, g.configPath) {
		prevLevel := g.Config.LevelPath()
		cfg, err := reloadConfig(g.World, g.keyboard, g.configPath, g.Config, g.log)
		if err != nil {
			g.setStatus("config not reloaded: " + err.Error())
			g.log.Error("config reload failed", "err", err)
			return
		}
		g.Config = cfg
		g.tuning.Sync(g.World.Motor())
		if cfg.LevelPath() != prevLevel {
			g.watch()
		}
		g.setStatus("config reloaded")
		return
	}
	if g.Config.Level != "" && sameFile(name, g.Config.LevelPath()) {
		if err := g.World.LoadLevel(g.Config.LevelPath()); err != nil {
			g.setStatus("level not reloaded: " + err.Error())
			g.log.Error("level reload failed", "err", err)
			return
		}
		g.World.Start()
		g.setStatus("level reloaded")
	}
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTime = rl.GetTime()
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	switch {
	case rl.IsKeyPressed(rl.KeyF1):
		g.togglePanel()
	case rl.IsKeyPressed(rl.KeyF2):
		g.Renderer.ShowBounds = !g.Renderer.ShowBounds
	case rl.IsKeyPressed(rl.KeyF3):
		g.Renderer.ShowProbe = !g.Renderer.ShowProbe
	case rl.IsKeyPressed(rl.KeyF5):
		g.saveLevel()
	}

	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// togglePanel shows the tuning panel and frees the mouse, or hides it and
// gives the mouse back to look.
func (g *Game) togglePanel() {
	g.showPanel = !g.showPanel
	look := engine.GetComponent[*components.Look](g.World.Player)
	if g.showPanel {
		rl.EnableCursor()
		if look != nil {
			look.Input = nil
		}
		g.tuning.Sync(g.World.Motor())
		return
	}
	rl.DisableCursor()
	if look != nil {
		look.Input = g.keyboard
	}
}

func (g *Game) saveLevel() {
	if g.Config.Level == "" {
		g.setStatus("no level file to save next to")
		return
	}
	path := strings.TrimSuffix(g.Config.LevelPath(), filepath.Ext(g.Config.Level)) + ".saved.yaml"
	if err := g.World.SaveLevel(path); err != nil {
		g.setStatus("save failed: " + err.Error())
		g.log.Error("save level", "err", err)
		return
	}
	g.setStatus("saved " + path)
	g.log.Info("level saved", "path", path)
}

func (g *Game) Draw() {
	cam := g.World.Camera()
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	drawStart := time.Now()
	g.Renderer.Draw(g.World, camera)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.drawHUD()
	if g.showPanel {
		if g.tuning.Draw(g.World.Motor(), g.Config.Locomotion) {
			if sp := g.World.Spawner(); sp != nil {
				sp.Reset(sp.SpawnPoint(), sp.FreezeOnSpawn)
			}
		}
	}
	rl.EndDrawing()
}
