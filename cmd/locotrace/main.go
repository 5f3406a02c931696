// Command locotrace runs the locomotion controller without a window. It
// replays an input script against a level and prints one line per fixed
// step, for diffing tuning changes or checking a regression by eye.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"movelab/internal/config"
	"movelab/internal/input"
	"movelab/internal/locomotion"
	"movelab/internal/logger"
	"movelab/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Row is one traced fixed step.
type Row struct {
	Tick     uint64     `json:"tick"`
	Time     float64    `json:"time"`
	Position [3]float32 `json:"position"`
	Velocity [3]float32 `json:"velocity"`
	State    string     `json:"state"`
	Grounded bool       `json:"grounded"`
	Slope    string     `json:"slope"`
	Angle    float32    `json:"slope_angle"`
	Speed    float32    `json:"speed"`
	Desired  float32    `json:"desired_speed"`
	Jumps    int        `json:"jumps_left"`
	LastJump string     `json:"last_jump,omitempty"`
	Frozen   bool       `json:"frozen"`
}

func main() {
	var (
		configPath string
		levelPath  string
		scriptPath string
		ticks      int
		asJSON     bool
		noFreeze   bool
	)
	flag.StringVar(&configPath, "config", "assets/movelab.yaml", "config file; missing means built-in defaults")
	flag.StringVar(&levelPath, "level", "", "level file, overrides the config's level")
	flag.StringVar(&scriptPath, "script", "", "input script to replay")
	flag.IntVar(&ticks, "ticks", 0, "fixed steps to run; 0 runs the script's length, or 250 without one")
	flag.BoolVar(&asJSON, "json", false, "print JSON lines instead of a table")
	flag.BoolVar(&noFreeze, "no-freeze", false, "skip the control freeze after spawning")
	flag.Parse()

	if err := run(os.Stdout, configPath, levelPath, scriptPath, ticks, asJSON, noFreeze); err != nil {
		fmt.Fprintln(os.Stderr, "locotrace:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, configPath, levelPath, scriptPath string, ticks int, asJSON, noFreeze bool) error {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
		cfg.Level = ""
	} else if err != nil {
		return err
	}
	if levelPath != "" {
		if cfg.Level, err = filepath.Abs(levelPath); err != nil {
			return err
		}
	}
	if noFreeze {
		cfg.Spawn.Freeze = false
	}

	// Trace output goes to stdout; keep the log on stderr.
	cfg.Logging.Output = os.Stderr
	logger.Init(cfg.Logging)
	log := logger.L()

	var script *input.Script
	if scriptPath != "" {
		script, err = input.LoadScript(scriptPath)
	} else {
		script, err = input.ParseScript(nil)
	}
	if err != nil {
		return err
	}
	if ticks <= 0 {
		ticks = script.Len()
		if ticks == 0 {
			ticks = 250
		}
	}

	w := world.New(cfg, log)
	if cfg.Level != "" {
		if err := w.LoadLevel(cfg.LevelPath()); err != nil {
			return err
		}
	} else {
		w.AddGround(100)
	}
	w.SpawnPlayer(cfg, script)
	w.Start()
	if err := w.Motor().Err(); err != nil {
		return err
	}

	tw := newTraceWriter(out, asJSON)
	step := w.Clock.Step
	for range ticks {
		w.Scene.Update(step)
		w.FixedStep(step)
		if err := tw.write(sample(w)); err != nil {
			return err
		}
		script.Step()
	}
	return nil
}

func sample(w *world.World) Row {
	p := w.Player.Transform.Position
	snap := w.Motor().Controller().Snapshot()
	v := snap.Velocity
	r := Row{
		Tick:     snap.Tick,
		Time:     w.Scheduler.Now(),
		Position: vec(p),
		Velocity: vec(v),
		State:    snap.State.String(),
		Grounded: snap.Ground.Grounded,
		Slope:    snap.Slope.String(),
		Angle:    snap.Ground.SlopeAngle,
		Speed:    snap.Speed.Current,
		Desired:  snap.Speed.Desired,
		Jumps:    snap.Jump.Remaining,
		Frozen:   w.Spawner().Frozen(),
	}
	if snap.LastJump != locomotion.JumpNone {
		r.LastJump = snap.LastJump.String()
	}
	return r
}

func vec(v rl.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

type traceWriter struct {
	out    io.Writer
	enc    *json.Encoder
	header bool
}

func newTraceWriter(out io.Writer, asJSON bool) *traceWriter {
	tw := &traceWriter{out: out}
	if asJSON {
		tw.enc = json.NewEncoder(out)
	}
	return tw
}

func (tw *traceWriter) write(r Row) error {
	if tw.enc != nil {
		return tw.enc.Encode(r)
	}
	if !tw.header {
		tw.header = true
		if _, err := fmt.Fprintf(tw.out, "%5s %7s %24s %24s %-10s %-5s %-9s %6s %6s %6s %5s %s\n",
			"tick", "time", "position", "velocity", "state", "gnd", "slope", "angle", "speed", "want", "jumps", "jump"); err != nil {
			return err
		}
	}
	frozen := ""
	if r.Frozen {
		frozen = " frozen"
	}
	_, err := fmt.Fprintf(tw.out, "%5d %7.3f %24s %24s %-10s %-5v %-9s %6.1f %6.2f %6.2f %5d %s%s\n",
		r.Tick, r.Time, fmtVec(r.Position), fmtVec(r.Velocity), r.State, r.Grounded, r.Slope,
		r.Angle, r.Speed, r.Desired, r.Jumps, r.LastJump, frozen)
	return err
}

func fmtVec(v [3]float32) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
