// Package config loads the single YAML file that configures a movelab run
// and watches it for edits.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"movelab/internal/input"
	"movelab/internal/locomotion"
	"movelab/internal/logger"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging    logger.Config     `yaml:"logging"`
	Window     WindowConfig      `yaml:"window"`
	Physics    PhysicsConfig     `yaml:"physics"`
	Locomotion locomotion.Config `yaml:"locomotion"`
	Input      input.Bindings    `yaml:"input"`
	Spawn      SpawnConfig       `yaml:"spawn"`
	Level      string            `yaml:"level"` // relative to the config file

	dir string
}

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
}

type PhysicsConfig struct {
	FixedStep  float32 `yaml:"fixed_step"`
	Gravity    float32 `yaml:"gravity"` // along Y
	Iterations int     `yaml:"iterations"`
	MaxSteps   int     `yaml:"max_steps_per_frame"`
}

type SpawnConfig struct {
	Position     []float32 `yaml:"position"`
	HeightOffset float32   `yaml:"height_offset"`
	Freeze       bool      `yaml:"freeze"`
	Delay        float32   `yaml:"delay"`
	KillPlane    bool      `yaml:"kill_plane"`
	KillY        float32   `yaml:"kill_y"`
}

func Default() Config {
	return Config{
		Logging: logger.Config{Level: "info", Format: "console"},
		Window:  WindowConfig{Width: 1280, Height: 720, Title: "movelab", FPS: 144},
		Physics: PhysicsConfig{
			FixedStep:  0.02,
			Gravity:    -9.81,
			Iterations: 4,
			MaxSteps:   8,
		},
		Locomotion: locomotion.Default(),
		Input:      input.DefaultBindings(),
		Spawn: SpawnConfig{
			Position:     []float32{0, 0, 0},
			HeightOffset: 1.5,
			Freeze:       true,
			Delay:        0.5,
			KillPlane:    true,
			KillY:        -30,
		},
		Level: "levels/playground.yaml",
	}
}

// Load reads path on top of Default and validates the result. Unknown keys
// are errors so a misspelt tunable does not silently keep its default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	if c.Physics.FixedStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.fixed_step must be positive, got %v", c.Physics.FixedStep))
	}
	if c.Physics.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must point down (negative), got %v", c.Physics.Gravity))
	}
	if c.Physics.Iterations < 1 {
		errs = append(errs, fmt.Errorf("physics.iterations must be at least 1, got %d", c.Physics.Iterations))
	}
	if len(c.Spawn.Position) != 3 {
		errs = append(errs, fmt.Errorf("spawn.position needs 3 values, got %d", len(c.Spawn.Position)))
	}
	if c.Spawn.Delay < 0 {
		errs = append(errs, fmt.Errorf("spawn.delay must not be negative, got %v", c.Spawn.Delay))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if err := c.Locomotion.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("locomotion: %w", err))
	}
	if _, err := c.Input.Resolve(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Path resolves p against the directory the config was loaded from.
func (c Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// LevelPath is Level resolved against the config file's directory.
func (c Config) LevelPath() string {
	return c.Path(c.Level)
}
