package game

import (
	"fmt"
	"log/slog"

	"movelab/internal/config"
	"movelab/internal/input"
	"movelab/internal/logger"
	"movelab/internal/world"
)

// reloadConfig re-reads the config at path and pushes everything that can
// change at runtime into w. On error w keeps running with prev.
func reloadConfig(w *world.World, kb *input.Keyboard, path string, prev config.Config, log *slog.Logger) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return prev, err
	}

	if cfg.LevelPath() != prev.LevelPath() {
		if err := w.LoadLevel(cfg.LevelPath()); err != nil {
			return prev, err
		}
		w.Start()
	}
	if err := w.ApplyConfig(cfg); err != nil {
		return prev, fmt.Errorf("apply config: %w", err)
	}
	if kb != nil {
		if err := kb.Rebind(cfg.Input); err != nil {
			return prev, err
		}
	}
	logger.SetLevel(cfg.Logging.Level)

	if restart := restartOnly(prev, cfg); len(restart) > 0 {
		log.Warn("settings need a restart", "changed", restart)
	}
	log.Info("config reloaded", "path", path)
	return cfg, nil
}

// restartOnly lists changed settings a running world cannot pick up.
func restartOnly(prev, next config.Config) []string {
	var changed []string
	if prev.Physics.FixedStep != next.Physics.FixedStep {
		changed = append(changed, "physics.fixed_step")
	}
	if prev.Physics.Gravity != next.Physics.Gravity {
		changed = append(changed, "physics.gravity")
	}
	if prev.Window != next.Window {
		changed = append(changed, "window")
	}
	if prev.Logging.Format != next.Logging.Format {
		changed = append(changed, "logging.format")
	}
	return changed
}
