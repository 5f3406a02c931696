package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"movelab/internal/config"
	"movelab/internal/game"
	"movelab/internal/logger"
)

func main() {
	var (
		configPath string
		levelPath  string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "assets/movelab.yaml", "config file; missing means built-in defaults")
	flag.StringVar(&levelPath, "level", "", "level file, overrides the config's level")
	flag.StringVar(&logLevel, "log", "", "log level, overrides the config's")
	flag.Parse()

	// Deployed builds run from their own directory. "go run" builds into a
	// temp go-build directory, so stay put there.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(configPath) {
			if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
				_ = os.Chdir(execDir)
			}
		}
	}

	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
		cfg.Level = ""
		configPath = ""
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if levelPath != "" {
		abs, err := filepath.Abs(levelPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.Level = abs
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger.Init(cfg.Logging)
	log := logger.L()
	if configPath == "" {
		log.Warn("no config file, using defaults", "path", flag.Lookup("config").Value.String())
	}

	g, err := game.New(configPath, cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	g.Run()
}
