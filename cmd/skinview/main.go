// Package main is the entry point for skinview, which runs the SimpleSkin
// scene for a number of frames and prints skinned vertices and bounding boxes.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/skinview/internal/config"
	"github.com/Faultbox/skinview/internal/engine/scene"
	"github.com/Faultbox/skinview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	command := "run"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "run":
		err = run(cfg)
	case "write-config":
		err = writeConfig(cfg, args[1:])
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`skinview - linear blend skinning preview

Usage:
  skinview [flags] [command]

Commands:
  run                    Evaluate the SimpleSkin scene (default)
  write-config [path]    Write the effective config as YAML
  help                   Show this message

Examples:
  skinview --frames 4 --step 0.5
  skinview --format yaml --wireframe
  skinview --drop-joint joint1 --drop-frame 2
  skinview write-config ./skinview.yaml`)
}

func initLogger(cfg config.LoggingConfig) error {
	fileCfg := logger.FileConfig{}
	if cfg.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.LogFile)
		fileCfg.JSON = cfg.JSON
	}
	return logger.InitWithFileConfig(cfg.Level, fileCfg, true)
}

func writeConfig(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return nil
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	logger.Info("config saved", zap.String("path", args[0]))
	return nil
}

func run(cfg *config.Config) error {
	s, err := scene.NewSimpleSkin(scene.Config{
		Workers:      cfg.Simulation.Workers,
		MinPartition: cfg.Simulation.MinPartition,
	})
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	drop, err := dropJoint(s, cfg.Simulation)
	if err != nil {
		return err
	}

	logger.Info("running simple skin",
		zap.Int("frames", cfg.Simulation.Frames),
		zap.Float64("step", cfg.Simulation.Step),
		zap.String("format", cfg.Output.Format))

	out := newPrinter(os.Stdout, cfg.Output)
	for i := 0; i < cfg.Simulation.Frames; i++ {
		t := cfg.Simulation.Start + float64(i)*cfg.Simulation.Step

		s.Animate(t)
		if drop != nil && i == cfg.Simulation.DropFrame {
			drop()
		}
		if err := out.Print(s.Evaluate()); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return out.Close()
}

// dropJoint returns a hook that withholds the configured joint's world
// transform, or nil when nothing is to be dropped.
func dropJoint(s *scene.Scene, sim config.SimulationConfig) (func(), error) {
	if sim.DropJoint == "" || sim.DropFrame < 0 {
		return nil, nil
	}
	j, ok := s.Hierarchy().Lookup(sim.DropJoint)
	if !ok {
		return nil, fmt.Errorf("unknown joint %q", sim.DropJoint)
	}
	return func() {
		logger.Debug("withholding joint transform",
			zap.String("joint", sim.DropJoint),
			zap.Int("frame", sim.DropFrame))
		s.Pose().Invalidate(j)
	}, nil
}
