package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagFrames    = flag.Int("frames", 0, "Number of frames to evaluate")
	flagStep      = flag.Float64("step", 0, "Seconds between frames")
	flagWorkers   = flag.Int("workers", 0, "Goroutines per mesh")
	flagFormat    = flag.String("format", "", "Output format (text or yaml)")
	flagDropJoint = flag.String("drop-joint", "", "Withhold this joint's world transform on --drop-frame")
	flagDropFrame = flag.Int("drop-frame", -1, "Frame on which --drop-joint is withheld")
	flagWireframe = flag.Bool("wireframe", false, "Print AABB wireframe vertices")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFrames > 0 {
		cfg.Simulation.Frames = *flagFrames
	}
	if *flagStep > 0 {
		cfg.Simulation.Step = *flagStep
	}
	if *flagWorkers > 0 {
		cfg.Simulation.Workers = *flagWorkers
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagDropJoint != "" {
		cfg.Simulation.DropJoint = *flagDropJoint
	}
	if *flagDropFrame >= 0 {
		cfg.Simulation.DropFrame = *flagDropFrame
	}
	if *flagWireframe {
		cfg.Output.Wireframe = true
	}
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}
