// Package config handles skinview configuration loading and management.
package config

// Config holds all skinview settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig controls which frames are evaluated and how.
type SimulationConfig struct {
	Frames       int     `yaml:"frames"`        // Number of ticks to run
	Start        float64 `yaml:"start"`         // Time of the first tick, seconds
	Step         float64 `yaml:"step"`          // Seconds between ticks
	Workers      int     `yaml:"workers"`       // Goroutines per mesh, 0 = GOMAXPROCS
	MinPartition int     `yaml:"min_partition"` // Smallest vertex range per goroutine
	DropJoint    string  `yaml:"drop_joint"`    // Joint whose transform is withheld on DropFrame
	DropFrame    int     `yaml:"drop_frame"`
}

// OutputConfig controls what is printed per frame.
type OutputConfig struct {
	Format    string  `yaml:"format"` // "text" or "yaml"
	Vertices  bool    `yaml:"vertices"`
	Wireframe bool    `yaml:"wireframe"`
	CubeSize  float32 `yaml:"cube_size"` // Edge length of per-vertex debug cubes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Frames:       8,
			Start:        0,
			Step:         0.25,
			Workers:      0,
			MinPartition: 1024,
			DropJoint:    "",
			DropFrame:    -1,
		},
		Output: OutputConfig{
			Format:    FormatText,
			Vertices:  true,
			Wireframe: false,
			CubeSize:  0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
