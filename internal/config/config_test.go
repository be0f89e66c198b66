package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Simulation.Frames != 8 {
		t.Errorf("expected 8 frames, got %d", cfg.Simulation.Frames)
	}
	if cfg.Simulation.Step != 0.25 {
		t.Errorf("expected step 0.25, got %f", cfg.Simulation.Step)
	}
	if cfg.Simulation.Workers != 0 {
		t.Errorf("expected workers 0 (GOMAXPROCS), got %d", cfg.Simulation.Workers)
	}
	if cfg.Simulation.DropFrame != -1 {
		t.Errorf("expected no drop frame, got %d", cfg.Simulation.DropFrame)
	}

	if cfg.Output.Format != FormatText {
		t.Errorf("expected text output, got %s", cfg.Output.Format)
	}
	if !cfg.Output.Vertices {
		t.Error("expected vertices to be printed by default")
	}
	if cfg.Output.Wireframe {
		t.Error("expected wireframe to be off by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "skinview.yaml")

	yamlContent := `
simulation:
  frames: 100
  start: 1.5
  step: 0.016
  workers: 4
  min_partition: 256
  drop_joint: joint1
  drop_frame: 3

output:
  format: yaml
  vertices: false
  wireframe: true
  cube_size: 0.2

logging:
  level: "debug"
  log_file: "skinview.log"
  json: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Simulation.Frames != 100 {
		t.Errorf("expected 100 frames, got %d", cfg.Simulation.Frames)
	}
	if cfg.Simulation.Start != 1.5 {
		t.Errorf("expected start 1.5, got %f", cfg.Simulation.Start)
	}
	if cfg.Simulation.Step != 0.016 {
		t.Errorf("expected step 0.016, got %f", cfg.Simulation.Step)
	}
	if cfg.Simulation.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Simulation.Workers)
	}
	if cfg.Simulation.MinPartition != 256 {
		t.Errorf("expected min partition 256, got %d", cfg.Simulation.MinPartition)
	}
	if cfg.Simulation.DropJoint != "joint1" || cfg.Simulation.DropFrame != 3 {
		t.Errorf("expected drop joint1 at frame 3, got %s at %d", cfg.Simulation.DropJoint, cfg.Simulation.DropFrame)
	}

	if cfg.Output.Format != FormatYAML {
		t.Errorf("expected yaml output, got %s", cfg.Output.Format)
	}
	if cfg.Output.Vertices {
		t.Error("expected vertices to be false")
	}
	if !cfg.Output.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Output.CubeSize != 0.2 {
		t.Errorf("expected cube size 0.2, got %f", cfg.Output.CubeSize)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "skinview.log" {
		t.Errorf("expected log file 'skinview.log', got %s", cfg.Logging.LogFile)
	}
	if !cfg.Logging.JSON {
		t.Error("expected json logging")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
simulation:
  frames: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero frames", func(c *Config) { c.Simulation.Frames = 0 }, true},
		{"negative frames", func(c *Config) { c.Simulation.Frames = -1 }, false},
		{"negative step", func(c *Config) { c.Simulation.Step = -0.1 }, false},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "skinview.yaml")

	cfg := Default()
	cfg.Simulation.Frames = 42
	cfg.Output.Format = FormatYAML
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config differs:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Keep the user's real config dir out of the search.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "skinview.yaml")
	if err := os.WriteFile(configPath, []byte("simulation:\n  frames: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find skinview.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "frames and step flags",
			setup: func() {
				*flagFrames = 30
				*flagStep = 0.5
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Simulation.Frames != 30 {
					t.Errorf("expected 30 frames, got %d", cfg.Simulation.Frames)
				}
				if cfg.Simulation.Step != 0.5 {
					t.Errorf("expected step 0.5, got %f", cfg.Simulation.Step)
				}
			},
			teardown: func() {
				*flagFrames = 0
				*flagStep = 0
			},
		},
		{
			name:  "workers flag",
			setup: func() { *flagWorkers = 3 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Simulation.Workers != 3 {
					t.Errorf("expected 3 workers, got %d", cfg.Simulation.Workers)
				}
			},
			teardown: func() { *flagWorkers = 0 },
		},
		{
			name:  "format flag",
			setup: func() { *flagFormat = FormatYAML },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Format != FormatYAML {
					t.Errorf("expected yaml format, got %s", cfg.Output.Format)
				}
			},
			teardown: func() { *flagFormat = "" },
		},
		{
			name: "drop joint flags",
			setup: func() {
				*flagDropJoint = "joint1"
				*flagDropFrame = 2
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Simulation.DropJoint != "joint1" {
					t.Errorf("expected drop joint joint1, got %s", cfg.Simulation.DropJoint)
				}
				if cfg.Simulation.DropFrame != 2 {
					t.Errorf("expected drop frame 2, got %d", cfg.Simulation.DropFrame)
				}
			},
			teardown: func() {
				*flagDropJoint = ""
				*flagDropFrame = -1
			},
		},
		{
			name:  "wireframe flag",
			setup: func() { *flagWireframe = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Output.Wireframe {
					t.Error("expected wireframe to be enabled")
				}
			},
			teardown: func() { *flagWireframe = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "skinview.yaml")

	yamlContent := `
simulation:
  frames: 16
  step: 0.1
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFrames = 64
	defer func() {
		*flagConfig = ""
		*flagFrames = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Frames should come from the flag, step from the file.
	if cfg.Simulation.Frames != 64 {
		t.Errorf("expected 64 frames from flag, got %d", cfg.Simulation.Frames)
	}
	if cfg.Simulation.Step != 0.1 {
		t.Errorf("expected step 0.1 from file, got %f", cfg.Simulation.Step)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "skinview.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject unknown output format")
	}
}
