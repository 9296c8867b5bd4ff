// Package config loads framework configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"famikit/game"
)

// Config holds every tunable the framework reads at startup.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
}

type DisplayConfig struct {
	WindowTitle  string  `yaml:"window_title"`
	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	TargetFPS    float64 `yaml:"target_fps"`
	Resizable    bool    `yaml:"resizable"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
}

type StorageConfig struct {
	ScoreDB string `yaml:"score_db"`
}

// Default returns the configuration used when no file is present: a 256x240
// canvas in a 2x window at 60Hz, 44.1kHz audio, scores next to the binary.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			WindowTitle:  "famikit",
			CanvasWidth:  256,
			CanvasHeight: 240,
			WindowWidth:  512,
			WindowHeight: 480,
			TargetFPS:    60,
		},
		Audio:   AudioConfig{SampleRate: 44100},
		Storage: StorageConfig{ScoreDB: "scores.db"},
	}
}

// LoadConfig reads filename, falling back to Default when the file does not
// exist. Fields absent from the file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	return config, nil
}

// MustLoadConfig is LoadConfig with a panic on failure.
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// GameConfig maps the display section onto the run-loop configuration.
func (c *Config) GameConfig() game.Config {
	return game.Config{
		Title:        c.Display.WindowTitle,
		CanvasWidth:  c.Display.CanvasWidth,
		CanvasHeight: c.Display.CanvasHeight,
		WindowWidth:  c.Display.WindowWidth,
		WindowHeight: c.Display.WindowHeight,
		TargetFPS:    c.Display.TargetFPS,
		Resizable:    c.Display.Resizable,
	}
}
