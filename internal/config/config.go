// Package config holds the engine's tuning constants. The defaults are
// heuristics against visible camera jitter, not derived values; a YAML
// file can override any of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config tunes the scheduling and hover heuristics.
type Config struct {
	// MaxZoom caps camera magnification; must be > 1.
	MaxZoom float64 `yaml:"max_zoom"`
	// Padding is the content margin fraction, in [0, 0.5).
	Padding float64 `yaml:"padding"`
	// TransitionMs is the length of every camera move.
	TransitionMs int64 `yaml:"transition_ms"`
	// TailBufferMs keeps the camera from reacting to events at the
	// very end of the output.
	TailBufferMs int64 `yaml:"tail_buffer_ms"`
	// HoverMinMs is the shortest cursor dwell that counts as a hover.
	HoverMinMs int64 `yaml:"hover_min_ms"`
	// HoverBoxFraction of the larger source dimension bounds cursor
	// wander within one dwell.
	HoverBoxFraction float64 `yaml:"hover_box_fraction"`
	// SizeEpsilon is the viewport-size change fraction below which no
	// motion is emitted.
	SizeEpsilon float64 `yaml:"size_epsilon"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		MaxZoom:          2.0,
		Padding:          0.0,
		TransitionMs:     500,
		TailBufferMs:     3000,
		HoverMinMs:       1000,
		HoverBoxFraction: 0.1,
		SizeEpsilon:      0.25,
	}
}

// Validate checks the ranges each knob allows.
func (c Config) Validate() error {
	if c.MaxZoom <= 1 {
		return fmt.Errorf("max_zoom must be greater than 1, got %g", c.MaxZoom)
	}
	if c.Padding < 0 || c.Padding >= 0.5 {
		return fmt.Errorf("padding must be in [0, 0.5), got %g", c.Padding)
	}
	if c.TransitionMs <= 0 {
		return fmt.Errorf("transition_ms must be positive, got %d", c.TransitionMs)
	}
	if c.TailBufferMs < 0 {
		return fmt.Errorf("tail_buffer_ms must not be negative, got %d", c.TailBufferMs)
	}
	if c.HoverMinMs <= 0 {
		return fmt.Errorf("hover_min_ms must be positive, got %d", c.HoverMinMs)
	}
	if c.HoverBoxFraction <= 0 || c.HoverBoxFraction > 1 {
		return fmt.Errorf("hover_box_fraction must be in (0, 1], got %g", c.HoverBoxFraction)
	}
	if c.SizeEpsilon < 0 {
		return fmt.Errorf("size_epsilon must not be negative, got %g", c.SizeEpsilon)
	}
	return nil
}

// LoadFile reads a YAML config, applying defaults for absent fields.
// A missing file is not an error: the defaults apply unchanged.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteExample writes the default tuning as a commented starting point.
func WriteExample(path string) error {
	example := `# autocam engine tuning
max_zoom: 2.0          # camera magnification cap
padding: 0.0           # content margin fraction of the canvas
transition_ms: 500     # camera move duration
tail_buffer_ms: 3000   # quiet period before end of output
hover_min_ms: 1000     # minimum cursor dwell for a hover
hover_box_fraction: 0.1
size_epsilon: 0.25     # ignore viewport size changes below this fraction
`
	return os.WriteFile(path, []byte(example), 0644)
}
