// Package config provides YAML-based configuration for the bingo board:
// the celebration threshold, confetti tuning and the color theme.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

// CelebrationThreshold is the number of completed lines (out of 10) that
// fires the confetti. Five is a fixed design constant, not derived from
// board geometry.
const CelebrationThreshold = 5

// MaxLines is the number of rows plus columns on a 5x5 board.
const MaxLines = 10

// Config contains all configuration for the bingo board.
type Config struct {
	Celebration CelebrationConfig `yaml:"celebration"`
	Confetti    ConfettiConfig    `yaml:"confetti"`
	Theme       ThemeConfig       `yaml:"theme"`
}

// CelebrationConfig controls when the celebration fires.
type CelebrationConfig struct {
	Threshold int `yaml:"threshold"`
}

// ConfettiConfig tunes the particle burst. Velocities are in virtual pixels
// per millisecond; the simulation is mapped onto terminal cells using
// CellWidth and CellHeight.
type ConfettiConfig struct {
	Count        int      `yaml:"count"`
	DurationMS   int      `yaml:"duration_ms"`
	Gravity      float64  `yaml:"gravity"`
	Friction     float64  `yaml:"friction"`
	Amplify      float64  `yaml:"amplify"`
	MaxFrameMS   int      `yaml:"max_frame_ms"`
	FrameRefMS   float64  `yaml:"frame_ref_ms"`
	OriginX      float64  `yaml:"origin_x"`
	OriginY      float64  `yaml:"origin_y"`
	MinSpeed     float64  `yaml:"min_speed"`
	MaxSpeed     float64  `yaml:"max_speed"`
	MinScale     float64  `yaml:"min_scale"`
	MaxScale     float64  `yaml:"max_scale"`
	Lift         float64  `yaml:"lift"`
	Spin         float64  `yaml:"spin"`
	MinSize      float64  `yaml:"min_size"`
	MaxSize      float64  `yaml:"max_size"`
	CircleChance float64  `yaml:"circle_chance"`
	OpacityFloor float64  `yaml:"opacity_floor"`
	CellWidth    float64  `yaml:"cell_width"`
	CellHeight   float64  `yaml:"cell_height"`
	Palette      []string `yaml:"palette"`
}

// ThemeConfig names the colors used by the board.
type ThemeConfig struct {
	Columns []string `yaml:"columns"` // One color per B I N G O column
	Line    string   `yaml:"line"`    // Completed line markers and struck letters
	Button  string   `yaml:"button"`  // Randomize button
}

// Validate checks the configuration for values the board cannot work with.
func (c Config) Validate() error {
	var errs []error

	if c.Celebration.Threshold < 1 || c.Celebration.Threshold > MaxLines {
		errs = append(errs, fmt.Errorf("celebration.threshold must be in 1..%d, got %d", MaxLines, c.Celebration.Threshold))
	}

	cf := c.Confetti
	if cf.Count <= 0 {
		errs = append(errs, fmt.Errorf("confetti.count must be positive, got %d", cf.Count))
	}
	if cf.DurationMS <= 0 {
		errs = append(errs, fmt.Errorf("confetti.duration_ms must be positive, got %d", cf.DurationMS))
	}
	if cf.MaxFrameMS <= 0 {
		errs = append(errs, fmt.Errorf("confetti.max_frame_ms must be positive, got %d", cf.MaxFrameMS))
	}
	if cf.FrameRefMS <= 0 {
		errs = append(errs, fmt.Errorf("confetti.frame_ref_ms must be positive, got %g", cf.FrameRefMS))
	}
	if cf.Friction <= 0 || cf.Friction > 1 {
		errs = append(errs, fmt.Errorf("confetti.friction must be in (0, 1], got %g", cf.Friction))
	}
	if cf.MinSpeed > cf.MaxSpeed || cf.MinScale > cf.MaxScale || cf.MinSize > cf.MaxSize {
		errs = append(errs, errors.New("confetti: min values must not exceed max values"))
	}
	if cf.CellWidth <= 0 || cf.CellHeight <= 0 {
		errs = append(errs, errors.New("confetti: cell_width and cell_height must be positive"))
	}
	if len(cf.Palette) == 0 {
		errs = append(errs, errors.New("confetti.palette must not be empty"))
	}
	for _, name := range cf.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("confetti.palette: unknown color %q", name))
		}
	}

	if len(c.Theme.Columns) != 5 {
		errs = append(errs, fmt.Errorf("theme.columns must name 5 colors, got %d", len(c.Theme.Columns)))
	}
	for _, name := range append(append([]string{}, c.Theme.Columns...), c.Theme.Line, c.Theme.Button) {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("theme: unknown color %q", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Colors resolves a list of color names, skipping unknown entries.
func Colors(names []string) []core.Color {
	out := make([]core.Color, 0, len(names))
	for _, name := range names {
		if c, ok := core.ParseColor(name); ok {
			out = append(out, c)
		}
	}
	return out
}
