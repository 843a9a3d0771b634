package confetti

import (
	"time"

	"github.com/vovakirdan/tui-bingo/internal/config"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Params tunes a burst. Velocities are in virtual pixels per millisecond.
type Params struct {
	Count    int
	Duration time.Duration
	MaxFrame time.Duration // Cap on a single frame's delta time
	FrameRef time.Duration // Frame length at which Friction applies exactly once

	Gravity  float64 // Added to vy per millisecond
	Friction float64 // Velocity damping per reference frame
	Amplify  float64 // Scales integrated motion and spin

	OriginX, OriginY float64 // Burst origin as fractions of the viewport

	MinSpeed, MaxSpeed float64
	MinScale, MaxScale float64 // Independent per-axis velocity scale
	Lift               float64 // Upward bias subtracted from vy
	Spin               float64 // Angular velocity drawn from [-Spin, Spin]
	MinSize, MaxSize   float64
	CircleChance       float64
	OpacityFloor       float64

	Palette []core.Color
}

// DefaultParams returns the standard burst: 140 particles over 3.8 seconds.
func DefaultParams() Params {
	return ParamsFrom(config.Default().Confetti)
}

// ParamsFrom converts the YAML confetti section.
func ParamsFrom(cfg config.ConfettiConfig) Params {
	palette := config.Colors(cfg.Palette)
	if len(palette) == 0 {
		palette = []core.Color{core.ColorWhite}
	}
	return Params{
		Count:        cfg.Count,
		Duration:     time.Duration(cfg.DurationMS) * time.Millisecond,
		MaxFrame:     time.Duration(cfg.MaxFrameMS) * time.Millisecond,
		FrameRef:     time.Duration(cfg.FrameRefMS * float64(time.Millisecond)),
		Gravity:      cfg.Gravity,
		Friction:     cfg.Friction,
		Amplify:      cfg.Amplify,
		OriginX:      cfg.OriginX,
		OriginY:      cfg.OriginY,
		MinSpeed:     cfg.MinSpeed,
		MaxSpeed:     cfg.MaxSpeed,
		MinScale:     cfg.MinScale,
		MaxScale:     cfg.MaxScale,
		Lift:         cfg.Lift,
		Spin:         cfg.Spin,
		MinSize:      cfg.MinSize,
		MaxSize:      cfg.MaxSize,
		CircleChance: cfg.CircleChance,
		OpacityFloor: cfg.OpacityFloor,
		Palette:      palette,
	}
}
