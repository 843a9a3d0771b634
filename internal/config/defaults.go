package config

import (
	_ "embed"
)

//go:embed defaults/bingo.yaml
var defaultBingoYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/bingo.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Celebration: CelebrationConfig{
			Threshold: CelebrationThreshold,
		},
		Confetti: ConfettiConfig{
			Count:        140,
			DurationMS:   3800,
			Gravity:      0.0009,
			Friction:     0.994,
			Amplify:      8,
			MaxFrameMS:   32,
			FrameRefMS:   16,
			OriginX:      0.5,
			OriginY:      0.4,
			MinSpeed:     0.08,
			MaxSpeed:     0.24,
			MinScale:     0.6,
			MaxScale:     1.1,
			Lift:         0.35,
			Spin:         0.003,
			MinSize:      6,
			MaxSize:      14,
			CircleChance: 0.3,
			OpacityFloor: 0.1,
			CellWidth:    8,
			CellHeight:   16,
			Palette:      []string{"red", "amber", "emerald", "blue", "violet", "pink"},
		},
		Theme: ThemeConfig{
			Columns: []string{"pink", "orange", "amber", "emerald", "violet"},
			Line:    "emerald",
			Button:  "amber",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBingoYAML
}
