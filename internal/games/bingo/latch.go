package bingo

import "github.com/vovakirdan/tui-bingo/internal/config"

// Latch is the celebration state for one board epoch.
type Latch int

const (
	Armed Latch = iota // Celebration has not fired since the last shuffle
	Fired              // Celebration fired; only a shuffle re-arms it
)

// String returns the latch state name.
func (l Latch) String() string {
	if l == Fired {
		return "FIRED"
	}
	return "ARMED"
}

// Celebrate moves an armed latch to fired once the completed line count
// reaches threshold and reports whether it fired. A non-positive threshold
// falls back to config.CelebrationThreshold.
func Celebrate(s State, threshold int) (State, bool) {
	if threshold <= 0 {
		threshold = config.CelebrationThreshold
	}
	if s.Latch == Fired {
		return s, false
	}
	if Detect(s.Selected).Lines() < threshold {
		return s, false
	}
	s.Latch = Fired
	return s, true
}
