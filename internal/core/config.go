package core

// RuntimeConfig contains configuration passed to the board at initialization.
// The board uses it to lay itself out and to seed the shuffle RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation frames per second (default 60)
	Seed     int64 // RNG seed for reproducible shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the board for the platform layer.
type GameState struct {
	Lines      int  // Completed rows plus columns (0..10)
	Marks      int  // Toggles made in the current epoch
	Epoch      int  // Number of shuffles since start
	Celebrated bool // Whether the celebration already fired this epoch
}

// Event is something the board reports back to the platform after a step.
type Event int

const (
	EventNone      Event = iota
	EventShuffled        // The board was reshuffled and the latch re-armed
	EventCelebrate       // The win threshold was reached for the first time this epoch
)

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has returns true if the given event occurred during the step.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
