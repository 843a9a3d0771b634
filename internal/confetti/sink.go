// Package confetti implements the celebration particle burst.
//
// The effect is backend independent: it draws through a Surface/Layer pair
// and advances through a Scheduler, so the integrator, fade curve and
// lifecycle can be driven with synthetic timestamps in tests.
package confetti

import (
	"time"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Shape is the visual form of a particle.
type Shape int

const (
	ShapeRect   Shape = iota // Rounded rectangle
	ShapeCircle              // Disc
)

// Sprite is the visual state of one particle handed to a Layer.
// Coordinates are in the surface's virtual pixels.
type Sprite struct {
	X, Y     float64
	Rotation float64 // Radians
	Opacity  float64 // 0..1
	Size     float64
	Shape    Shape
	Color    core.Color
}

// SpriteID identifies a sprite within its layer.
type SpriteID int

// Layer is a container of sprites. Each layer is owned by exactly one
// effect; Close removes the container and everything left in it.
type Layer interface {
	Create(s Sprite) SpriteID
	Update(id SpriteID, s Sprite)
	Destroy(id SpriteID)
	Close()
}

// Surface is a display that can host particle layers above its content.
type Surface interface {
	// Viewport returns the drawable size in virtual pixels.
	Viewport() (width, height float64)
	// OpenLayer creates a new topmost layer.
	OpenLayer() Layer
}

// FrameFunc runs once per animation frame with the frame timestamp.
type FrameFunc func(now time.Time)

// Scheduler runs a callback before the next repaint. A callback that wants
// another frame must schedule itself again.
type Scheduler interface {
	ScheduleFrame(fn FrameFunc)
}
