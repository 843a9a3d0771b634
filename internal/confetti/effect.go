package confetti

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Particle is one piece of confetti.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Spin     float64
	Size     float64
	Shape    Shape
	Color    core.Color

	id SpriteID
}

// Effect is a running burst. It owns one layer on the surface and tears it
// down when the duration has elapsed or Close is called.
type Effect struct {
	params    Params
	layer     Layer
	sched     Scheduler
	particles []Particle

	start   time.Time
	last    time.Time
	opacity float64
	done    bool
}

// Spawn creates a burst of p.Count particles at the origin and schedules its
// first frame.
func Spawn(surface Surface, sched Scheduler, p Params, rng *rand.Rand, now time.Time) *Effect {
	if len(p.Palette) == 0 {
		p.Palette = []core.Color{core.ColorWhite}
	}

	w, h := surface.Viewport()
	originX := w * p.OriginX
	originY := h * p.OriginY

	e := &Effect{
		params:    p,
		layer:     surface.OpenLayer(),
		sched:     sched,
		particles: make([]Particle, 0, max(p.Count, 0)),
		start:     now,
		last:      now,
		opacity:   1,
	}

	for i := 0; i < p.Count; i++ {
		pt := newParticle(p, rng, originX, originY)
		pt.id = e.layer.Create(pt.sprite(1))
		e.particles = append(e.particles, pt)
	}

	sched.ScheduleFrame(e.Frame)
	return e
}

// newParticle draws a particle's launch parameters.
func newParticle(p Params, rng *rand.Rand, x, y float64) Particle {
	angle := rng.Float64() * 2 * math.Pi
	speed := between(rng, p.MinSpeed, p.MaxSpeed)
	vx := math.Cos(angle) * speed * between(rng, p.MinScale, p.MaxScale)
	vy := math.Sin(angle)*speed*between(rng, p.MinScale, p.MaxScale) - p.Lift

	shape := ShapeRect
	if rng.Float64() < p.CircleChance {
		shape = ShapeCircle
	}

	return Particle{
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Rotation: rng.Float64() * math.Pi,
		Spin:     between(rng, -p.Spin, p.Spin),
		Size:     between(rng, p.MinSize, p.MaxSize),
		Shape:    shape,
		Color:    p.Palette[rng.Intn(len(p.Palette))],
	}
}

// between returns a uniform value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Frame advances every particle by the time since the previous frame and
// reschedules itself until the duration has elapsed.
func (e *Effect) Frame(now time.Time) {
	if e.done {
		return
	}

	elapsed := now.Sub(e.start)
	dt := min(now.Sub(e.last), e.params.MaxFrame)
	if dt < 0 {
		dt = 0
	}
	e.last = now

	dtMS := float64(dt) / float64(time.Millisecond)
	e.opacity = Opacity(elapsed, e.params.Duration, e.params.OpacityFloor)

	for i := range e.particles {
		p := &e.particles[i]
		step(p, dtMS, e.params)
		e.layer.Update(p.id, p.sprite(e.opacity))
	}

	if elapsed < e.params.Duration {
		e.sched.ScheduleFrame(e.Frame)
		return
	}
	e.teardown()
}

// step integrates one particle with explicit Euler. Friction is scaled so
// that a frame of FrameRef length damps by exactly Friction.
func step(p *Particle, dtMS float64, params Params) {
	ref := float64(params.FrameRef) / float64(time.Millisecond)
	damp := params.Friction
	if ref > 0 {
		damp = math.Pow(params.Friction, dtMS/ref)
	}

	p.VX *= damp
	p.VY = p.VY*damp + params.Gravity*dtMS
	p.X += p.VX * dtMS * params.Amplify
	p.Y += p.VY * dtMS * params.Amplify
	p.Rotation += p.Spin * dtMS * params.Amplify
}

// Opacity is the fade curve: linear over the lifetime, lifted by floor so
// particles stay visible until the hard end, and capped at fully opaque.
func Opacity(elapsed, duration time.Duration, floor float64) float64 {
	life := 0.0
	if duration > 0 {
		life = math.Max(0, 1-float64(elapsed)/float64(duration))
	}
	return math.Min(1, life+floor)
}

// sprite converts a particle to its visual state.
func (p Particle) sprite(opacity float64) Sprite {
	return Sprite{
		X:        p.X,
		Y:        p.Y,
		Rotation: p.Rotation,
		Opacity:  opacity,
		Size:     p.Size,
		Shape:    p.Shape,
		Color:    p.Color,
	}
}

// teardown destroys every sprite and closes the layer.
func (e *Effect) teardown() {
	if e.done {
		return
	}
	e.done = true
	for _, p := range e.particles {
		e.layer.Destroy(p.id)
	}
	e.particles = nil
	e.layer.Close()
}

// Close stops the effect early and frees its layer. Safe to call more than
// once and after the effect has finished; pending frames become no-ops.
func (e *Effect) Close() {
	e.teardown()
}

// Done reports whether the effect has torn down.
func (e *Effect) Done() bool {
	return e.done
}

// Live returns the number of particles still attached to the layer.
func (e *Effect) Live() int {
	return len(e.particles)
}

// Particles returns a copy of the current particles.
func (e *Effect) Particles() []Particle {
	return append([]Particle(nil), e.particles...)
}

// Opacity returns the opacity applied on the last frame.
func (e *Effect) Opacity() float64 {
	return e.opacity
}
