package scene

import (
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/iburimskiy/globe-backdrop/internal/config"
	"github.com/iburimskiy/globe-backdrop/internal/debounce"
)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Noise  NoiseFunc
	Rand   *rand.Rand
	Clock  debounce.Clock
	Logger *log.Logger
}

// Stats is a snapshot for diagnostics.
type Stats struct {
	Particles int
	Dots      int
	Frames    uint64
	Elapsed   time.Duration
	Active    bool
	Rotation  Rotation
	Width     int
	Height    int
}

// Engine owns the animation state and advances it one frame per Tick.
// It does not schedule itself: the host calls Tick (or Step and Render)
// from whatever frame callback it has.
type Engine struct {
	preset config.Preset
	noise  NoiseFunc
	rng    *rand.Rand
	clock  debounce.Clock
	log    *log.Logger

	state   InteractionState
	tracker *Tracker
	surface *Surface

	particles []GlobeParticle
	dots      []SideDot

	start   time.Time
	elapsed time.Duration
	frames  uint64
}

// NewEngine creates an engine for a width x height surface and generates
// the initial particle and dot collections.
func NewEngine(p config.Preset, width, height int, opts Options) *Engine {
	e := &Engine{
		preset: p,
		noise:  opts.Noise,
		rng:    opts.Rand,
		clock:  opts.Clock,
		log:    opts.Logger,
	}
	if e.noise == nil {
		e.noise = Harmonic
	}
	if e.clock == nil {
		e.clock = debounce.System
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.clock.Now().UnixNano()))
	}
	if e.log == nil {
		e.log = log.New(os.Stderr, "[scene] ", log.LstdFlags)
	}
	e.start = e.clock.Now()
	e.tracker = NewTracker(&e.state, e.clock, config.ActivityDecay)
	e.surface = NewSurface(e.clock, config.ResizeDebounce, func(w, h int) {
		e.log.Printf("surface %dx%d", w, h)
		e.Reinitialize()
	})
	e.surface.Observe(width, height)
	return e
}

// Discard is a logger for callers that want the engine silent.
var Discard = log.New(io.Discard, "", 0)

// Reinitialize regenerates the globe particles and both dot columns
// against the current surface size.
func (e *Engine) Reinitialize() {
	d := Distribute(e.preset.Particles, e.noise, e.rng)
	if d.Short(e.preset.Particles) {
		e.log.Printf("generated %d of %d particles in %d attempts", len(d.Points), e.preset.Particles, d.Attempts)
	}
	e.particles = make([]GlobeParticle, len(d.Points))
	for i, dir := range d.Points {
		e.particles[i] = GlobeParticle{Dir: dir}
	}

	w, h := e.surface.Size()
	n := e.preset.DotsPerSide
	e.dots = make([]SideDot, 0, 2*n)
	left := Column(Left, n, e.preset, w, h)
	right := Column(Right, n, e.preset, w, h)
	for i := range left {
		e.dots = append(e.dots, left[i], right[i])
	}
}

// Step fires due timers, samples the clock and eases the rotation.
func (e *Engine) Step() {
	e.surface.Poll()
	e.tracker.Poll()
	e.elapsed = e.clock.Now().Sub(e.start)
	e.state.Ease()
	e.frames++
}

// Render clears c and draws every particle and dot from the current
// state.
func (e *Engine) Render(c Canvas) {
	c.Clear()
	if !e.surface.Ready() {
		return
	}
	w, h := e.surface.Size()
	lens := NewLens(e.preset, w, h)
	for _, p := range e.particles {
		p.draw(c, p.Project(lens, e.state.Rotation))
	}
	t := e.elapsed.Seconds()
	for _, d := range e.dots {
		d.draw(c, d.Pulse(t, e.state.Active, e.preset.Stretch), e.preset.DotSize, e.preset.Glow)
	}
}

// Tick runs one full frame.
func (e *Engine) Tick(c Canvas) {
	e.Step()
	e.Render(c)
}

// Stop cancels pending timers.
func (e *Engine) Stop() {
	e.surface.Stop()
	e.tracker.Stop()
}

func (e *Engine) Tracker() *Tracker          { return e.tracker }
func (e *Engine) Surface() *Surface          { return e.surface }
func (e *Engine) State() InteractionState    { return e.state }
func (e *Engine) Particles() []GlobeParticle { return e.particles }
func (e *Engine) Dots() []SideDot            { return e.dots }

func (e *Engine) Stats() Stats {
	w, h := e.surface.Size()
	return Stats{
		Particles: len(e.particles),
		Dots:      len(e.dots),
		Frames:    e.frames,
		Elapsed:   e.elapsed,
		Active:    e.state.Active,
		Rotation:  e.state.Rotation,
		Width:     w,
		Height:    h,
	}
}
