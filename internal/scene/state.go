package scene

import (
	"time"

	"github.com/iburimskiy/globe-backdrop/internal/config"
	"github.com/iburimskiy/globe-backdrop/internal/debounce"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// InteractionState is the only state shared between input handling and
// the frame loop. It is confined to the loop's goroutine.
type InteractionState struct {
	Pointer  Vec2
	Active   bool
	Rotation Rotation
}

// Target is the rotation the pointer currently asks for.
func (s *InteractionState) Target() Rotation {
	return Rotation{
		Pitch: s.Pointer.Y * config.RotationGain,
		Yaw:   s.Pointer.X * config.RotationGain,
	}
}

// Ease moves the rotation a fixed fraction toward the target and adds
// the idle drift.
func (s *InteractionState) Ease() {
	target := s.Target()
	s.Rotation.Yaw += (target.Yaw-s.Rotation.Yaw)*config.EaseFactor + config.YawDrift
	s.Rotation.Pitch += (target.Pitch-s.Rotation.Pitch)*config.EaseFactor + config.PitchDrift
}

// Tracker turns raw input events into InteractionState updates.
type Tracker struct {
	state *InteractionState
	clock debounce.Clock
	decay *debounce.Debouncer
}

func NewTracker(state *InteractionState, clock debounce.Clock, decay time.Duration) *Tracker {
	t := &Tracker{state: state, clock: clock}
	t.decay = debounce.New(decay, func() { t.state.Active = false })
	return t
}

// PointerMoved records a pointer position inside a width x height viewport.
func (t *Tracker) PointerMoved(x, y float64, width, height int) {
	t.state.Pointer = pointerOffset(x, y, width, height)
}

// TouchMoved follows the first active touch. An empty list is ignored.
func (t *Tracker) TouchMoved(touches []Vec2, width, height int) {
	if len(touches) == 0 {
		return
	}
	t.PointerMoved(touches[0].X, touches[0].Y, width, height)
}

// TextInput marks the user as typing and re-arms the decay timer.
func (t *Tracker) TextInput() {
	t.state.Active = true
	t.decay.Trigger(t.clock.Now())
}

// Poll expires the typing flag once the decay window has passed.
func (t *Tracker) Poll() {
	t.decay.Poll(t.clock.Now())
}

// IsActive polls the decay timer and reports the typing flag.
func (t *Tracker) IsActive() bool {
	t.Poll()
	return t.state.Active
}

// Stop cancels a pending decay and clears the flag.
func (t *Tracker) Stop() {
	t.decay.Stop()
	t.state.Active = false
}

func pointerOffset(x, y float64, width, height int) Vec2 {
	return Vec2{
		X: (x - float64(width)/2) * config.PointerScale,
		Y: (y - float64(height)/2) * config.PointerScale,
	}
}
