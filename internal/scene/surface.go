package scene

import (
	"time"

	"github.com/iburimskiy/globe-backdrop/internal/debounce"
)

// Surface tracks the drawing surface size. The first reported size is
// applied at once; later changes are applied after the viewport has been
// stable for the debounce window.
type Surface struct {
	width, height      int
	pendingW, pendingH int
	clock              debounce.Clock
	resize             *debounce.Debouncer
	onResize           func(width, height int)
}

func NewSurface(clock debounce.Clock, window time.Duration, onResize func(width, height int)) *Surface {
	s := &Surface{clock: clock, onResize: onResize}
	s.resize = debounce.New(window, func() { s.apply(s.pendingW, s.pendingH) })
	return s
}

// Observe reports the current viewport size.
func (s *Surface) Observe(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if s.width == 0 && s.height == 0 {
		s.apply(width, height)
		return
	}
	if s.resize.Pending() {
		if width == s.pendingW && height == s.pendingH {
			return
		}
	} else if width == s.width && height == s.height {
		return
	}
	s.pendingW, s.pendingH = width, height
	s.resize.Trigger(s.clock.Now())
}

// Poll applies a pending resize whose quiet period has elapsed.
func (s *Surface) Poll() bool {
	return s.resize.Poll(s.clock.Now())
}

// Size returns the applied surface size.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Ready reports whether a size has been applied.
func (s *Surface) Ready() bool { return s.width > 0 && s.height > 0 }

// Stop drops a pending resize.
func (s *Surface) Stop() { s.resize.Stop() }

func (s *Surface) apply(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if s.onResize != nil {
		s.onResize(width, height)
	}
}
