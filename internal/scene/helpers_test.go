package scene

import (
	"image/color"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1_700_000_000, 0)} }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type drawCall struct {
	op     string
	x, y   float64
	rx, ry float64
	clr    color.Color
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) Clear() { r.calls = append(r.calls, drawCall{op: "clear"}) }

func (r *recorder) FillCircle(x, y, radius float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", x: x, y: y, rx: radius, ry: radius, clr: clr})
}

func (r *recorder) FillEllipse(x, y, rx, ry float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "ellipse", x: x, y: y, rx: rx, ry: ry, clr: clr})
}

func (r *recorder) Glow(blur float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "glow", rx: blur, clr: clr})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
