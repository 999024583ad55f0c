package scene

import (
	"image/color"
	"math"

	"github.com/iburimskiy/globe-backdrop/internal/config"
)

// Side is the margin a dot column sits in.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) color() color.RGBA {
	if s == Right {
		return config.RightColor
	}
	return config.LeftColor
}

// SideDot is one indicator dot with its fixed anchor.
type SideDot struct {
	Side  Side
	Slot  int
	Slots int
	X, Y  float64
}

// Column lays out slots dots along one margin of a width x height
// surface. It returns nil when slots < 1.
func Column(side Side, slots int, p config.Preset, width, height int) []SideDot {
	if slots < 1 {
		return nil
	}
	x := p.SideMargin
	if side == Right {
		x = float64(width) - p.SideMargin
	}
	start := float64(height) * p.SpanStart
	spacing := float64(height) * p.SpanRatio / float64(slots)
	dots := make([]SideDot, slots)
	for i := range dots {
		dots[i] = SideDot{
			Side:  side,
			Slot:  i,
			Slots: slots,
			X:     x,
			Y:     start + float64(i)*spacing,
		}
	}
	return dots
}

// Pulse is the per-frame shape of a side dot.
type Pulse struct {
	ScaleX float64
	ScaleY float64
	Alpha  float64
}

// Pulse computes the dot's shape at elapsed seconds t. While active the
// horizontal radius oscillates in [1, 1+amplitude]; otherwise the dot
// idles at unit scale and reduced opacity.
func (d SideDot) Pulse(t float64, active bool, amplitude float64) Pulse {
	if !active {
		return Pulse{ScaleX: 1, ScaleY: 1, Alpha: config.IdleOpacity}
	}
	wave := math.Sin(t*config.WaveSpeed + float64(d.Slot)*config.PhaseSpacing)
	return Pulse{
		ScaleX: 1 + (wave+1)/2*amplitude,
		ScaleY: 1,
		Alpha:  1,
	}
}

func (d SideDot) draw(c Canvas, pu Pulse, size float64, glow bool) {
	base := d.Side.color()
	if glow {
		c.Glow(config.GlowBlur, base)
	}
	c.FillEllipse(d.X, d.Y, size*pu.ScaleX, size*pu.ScaleY, withAlpha(base, pu.Alpha))
	if glow {
		c.Glow(0, nil)
	}
}
