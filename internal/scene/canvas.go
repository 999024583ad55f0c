package scene

import (
	"image/color"
	"math"
)

// Canvas is the raster surface the scene draws on.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	FillEllipse(x, y, rx, ry float64, clr color.Color)
	// Glow sets a blur halo for following fills; blur 0 turns it off.
	Glow(blur float64, clr color.Color)
}

// withAlpha returns base with its alpha replaced by a in [0, 1].
func withAlpha(base color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(math.Round(clamp01(a) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
