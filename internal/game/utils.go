package game

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// straightRGBA returns the non-premultiplied components of c in [0, 1].
func straightRGBA(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

// ellipsePoints appends n points around the ellipse centered at (x, y).
func ellipsePoints(dst [][2]float32, x, y, rx, ry float64, n int) [][2]float32 {
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		dst = append(dst, [2]float32{float32(x + rx*math.Cos(a)), float32(y + ry*math.Sin(a))})
	}
	return dst
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
