package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ellipseSegments = 32
	glowLayers      = 3
	glowAlpha       = 0.12
)

// screenCanvas draws scene primitives onto an ebiten image.
type screenCanvas struct {
	dst        *ebiten.Image
	background color.Color

	glowBlur  float64
	glowColor color.Color

	white *ebiten.Image
	path  vector.Path
	pts   [][2]float32
	vs    []ebiten.Vertex
	is    []uint16
}

func newScreenCanvas(background color.Color) *screenCanvas {
	return &screenCanvas{background: background}
}

func (c *screenCanvas) Clear() {
	c.dst.Fill(c.background)
}

func (c *screenCanvas) Glow(blur float64, clr color.Color) {
	c.glowBlur = blur
	c.glowColor = clr
}

func (c *screenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	if c.glowBlur > 0 {
		c.halo(x, y, r, r)
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

func (c *screenCanvas) FillEllipse(x, y, rx, ry float64, clr color.Color) {
	if c.glowBlur > 0 {
		c.halo(x, y, rx, ry)
	}
	c.fillEllipse(x, y, rx, ry, clr)
}

// halo approximates a shadow blur with a few translucent rings.
func (c *screenCanvas) halo(x, y, rx, ry float64) {
	base := color.NRGBAModel.Convert(c.glowColor).(color.NRGBA)
	for i := glowLayers; i >= 1; i-- {
		grow := c.glowBlur * float64(i) / glowLayers
		ring := base
		ring.A = uint8(float64(base.A) * glowAlpha * float64(glowLayers-i+1) / glowLayers)
		c.fillEllipse(x, y, rx+grow, ry+grow, ring)
	}
}

func (c *screenCanvas) fillEllipse(x, y, rx, ry float64, clr color.Color) {
	c.pts = ellipsePoints(c.pts[:0], x, y, rx, ry, ellipseSegments)
	c.path = vector.Path{}
	for i, p := range c.pts {
		if i == 0 {
			c.path.MoveTo(p[0], p[1])
			continue
		}
		c.path.LineTo(p[0], p[1])
	}
	c.path.Close()

	c.vs, c.is = c.path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	r, g, b, a := straightRGBA(clr)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.dst.DrawTriangles(c.vs, c.is, c.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *screenCanvas) whitePixel() *ebiten.Image {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.white
}
