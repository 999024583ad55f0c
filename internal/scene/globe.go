package scene

import (
	"math"

	"github.com/iburimskiy/globe-backdrop/internal/config"
)

// minDenominator is the smallest perspective denominator, as a fraction
// of the perspective constant, for points at or behind the eye.
const minDenominator = 1e-3

// Rotation is the globe orientation: Pitch about the horizontal axis,
// Yaw about the vertical axis.
type Rotation struct {
	Pitch float64
	Yaw   float64
}

// Lens holds the per-frame projection parameters derived from the
// surface size and the active preset.
type Lens struct {
	CenterX     float64
	CenterY     float64
	Radius      float64
	Perspective float64
	BaseSize    float64
}

// NewLens derives the projection parameters for a width x height surface.
func NewLens(p config.Preset, width, height int) Lens {
	return Lens{
		CenterX:     float64(width) / 2,
		CenterY:     float64(height) / 2,
		Radius:      math.Min(float64(width), float64(height)) * p.RadiusFraction,
		Perspective: p.Perspective,
		BaseSize:    p.ParticleSize,
	}
}

// GlobeParticle is one point of the sphere. It never changes after
// generation.
type GlobeParticle struct {
	Dir Direction
}

// Projection is the per-frame screen state of a globe particle.
type Projection struct {
	X, Y  float64
	Scale float64
	Alpha float64
	Size  float64
}

// Project rotates p by yaw then pitch and applies the fixed perspective.
func (p GlobeParticle) Project(lens Lens, rot Rotation) Projection {
	ux, uy, uz := p.Dir.Unit()
	x, y, z := ux*lens.Radius, uy*lens.Radius, uz*lens.Radius

	sinYaw, cosYaw := math.Sincos(rot.Yaw)
	x1 := x*cosYaw - z*sinYaw
	z1 := z*cosYaw + x*sinYaw

	sinPitch, cosPitch := math.Sincos(rot.Pitch)
	y1 := y*cosPitch - z1*sinPitch
	z2 := z1*cosPitch + y*sinPitch

	scale := perspectiveScale(lens.Perspective, z2)
	return Projection{
		X:     lens.CenterX + x1*scale,
		Y:     lens.CenterY + y1*scale,
		Scale: scale,
		Alpha: globeOpacity(scale),
		Size:  lens.BaseSize * scale,
	}
}

func perspectiveScale(perspective, z float64) float64 {
	denom := perspective + z
	if floor := perspective * minDenominator; denom < floor {
		denom = floor
	}
	return perspective / denom
}

func globeOpacity(scale float64) float64 {
	a := math.Max(config.MinOpacity, (scale-config.OpacityOrigin)*config.OpacitySlope)
	return math.Min(a, 1)
}

func (p GlobeParticle) draw(c Canvas, pr Projection) {
	c.FillCircle(pr.X, pr.Y, pr.Size, withAlpha(config.GlobeColor, pr.Alpha))
}
