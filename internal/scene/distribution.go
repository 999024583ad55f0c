package scene

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/iburimskiy/globe-backdrop/internal/config"
)

// Direction is a point on the unit sphere: azimuth Theta in [0, 2π),
// polar angle Phi in [0, π].
type Direction struct {
	Theta float64
	Phi   float64
}

// Unit returns the Cartesian coordinates of d on the unit sphere.
func (d Direction) Unit() (x, y, z float64) {
	sinPhi := math.Sin(d.Phi)
	return sinPhi * math.Cos(d.Theta), sinPhi * math.Sin(d.Theta), math.Cos(d.Phi)
}

// NoiseFunc scores a candidate direction; candidates scoring above
// config.NoiseThreshold are kept.
type NoiseFunc func(theta, phi float64) float64

// Harmonic is the banded field made of two sine/cosine terms at
// different frequencies.
func Harmonic(theta, phi float64) float64 {
	n1 := math.Sin(theta*3) * math.Cos(phi*3)
	n2 := math.Sin(theta*7 + phi*2)
	return n1 + n2*0.5
}

const (
	perlinAlpha     = 2
	perlinBeta      = 2
	perlinOctaves   = 3
	perlinFrequency = 2.5
	perlinGain      = 2.0
)

// PerlinField returns a seeded Perlin noise field sampled on the sphere
// surface, so it has no seam at θ = 0.
func PerlinField(seed int64) NoiseFunc {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	return func(theta, phi float64) float64 {
		x, y, z := Direction{Theta: theta, Phi: phi}.Unit()
		return p.Noise3D(x*perlinFrequency, y*perlinFrequency, z*perlinFrequency) * perlinGain
	}
}

// Distribution is the output of one generator run.
type Distribution struct {
	Points   []Direction
	Attempts int
}

// Short reports whether the attempt budget ran out before target was met.
func (d Distribution) Short(target int) bool { return len(d.Points) < target }

// Distribute draws area-uniform candidates and keeps those the noise
// field accepts, stopping at target points or config.AttemptFactor*target
// attempts, whichever comes first.
func Distribute(target int, noise NoiseFunc, rng *rand.Rand) Distribution {
	if target <= 0 {
		return Distribution{}
	}
	if noise == nil {
		noise = Harmonic
	}
	budget := target * config.AttemptFactor
	points := make([]Direction, 0, target)
	attempts := 0
	for len(points) < target && attempts < budget {
		attempts++
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(rng.Float64()*2 - 1)
		if noise(theta, phi) > config.NoiseThreshold {
			points = append(points, Direction{Theta: theta, Phi: phi})
		}
	}
	return Distribution{Points: points, Attempts: attempts}
}
