package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Viewports narrower than this start in the constrained preset.
	ConstrainedBreakpoint = 768

	ResizeDebounce = 100 * time.Millisecond
	ActivityDecay  = 200 * time.Millisecond

	// Pointer and rotation parameters
	PointerScale  = 0.001
	RotationGain  = 2.0
	EaseFactor    = 0.05
	YawDrift      = 0.002
	PitchDrift    = 0.001
	MinOpacity    = 0.05
	OpacitySlope  = 0.6
	OpacityOrigin = 0.5

	// Side dot oscillation
	WaveSpeed    = 8.0
	PhaseSpacing = 0.8
	IdleOpacity  = 0.6
	GlowBlur     = 10.0

	// Point distribution
	NoiseThreshold = -0.2
	AttemptFactor  = 2
)

var (
	GlobeColor = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	LeftColor  = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	RightColor = color.RGBA{R: 139, G: 92, B: 246, A: 255}
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DeviceClass selects one of the two presets.
type DeviceClass string

const (
	Auto        DeviceClass = "auto"
	Standard    DeviceClass = "standard"
	Constrained DeviceClass = "constrained"
)

// NoiseKind names the field used to thin the globe point distribution.
type NoiseKind string

const (
	HarmonicNoise NoiseKind = "harmonic"
	PerlinNoise   NoiseKind = "perlin"
)

// Preset is the fixed parameter set for one device class.
type Preset struct {
	Particles      int     `toml:"particles"`
	ParticleSize   float64 `toml:"particle_size"`
	RadiusFraction float64 `toml:"radius_fraction"`
	Perspective    float64 `toml:"perspective"`
	DotsPerSide    int     `toml:"dots_per_side"`
	DotSize        float64 `toml:"dot_size"`
	SideMargin     float64 `toml:"side_margin"`
	SpanStart      float64 `toml:"span_start"`
	SpanRatio      float64 `toml:"span_ratio"`
	Glow           bool    `toml:"glow"`
	Stretch        float64 `toml:"stretch"`
}

var (
	StandardPreset = Preset{
		Particles:      1200,
		ParticleSize:   0.8,
		RadiusFraction: 0.35,
		Perspective:    300,
		DotsPerSide:    15,
		DotSize:        2.5,
		SideMargin:     40,
		SpanStart:      0.2,
		SpanRatio:      0.6,
		Glow:           true,
		Stretch:        5,
	}
	ConstrainedPreset = Preset{
		Particles:      600,
		ParticleSize:   0.6,
		RadiusFraction: 0.25,
		Perspective:    250,
		DotsPerSide:    8,
		DotSize:        1.5,
		SideMargin:     15,
		SpanStart:      0.1,
		SpanRatio:      0.8,
		Glow:           false,
		Stretch:        3,
	}
)

// Config holds everything read from the TOML file and command line.
type Config struct {
	Title      string      `toml:"title"`
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Device     DeviceClass `toml:"device"`
	Background string      `toml:"background"`
	Debug      bool        `toml:"debug"`
	Sound      bool        `toml:"sound"`
	Noise      NoiseKind   `toml:"noise"`
	Seed       int64       `toml:"seed"`

	Standard    Preset `toml:"standard"`
	Constrained Preset `toml:"constrained"`
}

// Default returns a fresh config with the built-in presets.
func Default() *Config {
	return &Config{
		Title:       "Globe",
		Width:       WindowWidth,
		Height:      WindowHeight,
		Device:      Auto,
		Background:  "#0b1020",
		Noise:       HarmonicNoise,
		Standard:    StandardPreset,
		Constrained: ConstrainedPreset,
	}
}

// Load reads the TOML file at path over the defaults. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return conf, conf.Validate()
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.Device {
	case Auto, Standard, Constrained:
	default:
		return fmt.Errorf("%w: device %q", ErrInvalidConfig, c.Device)
	}
	switch c.Noise {
	case HarmonicNoise, PerlinNoise:
	default:
		return fmt.Errorf("%w: noise %q", ErrInvalidConfig, c.Noise)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	for name, p := range map[string]Preset{"standard": c.Standard, "constrained": c.Constrained} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

func (p Preset) validate() error {
	switch {
	case p.Particles < 0:
		return fmt.Errorf("particles %d", p.Particles)
	case p.DotsPerSide < 1:
		return fmt.Errorf("dots_per_side %d", p.DotsPerSide)
	case p.Perspective <= 0:
		return fmt.Errorf("perspective %g", p.Perspective)
	case p.RadiusFraction <= 0:
		return fmt.Errorf("radius_fraction %g", p.RadiusFraction)
	case p.Stretch < 0:
		return fmt.Errorf("stretch %g", p.Stretch)
	}
	return nil
}

// Classify resolves the configured device class against the startup
// viewport width.
func (c *Config) Classify(width int) DeviceClass {
	if c.Device != Auto && c.Device != "" {
		return c.Device
	}
	return Classify(width)
}

// Classify maps a viewport width to a device class.
func Classify(width int) DeviceClass {
	if width < ConstrainedBreakpoint {
		return Constrained
	}
	return Standard
}

// Preset returns the parameter set for class.
func (c *Config) Preset(class DeviceClass) Preset {
	if class == Constrained {
		return c.Constrained
	}
	return c.Standard
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
