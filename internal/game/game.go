package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/globe-backdrop/internal/config"
	"github.com/iburimskiy/globe-backdrop/internal/debounce"
	"github.com/iburimskiy/globe-backdrop/internal/scene"
)

// Game hosts the scene in an ebiten window. ebiten's Update/Draw pair is
// the frame callback: Update steps the engine, Draw renders it.
type Game struct {
	ctx    context.Context
	cfg    *config.Config
	class  config.DeviceClass
	log    *log.Logger
	engine *scene.Engine
	canvas *screenCanvas
	input  inputPoller
	tone   *typingTone
}

// New builds the engine for the given device class. The window is not
// opened until the caller runs the game.
func New(ctx context.Context, cfg *config.Config, class config.DeviceClass, logger *log.Logger) (*Game, error) {
	bg, err := config.ParseHexColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	preset := cfg.Preset(class)
	logger.Printf("device %s: %d particles, %d dots per side, noise %s", class, preset.Particles, preset.DotsPerSide, cfg.Noise)

	g := &Game{
		ctx:    ctx,
		cfg:    cfg,
		class:  class,
		log:    logger,
		engine: scene.NewEngine(preset, cfg.Width, cfg.Height, engineOptions(cfg, debounce.System)),
		canvas: newScreenCanvas(bg),
	}
	if cfg.Sound {
		tone, err := startTone()
		if err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			g.tone = tone
		}
	}
	return g, nil
}

// engineOptions maps the config's noise and seed settings onto engine
// options.
func engineOptions(cfg *config.Config, clock debounce.Clock) scene.Options {
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	opts := scene.Options{
		Rand:  rand.New(rand.NewSource(seed)),
		Clock: clock,
		Noise: scene.Harmonic,
	}
	if cfg.Noise == config.PerlinNoise {
		opts.Noise = scene.PerlinField(seed)
	}
	return opts
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.shutdown(err.Error())
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.shutdown("escape")
		return ebiten.Termination
	}

	w, h := g.engine.Surface().Size()
	g.input.poll(g.engine.Tracker(), w, h)
	g.engine.Step()
	if g.tone != nil {
		g.tone.SetActive(g.engine.State().Active)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.engine.Render(g.canvas)
	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, g.status(ebiten.ActualTPS()), 12, 12)
	}
}

// Layout feeds the window size to the surface and keeps the screen at
// the last applied size until a resize settles.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Surface()
	s.Observe(outsideWidth, outsideHeight)
	if !s.Ready() {
		return outsideWidth, outsideHeight
	}
	return s.Size()
}

func (g *Game) status(tps float64) string {
	st := g.engine.Stats()
	return fmt.Sprintf("%s %dx%d | particles %d | dots %d | tps %.1f | up %s | typing %v",
		g.class, st.Width, st.Height, st.Particles, st.Dots, tps, formatDuration(st.Elapsed), st.Active)
}

func (g *Game) shutdown(reason string) {
	g.log.Printf("stopping after %d frames: %s", g.engine.Stats().Frames, reason)
	g.engine.Stop()
	if g.tone != nil {
		stopTone()
		g.tone = nil
	}
}

// Engine exposes the scene for callers that drive it directly.
func (g *Game) Engine() *scene.Engine { return g.engine }

var _ ebiten.Game = (*Game)(nil)

// Uptime is a convenience for logging on exit.
func (g *Game) Uptime() time.Duration { return g.engine.Stats().Elapsed }
