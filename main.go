package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/globe-backdrop/internal/config"
	"github.com/iburimskiy/globe-backdrop/internal/game"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		pick       = flag.Bool("pick-config", false, "choose the config file with a dialog")
		device     = flag.String("device", "", "device class: auto, standard or constrained")
		debug      = flag.Bool("debug", false, "show the debug overlay")
		sound      = flag.Bool("sound", false, "hum while typing")
		width      = flag.Int("width", 0, "window width")
		height     = flag.Int("height", 0, "window height")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[game] ", log.LstdFlags)

	path := *configPath
	if *pick {
		p, err := pickConfig()
		if err != nil {
			fail(logger, err)
		}
		if p != "" {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fail(logger, err)
	}
	// flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			cfg.Device = config.DeviceClass(*device)
		case "debug":
			cfg.Debug = *debug
		case "sound":
			cfg.Sound = *sound
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		}
	})
	if err := cfg.Validate(); err != nil {
		fail(logger, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	class := cfg.Classify(cfg.Width)
	g, err := game.New(ctx, cfg, class, logger)
	if err != nil {
		fail(logger, err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(logger, err)
	}
	logger.Printf("exited after %s", g.Uptime())
}

func pickConfig() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Config"),
		zenity.FileFilters{{
			Name:     "TOML",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func fail(logger *log.Logger, err error) {
	logger.Print(err)
	_ = zenity.Error(err.Error(), zenity.Title("Globe"), zenity.ErrorIcon)
	os.Exit(1)
}
