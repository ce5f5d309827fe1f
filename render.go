package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/riteshkukreja/sine-wave/internal/config"
	"github.com/riteshkukreja/sine-wave/internal/driver"
	"github.com/riteshkukreja/sine-wave/internal/surface"
	"github.com/riteshkukreja/sine-wave/internal/wave"
)

// runTerminal draws the waves into the terminal until a quit key, a signal
// or ctx ends it.
func runTerminal(ctx context.Context, cfg config.Config, colors []color.Color, rng *rand.Rand, logger *zap.Logger, opts []wave.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term := surface.NewTerminal(screen, cfg.Width, cfg.Height)
	waves, err := driver.Initialize(cfg.Waves, term, colors, rng, opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollQuit(screen, cancel)

	loop := driver.NewLoop(cfg.FrameInterval(), func() error {
		waves.Frame()
		term.Show()
		return nil
	}, logger)

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrStopped) {
		return nil
	}
	return err
}

// pollQuit cancels on Esc, Ctrl-C or q. PollEvent returns nil once the
// screen is finalized, which ends the goroutine.
func pollQuit(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
			}
		}
	}
}

// runPNG renders cfg.Frames frames offscreen and writes one PNG per frame.
func runPNG(ctx context.Context, cfg config.Config, colors []color.Color, rng *rand.Rand, logger *zap.Logger, opts []wave.Option) error {
	img := surface.NewImage(cfg.Width, cfg.Height)
	waves, err := driver.Initialize(cfg.Waves, img, colors, rng, opts...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		waves.Frame()
		path := filepath.Join(cfg.OutDir, fmt.Sprintf("frame-%04d.png", i))
		if err := writePNG(path, img); err != nil {
			return err
		}
		logger.Debug("frame written", zap.String("path", path))
	}
	logger.Info("frames written", zap.Int("frames", cfg.Frames), zap.String("dir", cfg.OutDir))
	return nil
}

func writePNG(path string, img *surface.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := img.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
