package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/riteshkukreja/sine-wave/internal/config"
	"github.com/riteshkukreja/sine-wave/internal/game"
	"github.com/riteshkukreja/sine-wave/internal/logging"
	"github.com/riteshkukreja/sine-wave/internal/palette"
	"github.com/riteshkukreja/sine-wave/internal/wave"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "sine-wave: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sine-wave: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("exiting", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	colors, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	logger.Info("starting",
		zap.String("mode", cfg.Mode),
		zap.Int("waves", cfg.Waves),
		zap.Uint64("seed", seed),
		zap.Int("colors", len(colors)),
	)

	opts := waveOptions(cfg)
	switch cfg.Mode {
	case config.ModeTerm:
		return runTerminal(ctx, cfg, colors, rng, logger, opts)
	case config.ModePNG:
		return runPNG(ctx, cfg, colors, rng, logger, opts)
	default:
		g, err := game.New(cfg, colors, rng, logger, opts...)
		if err != nil {
			return err
		}
		return game.Run(g)
	}
}

func waveOptions(cfg config.Config) []wave.Option {
	return []wave.Option{
		wave.WithLineWidth(cfg.LineWidth),
		wave.WithFill(cfg.Fill),
		wave.WithGradient(cfg.Gradient),
		wave.WithFixedStart(cfg.FixedStart),
		wave.WithFixedEnd(cfg.FixedEnd),
		wave.WithDamping(cfg.Damping),
	}
}
