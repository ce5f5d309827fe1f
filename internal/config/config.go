package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Frame rate of the shared redraw cycle
	FrameRate = 30

	// Wave defaults
	WaveCount = 3
	LineWidth = 4
	Damping   = 0.5

	// PNG export
	DefaultFrames = 60
	DefaultOutDir = "frames"
)

// Render modes
const (
	ModeWindow = "window"
	ModeTerm   = "term"
	ModePNG    = "png"
)

type Config struct {
	Mode   string
	Width  int
	Height int
	Waves  int
	FPS    int
	Seed   uint64

	Palette    string
	LineWidth  float64
	Fill       bool
	Gradient   bool
	FixedStart bool
	FixedEnd   bool
	Damping    float64

	Frames int
	OutDir string

	LogLevel string
}

// FrameInterval is the time between two frame ticks.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Parse reads flags from args, which excludes the program name.
func Parse(args []string, output io.Writer) (Config, error) {
	var c Config
	fs := flag.NewFlagSet("sine-wave", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.StringVar(&c.Mode, "mode", ModeWindow, "render target: window, term or png")
	fs.IntVar(&c.Width, "width", WindowWidth, "surface width in pixels")
	fs.IntVar(&c.Height, "height", WindowHeight, "surface height in pixels")
	fs.IntVar(&c.Waves, "waves", WaveCount, "number of waves")
	fs.IntVar(&c.FPS, "fps", FrameRate, "frames per second")
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.StringVar(&c.Palette, "palette", "material", "material, rainbow[:N] or a comma-separated color list")
	fs.Float64Var(&c.LineWidth, "line-width", LineWidth, "point diameter")
	fs.BoolVar(&c.Fill, "fill", false, "fill below each wave")
	fs.BoolVar(&c.Gradient, "gradient", false, "fade the fill to transparent (needs -fill)")
	fs.BoolVar(&c.FixedStart, "fixed-start", false, "pin the left end of each wave")
	fs.BoolVar(&c.FixedEnd, "fixed-end", false, "pin the right end of each wave")
	fs.Float64Var(&c.Damping, "damping", Damping, "damping strength near pinned ends")
	fs.IntVar(&c.Frames, "frames", DefaultFrames, "frames to write in png mode")
	fs.StringVar(&c.OutDir, "out", DefaultOutDir, "output directory in png mode")
	fs.StringVar(&c.LogLevel, "log-level", "info", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModeWindow, ModeTerm, ModePNG:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Mode != ModeTerm && (c.Width <= 0 || c.Height <= 0) {
		errs = append(errs, fmt.Errorf("surface must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if c.Waves <= 0 {
		errs = append(errs, fmt.Errorf("waves must be positive, got %d", c.Waves))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Mode == ModePNG && c.Frames <= 0 {
		errs = append(errs, fmt.Errorf("frames must be positive, got %d", c.Frames))
	}
	return errors.Join(errs...)
}
