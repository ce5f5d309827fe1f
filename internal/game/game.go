// Package game hosts the wave collection in an ebiten window.
package game

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/riteshkukreja/sine-wave/internal/config"
	"github.com/riteshkukreja/sine-wave/internal/driver"
	"github.com/riteshkukreja/sine-wave/internal/wave"
)

const statusHeight = 16

type Game struct {
	cfg     config.Config
	logger  *zap.Logger
	rng     *rand.Rand
	palette []color.Color
	opts    []wave.Option

	surface *screenSurface
	waves   *driver.Collection

	// input edge detection
	prevKey map[ebiten.Key]bool

	// frame state
	due     bool
	paused  bool
	frames  uint64
	started time.Time
}

// New builds the waves up front so configuration errors surface before the
// window opens.
func New(cfg config.Config, palette []color.Color, rng *rand.Rand, logger *zap.Logger, opts ...wave.Option) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		rng:     rng,
		palette: palette,
		opts:    opts,
		surface: &screenSurface{width: cfg.Width, height: cfg.Height},
		prevKey: map[ebiten.Key]bool{},
	}
	if err := g.reseed(); err != nil {
		return nil, err
	}
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle("Sine Wave - Space: pause, R: reseed, Esc/Q: quit")
	ebiten.SetTPS(g.cfg.FPS)
	// Collection.Frame clears the screen itself.
	ebiten.SetScreenClearedEveryFrame(false)

	g.started = time.Now()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.logger.Info("window closed", zap.Uint64("frames", g.frames))
	return nil
}

func (g *Game) reseed() error {
	waves, err := driver.Initialize(g.cfg.Waves, g.surface, g.palette, g.rng, g.opts...)
	if err != nil {
		return err
	}
	g.waves = waves
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.due = true
	}
	if justPressed(ebiten.KeyR) {
		if err := g.reseed(); err != nil {
			g.logger.Error("reseed failed", zap.Error(err))
		} else {
			g.logger.Debug("waves reseeded", zap.Int("waves", g.waves.Len()))
		}
	}

	if !g.paused {
		g.due = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.due {
		return
	}
	g.due = false
	g.surface.dst = screen

	if !g.paused {
		g.waves.Frame()
		g.frames++
	}

	// The screen is retained between frames, so the status band is cleared
	// before printing over it.
	g.surface.ClearRect(0, 0, float64(g.cfg.Width), statusHeight)
	ebitenutil.DebugPrintAt(screen, statusLine(g.waves.Len(), g.frames, time.Since(g.started), g.paused), 12, 0)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
