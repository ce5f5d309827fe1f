// Package driver owns a set of waves that share one surface and paints them
// together on every frame tick.
package driver

import (
	"fmt"
	"image/color"

	"github.com/riteshkukreja/sine-wave/internal/wave"
)

// Ranges for randomized wave parameters, upper bound exclusive.
const (
	phaseMin, phaseMax         = 0, 360
	shiftMin, shiftMax         = -70, 70
	amplitudeMin, amplitudeMax = 40, 100
)

// Collection is an ordered set of waves painted onto a shared surface.
// Later waves stack on top of earlier ones.
type Collection struct {
	surface wave.Surface
	waves   []*wave.Renderer
}

// Initialize builds n waves on s with randomized phase, shift, amplitude and
// color. opts are applied after the randomized values.
func Initialize(n int, s wave.Surface, palette []color.Color, rng wave.IntNer, opts ...wave.Option) (*Collection, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: drawing surface is required", wave.ErrConfiguration)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: wave count %d is negative", wave.ErrConfiguration, n)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: palette is empty", wave.ErrConfiguration)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", wave.ErrConfiguration)
	}

	c := &Collection{surface: s, waves: make([]*wave.Renderer, 0, n)}
	for i := 0; i < n; i++ {
		base := []wave.Option{
			wave.WithColor(palette[wave.RandInt(rng, 0, len(palette))]),
			wave.WithPhase(float64(wave.RandInt(rng, phaseMin, phaseMax))),
			wave.WithShift(float64(wave.RandInt(rng, shiftMin, shiftMax))),
			wave.WithAmplitude(float64(wave.RandInt(rng, amplitudeMin, amplitudeMax))),
			wave.WithOutline(true),
			wave.WithRand(rng),
		}
		w, err := wave.New(s, append(base, opts...)...)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		c.waves = append(c.waves, w)
	}
	return c, nil
}

// Frame clears the surface once and redraws every wave in order.
func (c *Collection) Frame() {
	width, height := c.surface.Size()
	c.surface.ClearRect(0, 0, float64(width), float64(height))
	for _, w := range c.waves {
		w.Redraw(nil)
	}
}

func (c *Collection) Len() int { return len(c.waves) }

// Waves returns the renderers in paint order.
func (c *Collection) Waves() []*wave.Renderer {
	return c.waves
}
