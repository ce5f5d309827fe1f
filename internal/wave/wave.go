// Package wave draws one animated sine curve onto a Surface.
package wave

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"reflect"
	"time"
)

// ErrConfiguration is returned when a Renderer cannot be built.
var ErrConfiguration = errors.New("wave: invalid configuration")

// Per-frame phase jitter, added on top of Shift.
const (
	jitterMin = 10
	jitterMax = 15
)

type Point struct {
	X, Y float64
}

// CurvePoint is one plotted sample of a curve.
type CurvePoint struct {
	X, Y  float64
	Color color.Color
}

// Params holds the tunable state of one wave.
type Params struct {
	Frequency float64
	Phase     float64
	Amplitude float64
	Color     color.Color
	Shift     float64
	LineWidth float64

	Outline  bool
	Fill     bool
	Gradient bool // only used when Fill is set

	FixedStart bool
	FixedEnd   bool
	Damping    float64

	Origin Point
}

// DefaultParams returns the defaults for a surface of the given height.
func DefaultParams(height int) Params {
	return Params{
		Frequency: 0.005,
		Phase:     30,
		Amplitude: 50,
		Color:     color.RGBA{R: 0xff, A: 0xff},
		Shift:     10,
		LineWidth: 4,
		Outline:   true,
		Damping:   0.5,
		Origin:    Point{X: 0, Y: float64(height) / 2},
	}
}

// Overrides replaces values for a single frame. Zero fields are ignored.
type Overrides struct {
	Amplitude float64
	Color     color.Color
	Phase     float64
	Frequency float64
}

// Renderer owns one wave's parameters and the surface it paints on.
type Renderer struct {
	surface Surface
	rng     IntNer
	params  Params
}

// New builds a Renderer on s. s must not be nil, including a nil pointer
// stored in the interface.
func New(s Surface, opts ...Option) (*Renderer, error) {
	if isNil(s) {
		return nil, fmt.Errorf("%w: drawing surface is required", ErrConfiguration)
	}
	_, h := s.Size()
	r := &Renderer{
		surface: s,
		params:  DefaultParams(h),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		seed := uint64(time.Now().UnixNano())
		r.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return r, nil
}

func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Params returns a copy of the current parameters.
func (r *Renderer) Params() Params {
	return r.params
}

// BuildCurve samples the wave at unit steps over [origin.x, origin.x+wavelength)
// and applies the endpoint damping policy.
func (r *Renderer) BuildCurve(wavelength, phase float64, c color.Color, amplitude, frequency float64) []CurvePoint {
	if wavelength <= 0 {
		return nil
	}
	p := r.params
	start, end := p.Origin.X, p.Origin.X+wavelength
	points := make([]CurvePoint, 0, int(wavelength)+1)

	for x := start; x < end; x++ {
		y := Sample(x, phase, amplitude, frequency)

		switch {
		case p.FixedStart && p.FixedEnd:
			y *= DampingFactor(end, x, p.Damping)
		case p.FixedStart:
			y *= LinearMap(x, start, end, 0, p.Damping)
		case p.FixedEnd:
			y *= p.Damping - LinearMap(x, start, end, 0, p.Damping)
		}
		points = append(points, CurvePoint{X: x, Y: p.Origin.Y + y, Color: c})
	}
	return points
}

// Draw clears the whole surface and paints the next frame.
func (r *Renderer) Draw(o *Overrides) {
	r.Clear()
	r.advance(o)
}

// Redraw paints the next frame without clearing, for callers that batch
// several waves behind a single clear.
func (r *Renderer) Redraw(o *Overrides) {
	r.advance(o)
}

// Clear clears the whole surface.
func (r *Renderer) Clear() {
	w, h := r.surface.Size()
	r.surface.ClearRect(0, 0, float64(w), float64(h))
}

func (r *Renderer) advance(o *Overrides) {
	r.params.Phase += float64(RandInt(r.rng, jitterMin, jitterMax)) + r.params.Shift

	amp, clr, ph, freq := r.params.Amplitude, r.params.Color, r.params.Phase, r.params.Frequency
	if o != nil {
		if o.Amplitude != 0 {
			amp = o.Amplitude
		}
		if o.Color != nil {
			clr = o.Color
		}
		if o.Phase != 0 {
			ph = o.Phase
		}
		if o.Frequency != 0 {
			freq = o.Frequency
		}
	}

	w, _ := r.surface.Size()
	for _, pt := range r.BuildCurve(float64(w), ph, clr, amp, freq) {
		r.renderPoint(pt.X, pt.Y, pt.Color)
	}
}

func (r *Renderer) renderPoint(x, y float64, c color.Color) {
	radius := r.params.LineWidth / 2

	if r.params.Outline {
		r.surface.FillCircle(x, y, radius, c)
	}
	if !r.params.Fill {
		return
	}

	_, h := r.surface.Size()
	top := y - radius
	height := float64(h) - y + radius
	if r.params.Gradient {
		g := NewVerticalGradient(x, y, x, float64(h))
		g.AddColorStop(0, c)
		g.AddColorStop(1, color.Transparent)
		r.surface.FillRectGradient(x-radius, top, radius, height, g)
		return
	}
	r.surface.FillRect(x-radius, top, radius, height, c)
}
