package wave

import (
	"image/color"
	"sort"
)

// Surface is the drawing target a Renderer paints on. Coordinates are in
// pixels with the origin at the top-left corner.
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillRectGradient(x, y, w, h float64, g *Gradient)
}

// ColorStop is one stop of a Gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// Gradient is a linear gradient along the vertical axis from Y0 to Y1.
// X0 and X1 are kept for surfaces that position the gradient box.
type Gradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

func NewVerticalGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset. Stops with
// equal offsets keep insertion order.
func (g *Gradient) AddColorStop(offset float64, c color.Color) {
	offset = clamp01(offset)
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, ColorStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = ColorStop{Offset: offset, Color: c}
}

// At returns the premultiplied color of the gradient at row y.
func (g *Gradient) At(y float64) color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}
	var t float64
	if g.Y1 != g.Y0 {
		t = clamp01((y - g.Y0) / (g.Y1 - g.Y0))
	}

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return toRGBA(first.Color)
	}
	if t >= last.Offset {
		return toRGBA(last.Color)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span == 0 {
			return toRGBA(b.Color)
		}
		return lerpRGBA(toRGBA(a.Color), toRGBA(b.Color), (t-a.Offset)/span)
	}
	return toRGBA(last.Color)
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Bands returns the edges of [top, bottom] split at every stop position that
// falls strictly inside it. Between two edges the gradient is linear.
func (g *Gradient) Bands(top, bottom float64) []float64 {
	rows := []float64{top}
	for _, st := range g.Stops {
		ry := g.Y0 + st.Offset*(g.Y1-g.Y0)
		if ry > rows[len(rows)-1] && ry < bottom {
			rows = append(rows, ry)
		}
	}
	return append(rows, bottom)
}
