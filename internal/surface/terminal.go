package surface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/riteshkukreja/sine-wave/internal/wave"
)

const pointRune = '•'

// Terminal maps a virtual pixel plane onto the cells of a tcell screen.
// Outlines become colored runes and fills become cell backgrounds.
type Terminal struct {
	screen        tcell.Screen
	width, height int
}

// NewTerminal wraps screen with a width x height pixel plane. A zero width
// or height makes one pixel per cell.
func NewTerminal(screen tcell.Screen, width, height int) *Terminal {
	t := &Terminal{screen: screen, width: width, height: height}
	if width <= 0 || height <= 0 {
		cols, rows := screen.Size()
		t.width, t.height = cols, rows
	}
	return t
}

// Resize changes the virtual pixel plane.
func (t *Terminal) Resize(width, height int) {
	t.width, t.height = width, height
}

func (t *Terminal) Size() (int, int) { return t.width, t.height }

// Show flushes the frame to the terminal.
func (t *Terminal) Show() { t.screen.Show() }

func (t *Terminal) ClearRect(x, y, w, h float64) {
	c0, r0, c1, r1 := t.cellSpan(x, y, w, h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (t *Terminal) FillCircle(cx, cy, _ float64, c color.Color) {
	col, row, ok := t.cell(cx, cy)
	if !ok {
		return
	}
	_, _, style, _ := t.screen.GetContent(col, row)
	t.screen.SetContent(col, row, pointRune, nil, style.Foreground(toTcell(c)))
}

func (t *Terminal) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 || alpha(c) == 0 {
		return
	}
	c0, r0, c1, r1 := t.cellSpan(x, y, w, h)
	tc := toTcell(c)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.setBackground(col, row, tc)
		}
	}
}

// FillRectGradient samples the gradient at the center of every cell row.
// Colors are composited over black, which is what premultiplied RGB gives.
func (t *Terminal) FillRectGradient(x, y, w, h float64, g *wave.Gradient) {
	if w <= 0 || h <= 0 || g == nil {
		return
	}
	c0, r0, c1, r1 := t.cellSpan(x, y, w, h)
	_, rows := t.screen.Size()
	for row := r0; row < r1; row++ {
		py := (float64(row) + 0.5) * float64(t.height) / float64(rows)
		c := g.At(py)
		if c.A == 0 {
			continue
		}
		tc := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		for col := c0; col < c1; col++ {
			t.setBackground(col, row, tc)
		}
	}
}

func (t *Terminal) setBackground(col, row int, c tcell.Color) {
	mainc, comb, style, _ := t.screen.GetContent(col, row)
	t.screen.SetContent(col, row, mainc, comb, style.Background(c))
}

// cell maps a pixel coordinate to the cell containing it.
func (t *Terminal) cell(x, y float64) (int, int, bool) {
	cols, rows := t.screen.Size()
	if t.width <= 0 || t.height <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	col := int(x * float64(cols) / float64(t.width))
	row := int(y * float64(rows) / float64(t.height))
	if col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// cellSpan returns the half-open cell range covered by a pixel rect,
// clipped to the screen.
func (t *Terminal) cellSpan(x, y, w, h float64) (c0, r0, c1, r1 int) {
	cols, rows := t.screen.Size()
	if t.width <= 0 || t.height <= 0 {
		return 0, 0, 0, 0
	}
	sx := float64(cols) / float64(t.width)
	sy := float64(rows) / float64(t.height)
	c0 = clampInt(int(math.Floor(x*sx)), 0, cols)
	r0 = clampInt(int(math.Floor(y*sy)), 0, rows)
	c1 = clampInt(int(math.Ceil((x+w)*sx)), 0, cols)
	r1 = clampInt(int(math.Ceil((y+h)*sy)), 0, rows)
	return c0, r0, c1, r1
}

func toTcell(c color.Color) tcell.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func alpha(c color.Color) uint32 {
	if c == nil {
		return 0
	}
	_, _, _, a := c.RGBA()
	return a
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
