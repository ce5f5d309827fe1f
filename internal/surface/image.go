// Package surface adapts offscreen and terminal targets to wave.Surface.
package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/riteshkukreja/sine-wave/internal/wave"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// Image paints onto an in-memory RGBA image with antialiased shapes.
type Image struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewImage(width, height int) *Image {
	return &Image{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// RGBA returns the backing image. It is live, not a copy.
func (s *Image) RGBA() *image.RGBA { return s.img }

func (s *Image) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Image) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *Image) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	z := s.begin()
	k := r * kappa
	z.MoveTo(f32(cx+r), f32(cy))
	z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
	z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
	z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
	z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	z.ClosePath()
	s.paint(image.NewUniform(c))
}

func (s *Image) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.rectPath(x, y, w, h)
	s.paint(image.NewUniform(c))
}

// FillRectGradient samples the gradient at every pixel row of the rect.
func (s *Image) FillRectGradient(x, y, w, h float64, g *wave.Gradient) {
	if w <= 0 || h <= 0 || g == nil {
		return
	}
	s.rectPath(x, y, w, h)
	s.paint(&rowGradient{g: g, bounds: s.img.Bounds()})
}

// WritePNG encodes the current contents.
func (s *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *Image) begin() *vector.Rasterizer {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	return s.z
}

func (s *Image) rectPath(x, y, w, h float64) {
	z := s.begin()
	z.MoveTo(f32(x), f32(y))
	z.LineTo(f32(x+w), f32(y))
	z.LineTo(f32(x+w), f32(y+h))
	z.LineTo(f32(x), f32(y+h))
	z.ClosePath()
}

func (s *Image) paint(src image.Image) {
	s.z.Draw(s.img, s.img.Bounds(), src, image.Point{})
}

// rowGradient exposes a wave.Gradient as an image source.
type rowGradient struct {
	g      *wave.Gradient
	bounds image.Rectangle
}

func (r *rowGradient) ColorModel() color.Model { return color.RGBAModel }
func (r *rowGradient) Bounds() image.Rectangle { return r.bounds }
func (r *rowGradient) At(_, y int) color.Color { return r.g.At(float64(y) + 0.5) }

func f32(v float64) float32 { return float32(v) }

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
