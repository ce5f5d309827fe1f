package game

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/riteshkukreja/sine-wave/internal/wave"
)

var (
	whiteOnce sync.Once

	// whiteSubImage is the source texture for gradient triangles.
	whiteSubImage *ebiten.Image
)

func whiteTexture() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// screenSurface draws onto the screen image handed to Game.Draw. Its size is
// the fixed layout size, so waves can be built before the first frame.
type screenSurface struct {
	width, height int
	dst           *ebiten.Image
}

func (s *screenSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *screenSurface) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillRectGradient draws the rect as a vertical triangle strip with one band
// per gradient stop so the GPU interpolation matches the stops exactly.
func (s *screenSurface) FillRectGradient(x, y, w, h float64, g *wave.Gradient) {
	if w <= 0 || h <= 0 || g == nil {
		return
	}
	rows := g.Bands(y, y+h)

	vs := make([]ebiten.Vertex, 0, len(rows)*2)
	is := make([]uint16, 0, (len(rows)-1)*6)
	for i, ry := range rows {
		c := g.At(ry)
		cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
		for _, vx := range [2]float64{x, x + w} {
			vs = append(vs, ebiten.Vertex{
				DstX: float32(vx), DstY: float32(ry),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		if i == 0 {
			continue
		}
		base := uint16((i - 1) * 2)
		is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	}

	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	s.dst.DrawTriangles(vs, is, whiteTexture(), op)
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
