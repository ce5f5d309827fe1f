package wave

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

type call struct {
	op         string
	x, y, w, h float64
	c          color.Color
	g          *Gradient
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	width, height int
	calls         []call
}

func (s *recorder) Size() (int, int) { return s.width, s.height }

func (s *recorder) ClearRect(x, y, w, h float64) {
	s.calls = append(s.calls, call{op: "clear", x: x, y: y, w: w, h: h})
}

func (s *recorder) FillCircle(cx, cy, r float64, c color.Color) {
	s.calls = append(s.calls, call{op: "circle", x: cx, y: cy, w: r, c: c})
}

func (s *recorder) FillRect(x, y, w, h float64, c color.Color) {
	s.calls = append(s.calls, call{op: "rect", x: x, y: y, w: w, h: h, c: c})
}

func (s *recorder) FillRectGradient(x, y, w, h float64, g *Gradient) {
	s.calls = append(s.calls, call{op: "gradient", x: x, y: y, w: w, h: h, g: g})
}

func (s *recorder) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewRequiresSurface(t *testing.T) {
	r, err := New(nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil renderer, got %+v", r)
	}
}

func TestNewDefaults(t *testing.T) {
	r, err := New(&recorder{width: 800, height: 600})
	if err != nil {
		t.Fatal(err)
	}
	p := r.Params()

	if p.Frequency != 0.005 || p.Phase != 30 || p.Amplitude != 50 {
		t.Errorf("unexpected sine defaults: %+v", p)
	}
	if p.Shift != 10 || p.LineWidth != 4 || p.Damping != 0.5 {
		t.Errorf("unexpected shape defaults: %+v", p)
	}
	if !p.Outline || p.Fill || p.Gradient || p.FixedStart || p.FixedEnd {
		t.Errorf("unexpected flag defaults: %+v", p)
	}
	if p.Origin != (Point{X: 0, Y: 300}) {
		t.Errorf("origin = %+v, want (0, 300)", p.Origin)
	}
	if got := toRGBA(p.Color); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("color = %v, want red", got)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	r, err := New(&recorder{width: 100, height: 100},
		WithFrequency(0.01),
		WithPhase(0),
		WithAmplitude(20),
		WithColor(blue),
		WithShift(-5),
		WithLineWidth(8),
		WithOutline(false),
		WithFill(true),
		WithGradient(true),
		WithFixedStart(true),
		WithFixedEnd(true),
		WithDamping(1),
		WithOrigin(Point{X: 10, Y: 20}),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := Params{
		Frequency: 0.01, Phase: 0, Amplitude: 20, Color: blue, Shift: -5, LineWidth: 8,
		Outline: false, Fill: true, Gradient: true, FixedStart: true, FixedEnd: true,
		Damping: 1, Origin: Point{X: 10, Y: 20},
	}
	if got := r.Params(); got != want {
		t.Errorf("params = %+v, want %+v", got, want)
	}
}

func TestSample(t *testing.T) {
	tests := []struct {
		x, phase, amp, freq float64
	}{
		{0, 0, 50, 0.005},
		{0, 30, 50, 0.005},
		{123, 45, 70, 0.01},
		{-40, 360, 100, 0.5},
		{800, -70, 0, 0.005},
	}
	for _, tt := range tests {
		want := tt.amp * math.Sin(tt.freq*(tt.x+tt.phase))
		if got := Sample(tt.x, tt.phase, tt.amp, tt.freq); math.Abs(got-want) > epsilon {
			t.Errorf("Sample(%v, %v, %v, %v) = %v, want %v", tt.x, tt.phase, tt.amp, tt.freq, got, want)
		}
	}
}

func TestDampingFactor(t *testing.T) {
	for _, s := range []float64{0, 0.25, 0.5, 1} {
		if got := DampingFactor(800, 0, s); got != 0 {
			t.Errorf("DampingFactor(800, 0, %v) = %v, want 0", s, got)
		}
		if got := DampingFactor(800, 800, s); got != 0 {
			t.Errorf("DampingFactor(800, 800, %v) = %v, want 0", s, got)
		}
		if got := DampingFactor(800, 400, s); math.Abs(got-s/2) > epsilon {
			t.Errorf("DampingFactor(800, 400, %v) = %v, want %v", s, got, s/2)
		}
	}
	if got := DampingFactor(0, 10, 0.5); got != 0 {
		t.Errorf("DampingFactor with zero end = %v, want 0", got)
	}
}

func TestLinearMap(t *testing.T) {
	tests := []struct {
		name string
		num  float64

		inMin, inMax   float64
		outMin, outMax float64
		want           float64
	}{
		{"low end", 0, 0, 800, 0, 0.5, 0},
		{"high end", 800, 0, 800, 0, 0.5, 0.5},
		{"middle", 400, 0, 800, 0, 1, 0.5},
		{"offset range", 15, 10, 20, 100, 200, 150},
		{"inverted output", 10, 10, 20, 1, 0, 1},
		{"degenerate input", 5, 3, 3, 7, 9, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearMap(tt.num, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildCurveUndamped(t *testing.T) {
	r, err := New(&recorder{width: 800, height: 600}, WithOrigin(Point{X: 0, Y: 300}))
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{R: 255, A: 255}
	pts := r.BuildCurve(800, 30, red, 50, 0.005)

	if len(pts) != 800 {
		t.Fatalf("len = %d, want 800", len(pts))
	}
	for i, pt := range pts {
		if pt.X != float64(i) {
			t.Fatalf("point %d has x=%v", i, pt.X)
		}
		want := 300 + Sample(pt.X, 30, 50, 0.005)
		if math.Abs(pt.Y-want) > epsilon {
			t.Fatalf("point %d: y=%v, want %v", i, pt.Y, want)
		}
		if pt.Color != color.Color(red) {
			t.Fatalf("point %d: color=%v", i, pt.Color)
		}
	}

	first := pts[0]
	if math.Abs(first.Y-307.4719) > 1e-3 {
		t.Errorf("first point y = %v, want ~307.47", first.Y)
	}
}

func TestBuildCurveEndpointPolicy(t *testing.T) {
	const (
		width   = 200.0
		damping = 0.5
		amp     = 80.0
		freq    = 0.05
		phase   = 17.0
	)
	origin := Point{X: 10, Y: 100}

	tests := []struct {
		name       string
		start, end bool
		factor     func(x float64) float64
	}{
		{"both", true, true, func(x float64) float64 {
			return DampingFactor(origin.X+width, x, damping)
		}},
		{"start only", true, false, func(x float64) float64 {
			return LinearMap(x, origin.X, origin.X+width, 0, damping)
		}},
		{"end only", false, true, func(x float64) float64 {
			return damping - LinearMap(x, origin.X, origin.X+width, 0, damping)
		}},
		{"neither", false, false, func(float64) float64 { return 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(&recorder{width: int(width), height: 200},
				WithOrigin(origin), WithFixedStart(tt.start), WithFixedEnd(tt.end), WithDamping(damping))
			if err != nil {
				t.Fatal(err)
			}
			pts := r.BuildCurve(width, phase, color.White, amp, freq)
			if len(pts) != int(width) {
				t.Fatalf("len = %d, want %d", len(pts), int(width))
			}
			for _, pt := range pts {
				want := origin.Y + tt.factor(pt.X)*Sample(pt.X, phase, amp, freq)
				if math.Abs(pt.Y-want) > epsilon {
					t.Fatalf("x=%v: y=%v, want %v", pt.X, pt.Y, want)
				}
			}
		})
	}
}

func TestBuildCurveStartOnlyBeginsAtOrigin(t *testing.T) {
	r, _ := New(&recorder{width: 400, height: 400}, WithFixedStart(true), WithOrigin(Point{Y: 200}))
	pts := r.BuildCurve(400, 90, color.White, 100, 0.02)
	if pts[0].Y != 200 {
		t.Errorf("start y = %v, want origin", pts[0].Y)
	}
}

func TestBuildCurveBothFixedConvergesToOrigin(t *testing.T) {
	r, _ := New(&recorder{width: 800, height: 600},
		WithFixedStart(true), WithFixedEnd(true), WithOrigin(Point{X: 0, Y: 300}))
	pts := r.BuildCurve(800, 30, color.White, 50, 0.005)

	if got := pts[0].Y; got != 300 {
		t.Errorf("first y = %v, want 300", got)
	}
	// one pixel short of the end the damping factor is 2*(1/800)*(799/800)*0.5
	if got := pts[len(pts)-1].Y; math.Abs(got-300) > 0.1 {
		t.Errorf("last y = %v, want ~300", got)
	}
	mid := pts[400].Y - 300
	if math.Abs(mid) < math.Abs(pts[len(pts)-1].Y-300) {
		t.Errorf("midpoint offset %v should exceed the end offset", mid)
	}
}

func TestBuildCurveZeroWavelength(t *testing.T) {
	r, _ := New(&recorder{width: 0, height: 0}, WithFixedStart(true))
	if pts := r.BuildCurve(0, 0, color.White, 50, 0.005); len(pts) != 0 {
		t.Errorf("expected no points, got %d", len(pts))
	}
}

func TestDrawClearsThenPaints(t *testing.T) {
	s := &recorder{width: 50, height: 40}
	r, _ := New(s, WithRand(seeded()))
	r.Draw(nil)

	if len(s.calls) == 0 || s.calls[0].op != "clear" {
		t.Fatalf("first call should be a clear, got %+v", s.calls)
	}
	if c := s.calls[0]; c.x != 0 || c.y != 0 || c.w != 50 || c.h != 40 {
		t.Errorf("clear region = %+v, want full surface", c)
	}
	if got := s.count("circle"); got != 50 {
		t.Errorf("circles = %d, want 50", got)
	}
	if got := s.count("rect") + s.count("gradient"); got != 0 {
		t.Errorf("unexpected fills: %d", got)
	}
}

func TestRedrawDoesNotClear(t *testing.T) {
	s := &recorder{width: 30, height: 30}
	r, _ := New(s, WithRand(seeded()))
	r.Redraw(nil)

	if got := s.count("clear"); got != 0 {
		t.Errorf("clears = %d, want 0", got)
	}
	if got := s.count("circle"); got != 30 {
		t.Errorf("circles = %d, want 30", got)
	}
}

func TestAdvancePhase(t *testing.T) {
	r, _ := New(&recorder{width: 10, height: 10}, WithPhase(100), WithShift(-20), WithRand(seeded()))

	prev := r.Params().Phase
	for i := 0; i < 50; i++ {
		r.Redraw(nil)
		step := r.Params().Phase - prev
		if step < 10-20 || step > 14-20 {
			t.Fatalf("frame %d: phase step %v outside [-10, -6]", i, step)
		}
		prev = r.Params().Phase
	}
}

func TestOverridesApplyForOneFrame(t *testing.T) {
	s := &recorder{width: 20, height: 100}
	r, _ := New(s, WithOrigin(Point{Y: 50}), WithRand(seeded()))
	green := color.RGBA{G: 255, A: 255}

	r.Redraw(&Overrides{Amplitude: 10, Phase: 5, Frequency: 0.1, Color: green})
	for i, c := range s.calls {
		want := 50 + Sample(c.x, 5, 10, 0.1)
		if math.Abs(c.y-want) > epsilon {
			t.Fatalf("call %d: y=%v, want %v", i, c.y, want)
		}
		if c.c != color.Color(green) {
			t.Fatalf("call %d: color=%v", i, c.c)
		}
	}

	// overrides do not stick
	if got := r.Params().Amplitude; got != 50 {
		t.Errorf("amplitude = %v after override, want 50", got)
	}
}

func TestOverridesZeroFieldsFallBack(t *testing.T) {
	s := &recorder{width: 5, height: 100}
	r, _ := New(s, WithOrigin(Point{Y: 50}), WithRand(seeded()))

	r.Redraw(&Overrides{Amplitude: 25})
	phase := r.Params().Phase
	for _, c := range s.calls {
		want := 50 + Sample(c.x, phase, 25, 0.005)
		if math.Abs(c.y-want) > epsilon {
			t.Fatalf("x=%v: y=%v, want %v", c.x, c.y, want)
		}
	}
}

func TestRenderPointFill(t *testing.T) {
	s := &recorder{width: 1, height: 100}
	r, _ := New(s, WithFill(true), WithOutline(false), WithLineWidth(6), WithRand(seeded()))
	r.renderPoint(10, 40, color.White)

	if len(s.calls) != 1 || s.calls[0].op != "rect" {
		t.Fatalf("calls = %+v, want one rect", s.calls)
	}
	c := s.calls[0]
	if c.x != 7 || c.y != 37 || c.w != 3 || c.h != 63 {
		t.Errorf("rect = (%v, %v, %v, %v), want (7, 37, 3, 63)", c.x, c.y, c.w, c.h)
	}
}

func TestRenderPointGradient(t *testing.T) {
	s := &recorder{width: 1, height: 100}
	red := color.RGBA{R: 255, A: 255}
	r, _ := New(s, WithFill(true), WithGradient(true), WithRand(seeded()))
	r.renderPoint(10, 40, red)

	if got := s.count("circle"); got != 1 {
		t.Errorf("circles = %d, want 1", got)
	}
	if got := s.count("gradient"); got != 1 {
		t.Fatalf("gradients = %d, want 1", got)
	}
	g := s.calls[1].g
	if g.Y0 != 40 || g.Y1 != 100 {
		t.Errorf("gradient spans %v..%v, want 40..100", g.Y0, g.Y1)
	}
	if got := g.At(40); got != red {
		t.Errorf("gradient top = %v, want %v", got, red)
	}
	if got := g.At(100); got.A != 0 {
		t.Errorf("gradient bottom alpha = %d, want 0", got.A)
	}
}

func TestGradientWithoutFillIsIgnored(t *testing.T) {
	s := &recorder{width: 10, height: 10}
	r, _ := New(s, WithGradient(true), WithRand(seeded()))
	r.Redraw(nil)
	if got := s.count("gradient"); got != 0 {
		t.Errorf("gradients = %d, want 0", got)
	}
}

func TestRandInt(t *testing.T) {
	rng := seeded()
	for i := 0; i < 1000; i++ {
		if v := RandInt(rng, -70, 70); v < -70 || v >= 70 {
			t.Fatalf("RandInt out of range: %d", v)
		}
	}
	if v := RandInt(rng, 5, 5); v != 5 {
		t.Errorf("empty range = %d, want 5", v)
	}
}

func TestNewRejectsNilPointerSurface(t *testing.T) {
	var s *recorder
	r, err := New(s)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil renderer, got %+v", r)
	}
}

func TestWithParamsKeepsDefaultsForZeroFields(t *testing.T) {
	s := &recorder{width: 20, height: 20}
	r, err := New(s, WithParams(Params{Amplitude: 5, Outline: true, LineWidth: 4}), WithRand(seeded()))
	if err != nil {
		t.Fatal(err)
	}
	p := r.Params()
	if p.Amplitude != 5 || p.LineWidth != 4 || !p.Outline {
		t.Errorf("set fields not applied: %+v", p)
	}
	if p.Frequency != 0.005 || p.Phase != 30 || p.Shift != 10 || p.Damping != 0.5 {
		t.Errorf("zero fields should keep defaults: %+v", p)
	}
	if p.Origin != (Point{X: 0, Y: 10}) {
		t.Errorf("origin = %+v, want (0, 10)", p.Origin)
	}
	if p.Color == nil {
		t.Fatal("color should keep the default")
	}

	r.Draw(nil)
	if got := s.count("circle"); got != 20 {
		t.Errorf("circles = %d, want 20", got)
	}
	for i, c := range s.calls {
		if c.op == "circle" && c.c == nil {
			t.Fatalf("call %d painted with a nil color", i)
		}
	}
}

func TestWithParamsCopiesFlags(t *testing.T) {
	r, _ := New(&recorder{width: 10, height: 10}, WithParams(Params{Fill: true, FixedEnd: true}))
	p := r.Params()
	if p.Outline || !p.Fill || !p.FixedEnd || p.FixedStart || p.Gradient {
		t.Errorf("flags not copied: %+v", p)
	}
}

func TestBuildCurveOutOfRangeDamping(t *testing.T) {
	const width = 100.0
	origin := Point{X: 0, Y: 50}

	for _, d := range []float64{1.5, -0.2} {
		r, err := New(&recorder{width: int(width), height: 100},
			WithOrigin(origin), WithFixedStart(true), WithDamping(d))
		if err != nil {
			t.Fatalf("damping %v rejected: %v", d, err)
		}
		if got := r.Params().Damping; got != d {
			t.Errorf("damping = %v, want %v unchanged", got, d)
		}
		for _, pt := range r.BuildCurve(width, 10, color.White, 40, 0.03) {
			want := origin.Y + LinearMap(pt.X, 0, width, 0, d)*Sample(pt.X, 10, 40, 0.03)
			if math.Abs(pt.Y-want) > epsilon {
				t.Fatalf("damping %v, x=%v: y=%v, want %v", d, pt.X, pt.Y, want)
			}
		}
	}
}
