package wave

import "image/color"

// Option configures a Renderer at construction.
type Option func(*Renderer)

// WithParams applies p over the current parameters. Zero numeric fields, a
// nil Color and a zero Origin keep their current value, like the per-frame
// overrides. The boolean flags are always copied. Later options still apply.
func WithParams(p Params) Option {
	return func(r *Renderer) {
		cur := &r.params
		if p.Frequency != 0 {
			cur.Frequency = p.Frequency
		}
		if p.Phase != 0 {
			cur.Phase = p.Phase
		}
		if p.Amplitude != 0 {
			cur.Amplitude = p.Amplitude
		}
		if p.Color != nil {
			cur.Color = p.Color
		}
		if p.Shift != 0 {
			cur.Shift = p.Shift
		}
		if p.LineWidth != 0 {
			cur.LineWidth = p.LineWidth
		}
		if p.Damping != 0 {
			cur.Damping = p.Damping
		}
		if p.Origin != (Point{}) {
			cur.Origin = p.Origin
		}
		cur.Outline = p.Outline
		cur.Fill = p.Fill
		cur.Gradient = p.Gradient
		cur.FixedStart = p.FixedStart
		cur.FixedEnd = p.FixedEnd
	}
}

func WithFrequency(f float64) Option {
	return func(r *Renderer) { r.params.Frequency = f }
}

func WithPhase(p float64) Option {
	return func(r *Renderer) { r.params.Phase = p }
}

func WithAmplitude(a float64) Option {
	return func(r *Renderer) { r.params.Amplitude = a }
}

func WithColor(c color.Color) Option {
	return func(r *Renderer) {
		if c != nil {
			r.params.Color = c
		}
	}
}

// WithShift sets the phase advance applied on every frame.
func WithShift(s float64) Option {
	return func(r *Renderer) { r.params.Shift = s }
}

// WithLineWidth sets the point diameter.
func WithLineWidth(w float64) Option {
	return func(r *Renderer) { r.params.LineWidth = w }
}

func WithOutline(on bool) Option {
	return func(r *Renderer) { r.params.Outline = on }
}

func WithFill(on bool) Option {
	return func(r *Renderer) { r.params.Fill = on }
}

// WithGradient fades the fill to transparent. It has no effect without WithFill.
func WithGradient(on bool) Option {
	return func(r *Renderer) { r.params.Gradient = on }
}

func WithFixedStart(on bool) Option {
	return func(r *Renderer) { r.params.FixedStart = on }
}

func WithFixedEnd(on bool) Option {
	return func(r *Renderer) { r.params.FixedEnd = on }
}

// WithDamping sets the damping strength. Values outside [0, 1] are accepted.
func WithDamping(d float64) Option {
	return func(r *Renderer) { r.params.Damping = d }
}

func WithOrigin(p Point) Option {
	return func(r *Renderer) { r.params.Origin = p }
}

// WithRand sets the source of the per-frame phase jitter.
func WithRand(rng IntNer) Option {
	return func(r *Renderer) {
		if rng != nil {
			r.rng = rng
		}
	}
}
