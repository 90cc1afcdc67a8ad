package anim

import "math"

// Easing selects the curve a Tween follows
type Easing int

const (
	Linear Easing = iota
	// EaseInOut is the symmetric in/out form of the CSS "ease" curve.
	EaseInOut
)

// String returns the easing name
func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseInOut:
		return "ease-in-out"
	default:
		return "unknown"
	}
}

// ease is the CSS "ease" timing function
var ease = newUnitBezier(0.25, 0.1, 0.25, 1)

// Apply maps linear progress x in [0,1] to eased progress.
// Unknown easings behave as Linear.
func (e Easing) Apply(x float64) float64 {
	x = clamp01(x)
	switch e {
	case EaseInOut:
		if x < 0.5 {
			return ease.solve(x*2) / 2
		}
		return 1 - ease.solve((1-x)*2)/2
	default:
		return x
	}
}

// unitBezier is a cubic bezier from (0,0) to (1,1) with control points
// (p1x,p1y) and (p2x,p2y), solved for y given x.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(p1x, p1y, p2x, p2y float64) unitBezier {
	var b unitBezier
	b.cx = 3 * p1x
	b.bx = 3*(p2x-p1x) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * p1y
	b.by = 3*(p2y-p1y) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

func (b unitBezier) sampleX(t float64) float64 { return ((b.ax*t+b.bx)*t + b.cx) * t }
func (b unitBezier) sampleY(t float64) float64 { return ((b.ay*t+b.by)*t + b.cy) * t }
func (b unitBezier) sampleDX(t float64) float64 {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

const bezierEpsilon = 1e-6

// solveT finds the curve parameter for x: Newton first, bisection fallback.
func (b unitBezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		err := b.sampleX(t) - x
		if math.Abs(err) < bezierEpsilon {
			return t
		}
		d := b.sampleDX(t)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		v := b.sampleX(t)
		if math.Abs(v-x) < bezierEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		next := (hi-lo)/2 + lo
		if next == t {
			break
		}
		t = next
	}
	return t
}

func (b unitBezier) solve(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.sampleY(b.solveT(x))
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
