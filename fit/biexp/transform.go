package biexp

import "math"

// boundTransform maps an unconstrained search variable u onto a bounded
// parameter value, so the minimizer can run without constraint handling.
// The mapping depends on which bounds are finite:
//
//	(-inf, +inf)  theta = u
//	[lo,  +inf)   theta = lo + u*u
//	(-inf,  hi]   theta = hi - u*u
//	[lo,    hi]   theta = lo + (hi-lo)*(sin(u)+1)/2
type boundTransform struct {
	lo, hi float64
}

// value maps the search variable to the bounded parameter.
func (b boundTransform) value(u float64) float64 {
	switch {
	case math.IsInf(b.lo, -1) && math.IsInf(b.hi, 1):
		return u
	case math.IsInf(b.hi, 1):
		return b.lo + u*u
	case math.IsInf(b.lo, -1):
		return b.hi - u*u
	default:
		return b.lo + (b.hi-b.lo)*(math.Sin(u)+1)/2
	}
}

// deriv is d(value)/du, the chain-rule factor for analytic gradients.
func (b boundTransform) deriv(u float64) float64 {
	switch {
	case math.IsInf(b.lo, -1) && math.IsInf(b.hi, 1):
		return 1
	case math.IsInf(b.hi, 1):
		return 2 * u
	case math.IsInf(b.lo, -1):
		return -2 * u
	default:
		return (b.hi - b.lo) * math.Cos(u) / 2
	}
}

// invert maps a parameter value inside the bounds back to a search
// variable. The caller must clamp the value to the interior first; at a
// bound the transform derivative vanishes and the minimizer cannot move
// that coordinate.
func (b boundTransform) invert(theta float64) float64 {
	switch {
	case math.IsInf(b.lo, -1) && math.IsInf(b.hi, 1):
		return theta
	case math.IsInf(b.hi, 1):
		return math.Sqrt(theta - b.lo)
	case math.IsInf(b.lo, -1):
		return math.Sqrt(b.hi - theta)
	default:
		if b.hi == b.lo {
			return 0
		}
		return math.Asin(2*(theta-b.lo)/(b.hi-b.lo) - 1)
	}
}

// clampInterior moves v strictly inside [lo, hi] so that invert lands at
// a point with nonzero transform derivative.
func clampInterior(v, lo, hi float64) float64 {
	const nudge = 1e-3

	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return v
	case math.IsInf(hi, 1):
		if v <= lo {
			return lo + nudge
		}
		return v
	case math.IsInf(lo, -1):
		if v >= hi {
			return hi - nudge
		}
		return v
	default:
		w := hi - lo
		if w == 0 {
			return lo
		}
		if v < lo+nudge*w {
			return lo + nudge*w
		}
		if v > hi-nudge*w {
			return hi - nudge*w
		}
		return v
	}
}
