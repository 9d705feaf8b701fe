// Package quadrature provides adaptive one-dimensional integration built on
// fixed-order Gauss-Legendre rules. Intervals are bisected until a coarse and
// a refined estimate agree within tolerance, so smooth integrands converge in
// a handful of panels while oscillatory ones subdivide where needed.
package quadrature

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	defaultAbsTol       = 1e-10
	defaultRelTol       = 1e-8
	defaultMaxIntervals = 512
	defaultPoints       = 15
)

var (
	// ErrNotConverged reports that the interval budget was exhausted before
	// the requested tolerance was reached.
	ErrNotConverged = errors.New("quadrature: integral did not converge within the interval budget")
	// ErrBadIntegrand reports a non-finite panel estimate, typically caused
	// by an integrand singularity inside the domain.
	ErrBadIntegrand = errors.New("quadrature: integrand produced a non-finite panel estimate")
	// ErrNilIntegrand reports a nil integrand function.
	ErrNilIntegrand = errors.New("quadrature: integrand is nil")
	// ErrInvalidInterval reports non-finite interval bounds.
	ErrInvalidInterval = errors.New("quadrature: interval bounds must be finite")
)

// Options controls the adaptive scheme. The zero value selects defaults.
type Options struct {
	// AbsTol is the absolute tolerance budget for the whole interval,
	// apportioned to panels by width. Default 1e-10.
	AbsTol float64
	// RelTol is the relative tolerance applied per panel. Default 1e-8.
	RelTol float64
	// MaxIntervals bounds the number of panels examined before the
	// integration is abandoned. Default 512.
	MaxIntervals int
	// Points is the Gauss-Legendre order of the coarse estimate; the
	// refined estimate uses 2*Points+1 nodes. Default 15.
	Points int
}

func normalizeOptions(o Options) Options {
	if o.AbsTol <= 0 {
		o.AbsTol = defaultAbsTol
	}
	if o.RelTol <= 0 {
		o.RelTol = defaultRelTol
	}
	if o.MaxIntervals <= 0 {
		o.MaxIntervals = defaultMaxIntervals
	}
	if o.Points <= 0 {
		o.Points = defaultPoints
	}
	return o
}

type interval struct {
	a, b float64
}

// Finite integrates f over [a, b]. It returns the integral value together
// with an error estimate accumulated from the accepted panels. Integrating
// backwards (b < a) negates the result.
//
// Each panel is estimated with an n-point and a (2n+1)-point Gauss-Legendre
// rule; if the two disagree beyond tolerance the panel is bisected. Gauss
// nodes are strictly interior, so integrands may be singular at the interval
// endpoints as long as the integral itself exists.
func Finite(f func(float64) float64, a, b float64, opts Options) (value, errEst float64, err error) {
	if f == nil {
		return 0, 0, ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, 0, ErrInvalidInterval
	}
	if a == b {
		return 0, 0, nil
	}
	if b < a {
		value, errEst, err = Finite(f, b, a, opts)
		return -value, errEst, err
	}
	opts = normalizeOptions(opts)

	span := b - a
	stack := []interval{{a, b}}
	examined := 0
	for len(stack) > 0 {
		if examined >= opts.MaxIntervals {
			return value, errEst, ErrNotConverged
		}
		examined++

		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		coarse := quad.Fixed(f, iv.a, iv.b, opts.Points, quad.Legendre{}, 0)
		fine := quad.Fixed(f, iv.a, iv.b, 2*opts.Points+1, quad.Legendre{}, 0)
		if math.IsNaN(fine) || math.IsInf(fine, 0) || math.IsNaN(coarse) || math.IsInf(coarse, 0) {
			return 0, 0, ErrBadIntegrand
		}

		width := iv.b - iv.a
		delta := math.Abs(fine - coarse)
		tol := opts.AbsTol*(width/span) + opts.RelTol*math.Abs(fine)
		if delta <= tol {
			value += fine
			errEst += delta
			continue
		}

		mid := 0.5 * (iv.a + iv.b)
		stack = append(stack, interval{iv.a, mid}, interval{mid, iv.b})
	}
	return value, errEst, nil
}

// SemiInfinite integrates f over [a, inf) using the substitution
//
//	x = a + s/(1-s),  dx = ds/(1-s)^2
//
// which maps the half line onto [0, 1). The integrand must decay fast enough
// for the transformed integral to exist; the s = 1 endpoint is never
// evaluated.
func SemiInfinite(f func(float64) float64, a float64, opts Options) (value, errEst float64, err error) {
	if f == nil {
		return 0, 0, ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, 0, ErrInvalidInterval
	}
	g := func(s float64) float64 {
		u := 1 - s
		return f(a+s/u) / (u * u)
	}
	return Finite(g, 0, 1, opts)
}
