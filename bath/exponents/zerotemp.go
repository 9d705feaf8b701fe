package exponents

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-bath/bath/brownian"
	"github.com/cwbudde/algo-bath/internal/quadrature"
)

// ErrNotConverged reports that the zero-temperature correction integral
// could not reach tolerance for some time point.
var ErrNotConverged = errors.New("exponents: zero-temperature integral did not converge")

// MatsubaraZero evaluates the zero-temperature Matsubara correction
//
//	f(t) = -lambda^2*gamma/pi * int_0^inf x*exp(-x*t) / ((a^2+x^2)*(conj(a)^2+x^2)) dx
//
// pointwise on tlist. The conjugate pole factors make the integrand real;
// the result is real and non-positive, approaching zero as t grows. Time
// points must be non-negative, the integral diverges otherwise.
//
// The correction exists for underdamped parameters only: in the overdamped
// regime a^2 turns negative real and the integrand has a pole on the
// integration path, which surfaces as a quadrature error.
func MatsubaraZero(p brownian.Params, tlist []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	pl := p.Poles()
	a2 := pl.A * pl.A
	pref := -p.CoupStrength * p.CoupStrength * p.CavBroad / math.Pi

	out := make([]float64, len(tlist))
	for i, t := range tlist {
		f := func(x float64) float64 {
			d := a2 + complex(x*x, 0)
			return x * math.Exp(-x*t) / real(d*cmplx.Conj(d))
		}
		v, _, err := quadrature.SemiInfinite(f, 0, quadrature.Options{})
		if err != nil {
			if errors.Is(err, quadrature.ErrNotConverged) {
				return nil, fmt.Errorf("exponents: t=%g: %w", t, ErrNotConverged)
			}
			return nil, fmt.Errorf("exponents: t=%g: %w", t, err)
		}
		out[i] = pref * v
	}
	return out, nil
}
