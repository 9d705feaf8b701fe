package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBeta reports a non-positive or NaN inverse temperature.
var ErrInvalidBeta = errors.New("core: inverse temperature must be positive")

// Temperature selects between a finite inverse temperature and the exact
// zero-temperature limit. The zero value is invalid; construct values with
// FiniteTemperature or ZeroTemperature and check them with Validate.
type Temperature struct {
	beta float64
	zero bool
}

// FiniteTemperature returns the temperature with inverse temperature beta.
// Passing beta = +Inf yields the zero-temperature variant, matching the
// common convention of encoding T = 0 as an infinite beta.
func FiniteTemperature(beta float64) Temperature {
	if math.IsInf(beta, 1) {
		return Temperature{zero: true}
	}
	return Temperature{beta: beta}
}

// ZeroTemperature returns the zero-temperature variant.
func ZeroTemperature() Temperature {
	return Temperature{zero: true}
}

// IsZero reports whether t is the zero-temperature variant.
func (t Temperature) IsZero() bool {
	return t.zero
}

// Beta returns the inverse temperature, +Inf for the zero-temperature
// variant.
func (t Temperature) Beta() float64 {
	if t.zero {
		return math.Inf(1)
	}
	return t.beta
}

// Validate reports whether t describes a usable temperature.
func (t Temperature) Validate() error {
	if t.zero {
		return nil
	}
	if t.beta <= 0 || math.IsNaN(t.beta) {
		return fmt.Errorf("%w: beta=%g", ErrInvalidBeta, t.beta)
	}
	return nil
}

// CothHalf returns the thermal weighting factor coth(beta*x/2). At zero
// temperature the factor collapses to the sign of x.
func (t Temperature) CothHalf(x float64) float64 {
	if t.zero {
		return math.Copysign(1, x)
	}
	return Coth(t.beta * x / 2)
}

// CothHalfComplex returns coth(beta*z/2) for complex z. At zero temperature
// the limit is the sign of the real part of z.
func (t Temperature) CothHalfComplex(z complex128) complex128 {
	if t.zero {
		return complex(math.Copysign(1, real(z)), 0)
	}
	return CothComplex(complex(t.beta/2, 0) * z)
}

// String implements fmt.Stringer.
func (t Temperature) String() string {
	if t.zero {
		return "T=0"
	}
	return fmt.Sprintf("beta=%g", t.beta)
}
