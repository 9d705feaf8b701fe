package core

import (
	"math"
	"math/cmplx"
)

// Coth returns the hyperbolic cotangent 1/tanh(x).
//
// The function diverges at the origin and no guard is applied: Coth(0)
// returns +Inf and Coth(-0) returns -Inf, following IEEE division. Callers
// evaluating thermal factors should prefer Temperature.CothHalf, which
// handles the limits that actually occur in the formulas.
func Coth(x float64) float64 {
	return 1 / math.Tanh(x)
}

// CothComplex returns the hyperbolic cotangent of z.
func CothComplex(z complex128) complex128 {
	return 1 / cmplx.Tanh(z)
}
