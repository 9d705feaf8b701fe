// Package core provides the numeric kernels shared by the bath packages:
// hyperbolic cotangents, exponential-series evaluation, and the temperature
// representation consumed by every thermal formula.
//
// # Exponential decompositions
//
// Bath correlation functions are exchanged between packages as exponential
// decompositions, a pair of equal-length complex slices (ck, vk) describing
//
//	C(t) = sum_k ck[k] * exp(vk[k]*t)
//
// Decompositions describe physical correlation functions for t >= 0 only;
// evaluating one at negative times is the caller's mistake and is not
// diagnosed here.
//
// # Temperature
//
// Temperature is a tagged variant over a finite inverse temperature beta and
// the zero-temperature limit. Thermal weighting factors are obtained through
// its CothHalf methods, which evaluate the exact beta -> inf limits so that
// downstream formulas never special-case infinity inline.
package core
