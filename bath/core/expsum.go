package core

import (
	"errors"
	"math/cmplx"
)

var (
	// ErrLengthMismatch reports coefficient and exponent slices of unequal
	// length.
	ErrLengthMismatch = errors.New("core: ck and vk must have the same length")
	// ErrEmptyDecomposition reports a decomposition without any terms.
	ErrEmptyDecomposition = errors.New("core: decomposition must contain at least one term")
	// ErrDstLength reports a destination slice whose length does not match
	// the time grid.
	ErrDstLength = errors.New("core: dst length must match tlist length")
)

// ExpSum evaluates the exponential series
//
//	y(t) = sum_k ck[k] * exp(vk[k]*t)
//
// at every point of tlist and returns the resulting samples. It is the
// reconstruction primitive for correlation functions given as exponential
// decompositions.
func ExpSum(ck, vk []complex128, tlist []float64) ([]complex128, error) {
	out := make([]complex128, len(tlist))
	if err := ExpSumInto(out, ck, vk, tlist); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpSumInto is ExpSum writing into dst, which must have the same length as
// tlist. It performs no allocations.
func ExpSumInto(dst []complex128, ck, vk []complex128, tlist []float64) error {
	if len(ck) != len(vk) {
		return ErrLengthMismatch
	}
	if len(ck) == 0 {
		return ErrEmptyDecomposition
	}
	if len(dst) != len(tlist) {
		return ErrDstLength
	}
	for m, t := range tlist {
		var sum complex128
		for k := range ck {
			sum += ck[k] * cmplx.Exp(vk[k]*complex(t, 0))
		}
		dst[m] = sum
	}
	return nil
}
