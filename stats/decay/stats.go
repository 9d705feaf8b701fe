package decay

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch reports two sample slices of unequal length.
var ErrLengthMismatch = errors.New("decay: slices must have the same length")

// Stats holds summary statistics of a sampled decay trace, such as a bath
// correlation function or the residual between a reconstruction and a
// reference.
type Stats struct {
	N           int
	MaxAbs      float64 // peak absolute value
	MaxAbsIndex int     // index of the first sample attaining MaxAbs
	Mean        float64
	RMS         float64
	Final       float64 // last sample
}

// Calculate computes summary statistics of a real-valued trace. An empty
// slice yields a zero-valued Stats.
func Calculate(x []float64) Stats {
	n := len(x)
	if n == 0 {
		return Stats{}
	}

	maxAbs := vecmath.MaxAbs(x)

	idx := 0
	for i, v := range x {
		if math.Abs(v) == maxAbs {
			idx = i
			break
		}
	}

	nf := float64(n)

	return Stats{
		N:           n,
		MaxAbs:      maxAbs,
		MaxAbsIndex: idx,
		Mean:        vecmath.Sum(x) / nf,
		RMS:         math.Sqrt(vecmath.DotProduct(x, x) / nf),
		Final:       x[n-1],
	}
}

// CalculateComplex computes summary statistics of the magnitudes |x[i]| of a
// complex-valued trace. Mean and Final therefore refer to magnitudes and are
// non-negative.
func CalculateComplex(x []complex128) Stats {
	n := len(x)
	if n == 0 {
		return Stats{}
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	return Calculate(mag)
}

// MaxAbsDiff returns the largest per-sample magnitude |a[i]-b[i]| between two
// complex traces of equal length. It is the discrepancy measure used to
// compare a reconstructed correlation function against reference samples.
func MaxAbsDiff(a, b []complex128) (float64, error) {
	s, err := diffStats(a, b)
	if err != nil {
		return 0, err
	}

	return s.MaxAbs, nil
}

// RMSDiff returns the root-mean-square of the per-sample magnitudes
// |a[i]-b[i]| between two complex traces of equal length.
func RMSDiff(a, b []complex128) (float64, error) {
	s, err := diffStats(a, b)
	if err != nil {
		return 0, err
	}

	return s.RMS, nil
}

func diffStats(a, b []complex128) (Stats, error) {
	if len(a) != len(b) {
		return Stats{}, ErrLengthMismatch
	}

	d := make([]complex128, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}

	return CalculateComplex(d), nil
}
