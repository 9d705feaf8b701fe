package correlation

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	// ErrSpectrumLength reports a spectrum length that is not a power of
	// two or is shorter than two samples.
	ErrSpectrumLength = errors.New("correlation: spectrum length must be a power of two, minimum 2")
	// ErrInvalidWmax reports a non-positive frequency half-range.
	ErrInvalidWmax = errors.New("correlation: wmax must be positive and finite")
)

// FromSpectrum recovers the correlation function from power spectrum samples
// by discrete Fourier inversion. The samples s[k] must lie on the uniform
// grid
//
//	w_k = -wmax + k*dw,  dw = 2*wmax/len(s)
//
// covering [-wmax, wmax). The result approximates
//
//	C(t_j) = 1/(2*pi) * int S(w)*exp(-i*w*t_j) dw,  t_j = pi*j/wmax
//
// for j < len(s)/2; later samples are dominated by the periodic image of the
// transform and are not returned. Accuracy improves with a denser grid
// (aliasing) and a wider half-range (spectral truncation).
func FromSpectrum(s []float64, wmax float64) (tlist []float64, corr []complex128, err error) {
	n := len(s)
	if n < 2 || n&(n-1) != 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrSpectrumLength, n)
	}
	if wmax <= 0 || math.IsNaN(wmax) || math.IsInf(wmax, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidWmax, wmax)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("correlation: create fft plan: %w", err)
	}
	src := make([]complex128, n)
	for i, v := range s {
		src[i] = complex(v, 0)
	}
	dst := make([]complex128, n)
	if err := plan.Forward(dst, src); err != nil {
		return nil, nil, fmt.Errorf("correlation: forward fft: %w", err)
	}

	// The grid offset -wmax contributes exp(i*wmax*t_j) = (-1)^j on top of
	// the plain DFT.
	dw := 2 * wmax / float64(n)
	scale := complex(dw/(2*math.Pi), 0)
	half := n / 2
	tlist = make([]float64, half)
	corr = make([]complex128, half)
	for j := 0; j < half; j++ {
		tlist[j] = math.Pi * float64(j) / wmax
		v := scale * dst[j]
		if j%2 == 1 {
			v = -v
		}
		corr[j] = v
	}
	return tlist, corr, nil
}
