package correlation

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bath/bath/core"
	"github.com/cwbudde/algo-bath/internal/quadrature"
)

const (
	defaultAbsTol       = 1e-10
	defaultRelTol       = 1e-8
	defaultMaxIntervals = 512
)

var (
	// ErrNilSpectralDensity reports a nil spectral density function.
	ErrNilSpectralDensity = errors.New("correlation: spectral density function is nil")
	// ErrInvalidCutoff reports a non-positive or non-finite cutoff.
	ErrInvalidCutoff = errors.New("correlation: cutoff frequency must be positive and finite")
	// ErrNotConverged reports that the quadrature for at least one time
	// sample exhausted its interval budget.
	ErrNotConverged = errors.New("correlation: quadrature did not converge")
)

// SpectralDensity evaluates a bath spectral density at a real frequency.
// Model parameters are closed over by the function value; a method value of
// brownian.Params serves directly:
//
//	c, err := correlation.Bath(params.SpectralDensity, tlist, temp, cfg)
type SpectralDensity func(w float64) complex128

// Config controls the integration.
type Config struct {
	// Cutoff is the upper integration limit wcut. The spectral density
	// must be negligible beyond it. Required.
	Cutoff float64
	// AbsTol and RelTol are the quadrature tolerances per time sample.
	// Defaults 1e-10 and 1e-8.
	AbsTol float64
	RelTol float64
	// MaxIntervals bounds the adaptive subdivision per quadrature.
	// Default 512.
	MaxIntervals int
	// Workers caps the number of goroutines evaluating time samples.
	// Zero selects GOMAXPROCS; one runs serially. The result does not
	// depend on the worker count.
	Workers int
}

// DefaultConfig returns the default configuration for a given cutoff.
func DefaultConfig(cutoff float64) Config {
	return Config{
		Cutoff:       cutoff,
		AbsTol:       defaultAbsTol,
		RelTol:       defaultRelTol,
		MaxIntervals: defaultMaxIntervals,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.AbsTol <= 0 {
		cfg.AbsTol = defaultAbsTol
	}
	if cfg.RelTol <= 0 {
		cfg.RelTol = defaultRelTol
	}
	if cfg.MaxIntervals <= 0 {
		cfg.MaxIntervals = defaultMaxIntervals
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// Bath integrates the bath correlation function
//
//	C(t) = 1/pi * int_0^wcut [ coth(beta*w/2)*cos(w*t) - i*sin(w*t) ] * Re J(w) dw
//
// at every point of tlist. At zero temperature the thermal factor is exactly
// one across the integration domain, so the beta -> inf limit integrates
// cleanly instead of degenerating.
//
// The real and imaginary parts of each sample are separate adaptive
// quadratures; a sample whose quadrature cannot reach tolerance fails the
// whole call with an error wrapping ErrNotConverged.
func Bath(j SpectralDensity, tlist []float64, temp core.Temperature, cfg Config) ([]complex128, error) {
	if j == nil {
		return nil, ErrNilSpectralDensity
	}
	if err := temp.Validate(); err != nil {
		return nil, err
	}
	if cfg.Cutoff <= 0 || math.IsNaN(cfg.Cutoff) || math.IsInf(cfg.Cutoff, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidCutoff, cfg.Cutoff)
	}
	cfg = normalizeConfig(cfg)

	if len(tlist) == 0 {
		return []complex128{}, nil
	}

	opts := quadrature.Options{
		AbsTol:       cfg.AbsTol,
		RelTol:       cfg.RelTol,
		MaxIntervals: cfg.MaxIntervals,
	}

	re := make([]float64, len(tlist))
	im := make([]float64, len(tlist))

	workers := cfg.Workers
	if workers > len(tlist) {
		workers = len(tlist)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	wg.Add(workers)
	for k := 0; k < workers; k++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(tlist); i += workers {
				r, c, err := sample(j, tlist[i], temp, cfg.Cutoff, opts)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				re[i], im[i] = r, c
			}
		}(k)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	vecmath.ScaleBlockInPlace(re, 1/math.Pi)
	vecmath.ScaleBlockInPlace(im, 1/math.Pi)
	out := make([]complex128, len(tlist))
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}

// sample computes the unscaled real and imaginary integrals for one time
// point.
func sample(j SpectralDensity, t float64, temp core.Temperature, cutoff float64, opts quadrature.Options) (re, im float64, err error) {
	re, _, err = quadrature.Finite(func(w float64) float64 {
		return temp.CothHalf(w) * math.Cos(w*t) * real(j(w))
	}, 0, cutoff, opts)
	if err != nil {
		return 0, 0, wrapQuadrature(t, err)
	}
	im, _, err = quadrature.Finite(func(w float64) float64 {
		return -math.Sin(w*t) * real(j(w))
	}, 0, cutoff, opts)
	if err != nil {
		return 0, 0, wrapQuadrature(t, err)
	}
	return re, im, nil
}

func wrapQuadrature(t float64, err error) error {
	if errors.Is(err, quadrature.ErrNotConverged) {
		return fmt.Errorf("correlation: t=%g: %w", t, ErrNotConverged)
	}
	return fmt.Errorf("correlation: t=%g: %w", t, err)
}
