package brownian

import (
	"errors"
	"math/cmplx"
)

var (
	// ErrInvalidCoupling reports a non-positive coupling strength.
	ErrInvalidCoupling = errors.New("brownian: coupling strength must be positive")
	// ErrInvalidBroadening reports a non-positive broadening.
	ErrInvalidBroadening = errors.New("brownian: broadening must be positive")
	// ErrInvalidFrequency reports a non-positive resonance frequency.
	ErrInvalidFrequency = errors.New("brownian: resonance frequency must be positive")
)

// Params holds the three parameters of an underdamped Brownian motion
// spectral density. Params is a value type; copies are independent.
type Params struct {
	// CoupStrength is the system-bath coupling strength lambda.
	CoupStrength float64
	// CavBroad is the broadening (line width) gamma.
	CavBroad float64
	// CavFreq is the resonance frequency w0.
	CavFreq float64
}

// Validate reports whether the parameters describe a usable spectral
// density. The overdamped regime CavFreq < CavBroad/2 is permitted.
func (p Params) Validate() error {
	if p.CoupStrength <= 0 {
		return ErrInvalidCoupling
	}
	if p.CavBroad <= 0 {
		return ErrInvalidBroadening
	}
	if p.CavFreq <= 0 {
		return ErrInvalidFrequency
	}
	return nil
}

// PolePair holds the derived poles of the spectral density.
type PolePair struct {
	// Omega is the damped resonance sqrt(w0^2 - gamma^2/4), purely
	// imaginary in the overdamped regime.
	Omega complex128
	// A is the upper pole Omega + i*gamma/2.
	A complex128
	// AConj is the complex conjugate of A.
	AConj complex128
}

// Poles derives the pole pair from the parameters. It is recomputed fresh on
// every call by every formula in this package; nothing is cached, so a
// Params value can be modified between calls without stale results.
func (p Params) Poles() PolePair {
	omega := cmplx.Sqrt(complex(p.CavFreq*p.CavFreq-p.CavBroad*p.CavBroad/4, 0))
	a := omega + complex(0, p.CavBroad/2)
	return PolePair{Omega: omega, A: a, AConj: cmplx.Conj(a)}
}

// SpectralDensity evaluates J at a single real frequency. The result is
// physically real; its imaginary part is floating-point residue from the
// complex pole arithmetic and stays within a few ulps of zero.
func (p Params) SpectralDensity(w float64) complex128 {
	pl := p.Poles()
	wc := complex(w, 0)
	num := complex(p.CoupStrength*p.CoupStrength*p.CavBroad, 0) * wc
	return num / ((wc - pl.A) * (wc + pl.A) * (wc - pl.AConj) * (wc + pl.AConj))
}

// SampleSpectralDensity evaluates J at every frequency of ws.
func (p Params) SampleSpectralDensity(ws []float64) []complex128 {
	out := make([]complex128, len(ws))
	for i, w := range ws {
		out[i] = p.SpectralDensity(w)
	}
	return out
}
