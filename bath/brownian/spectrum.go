package brownian

import (
	"github.com/cwbudde/algo-bath/bath/core"
)

// Spectrum evaluates the power spectrum of the bath correlation function,
// the Fourier transform of C(t). The symmetric share cancels algebraically
// between the Matsubara and non-Matsubara pieces, leaving
//
//	S(w) = A(w) * (1 + coth(beta*w/2))
//
// which is what Spectrum computes. For w > 0 the spectrum is positive; the
// imaginary part of the returned value is floating-point residue.
func (p Params) Spectrum(w float64, temp core.Temperature) (complex128, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := temp.Validate(); err != nil {
		return 0, err
	}
	return p.thermalPart(w, temp) + p.antisymmetricPart(w), nil
}

// SpectrumMatsubara evaluates the thermal share of the spectrum,
//
//	-S(w) + A(w)*coth(beta*w/2)
//
// built from the symmetric part S and antisymmetric part A of the
// correlation spectrum. At w = 0 with finite beta the indeterminate product
// A*coth is replaced by its analytic limit 2*lambda^2*gamma/(beta*|a|^4).
func (p Params) SpectrumMatsubara(w float64, temp core.Temperature) (complex128, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := temp.Validate(); err != nil {
		return 0, err
	}
	thermal := p.thermalPart(w, temp)
	return -p.symmetricPart(w, temp) + thermal, nil
}

// SpectrumNonMatsubara evaluates the resonant share of the spectrum,
//
//	S(w) + A(w)
//
// carried by the spectral density poles alone.
func (p Params) SpectrumNonMatsubara(w float64, temp core.Temperature) (complex128, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := temp.Validate(); err != nil {
		return 0, err
	}
	return p.symmetricPart(w, temp) + p.antisymmetricPart(w), nil
}

// SampleSpectrum evaluates Spectrum at every frequency of ws.
func (p Params) SampleSpectrum(ws []float64, temp core.Temperature) ([]complex128, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := temp.Validate(); err != nil {
		return nil, err
	}
	out := make([]complex128, len(ws))
	for i, w := range ws {
		out[i] = p.thermalPart(w, temp) + p.antisymmetricPart(w)
	}
	return out, nil
}

// symmetricPart is the pole-weighted symmetric share
//
//	-lambda^2*gamma/(a^2 - aa^2) * (coth(beta*a/2)*a/(a^2 - w^2) - coth(beta*aa/2)*aa/(aa^2 - w^2))
func (p Params) symmetricPart(w float64, temp core.Temperature) complex128 {
	pl := p.Poles()
	a, aa := pl.A, pl.AConj
	w2 := complex(w*w, 0)
	pref := -complex(p.CoupStrength*p.CoupStrength*p.CavBroad, 0) / (a*a - aa*aa)
	return pref * (temp.CothHalfComplex(a)*a/(a*a-w2) - temp.CothHalfComplex(aa)*aa/(aa*aa-w2))
}

// antisymmetricPart is the odd share
//
//	lambda^2*gamma*w / ((a^2 - w^2)*(aa^2 - w^2))
//
// which coincides with the spectral density J on the real axis.
func (p Params) antisymmetricPart(w float64) complex128 {
	pl := p.Poles()
	a, aa := pl.A, pl.AConj
	wc := complex(w, 0)
	return complex(p.CoupStrength*p.CoupStrength*p.CavBroad, 0) * wc /
		((a*a - wc*wc) * (aa*aa - wc*wc))
}

// thermalPart is A(w)*coth(beta*w/2) with the w = 0 indeterminacy resolved
// by its analytic limit.
func (p Params) thermalPart(w float64, temp core.Temperature) complex128 {
	if w == 0 && !temp.IsZero() {
		pl := p.Poles()
		absA2 := real(pl.A * pl.AConj)
		lim := 2 * p.CoupStrength * p.CoupStrength * p.CavBroad / (temp.Beta() * absA2 * absA2)
		return complex(lim, 0)
	}
	return p.antisymmetricPart(w) * complex(temp.CothHalf(w), 0)
}
