package exponents

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/cwbudde/algo-bath/bath/brownian"
	"github.com/cwbudde/algo-bath/bath/core"
)

// ErrZeroTemperature reports a request for the discrete Matsubara series at
// zero temperature, where it is undefined. Use MatsubaraZero instead.
var ErrZeroTemperature = errors.New("exponents: matsubara series is undefined at zero temperature, use MatsubaraZero")

// NonMatsubara returns the two-term decomposition carried by the spectral
// density poles,
//
//	vk = [ i*a, -i*conj(a) ]
//	ck = lambda^2/(4*omega) * [ coth(beta*a/2) - 1, coth(beta*conj(a)/2) + 1 ]
//
// At zero temperature the thermal factors take their exact limits and the
// first coefficient vanishes: ck = lambda^2/(4*omega) * [0, 2].
func NonMatsubara(p brownian.Params, temp core.Temperature) (ck, vk []complex128, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if err := temp.Validate(); err != nil {
		return nil, nil, err
	}
	pl := p.Poles()
	coeff := complex(p.CoupStrength*p.CoupStrength, 0) / (4 * pl.Omega)
	vk = []complex128{1i * pl.A, -1i * pl.AConj}
	if temp.IsZero() {
		return []complex128{0, 2 * coeff}, vk, nil
	}
	ck = []complex128{
		coeff * (temp.CothHalfComplex(pl.A) - 1),
		coeff * (temp.CothHalfComplex(pl.AConj) + 1),
	}
	return ck, vk, nil
}

// Matsubara returns the decomposition of the thermal share at the bosonic
// Matsubara frequencies nu_n = 2*pi*n/beta,
//
//	vk[n-1] = -nu_n
//	ck[n-1] = -4*gamma*lambda^2/pi * (pi/beta)^2 * n / ((a^2+nu_n^2)*(conj(a)^2+nu_n^2))
//
// for n = 1..nExp-1. Note the off-by-one: requesting nExp exponents
// produces nExp-1 terms, and nExp <= 1 produces empty slices. The series
// only exists at finite temperature; the zero-temperature variant returns
// ErrZeroTemperature.
func Matsubara(p brownian.Params, temp core.Temperature, nExp int) (ck, vk []complex128, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if err := temp.Validate(); err != nil {
		return nil, nil, err
	}
	if temp.IsZero() {
		return nil, nil, ErrZeroTemperature
	}
	beta := temp.Beta()
	pl := p.Poles()
	a2 := pl.A * pl.A
	aa2 := pl.AConj * pl.AConj
	coeff := complex(-4*p.CavBroad*p.CoupStrength*p.CoupStrength/math.Pi*(math.Pi/beta)*(math.Pi/beta), 0)

	count := nExp - 1
	if count < 0 {
		count = 0
	}
	ck = make([]complex128, 0, count)
	vk = make([]complex128, 0, count)
	for n := 1; n < nExp; n++ {
		nu := 2 * math.Pi * float64(n) / beta
		nu2 := complex(nu*nu, 0)
		ck = append(ck, coeff*complex(float64(n), 0)/((a2+nu2)*(aa2+nu2)))
		vk = append(vk, complex(-nu, 0))
	}
	return ck, vk, nil
}

// Correlation reconstructs correlation samples from the combined
// non-Matsubara and Matsubara decompositions. At finite temperature nExp
// controls the Matsubara truncation as in Matsubara; at zero temperature
// nExp is ignored and the numerical MatsubaraZero correction is added
// instead.
func Correlation(p brownian.Params, temp core.Temperature, nExp int, tlist []float64) ([]complex128, error) {
	ckN, vkN, err := NonMatsubara(p, temp)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(tlist))
	if len(tlist) == 0 {
		return out, nil
	}
	if err := core.ExpSumInto(out, ckN, vkN, tlist); err != nil {
		return nil, err
	}

	if temp.IsZero() {
		f, err := MatsubaraZero(p, tlist)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] += complex(f[i], 0)
		}
		return out, nil
	}

	ckM, vkM, err := Matsubara(p, temp, nExp)
	if err != nil {
		return nil, err
	}
	if len(ckM) > 0 {
		mats := make([]complex128, len(tlist))
		if err := core.ExpSumInto(mats, ckM, vkM, tlist); err != nil {
			return nil, err
		}
		cmplxs.Add(out, mats)
	}
	return out, nil
}
