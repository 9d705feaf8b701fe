package correlation

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-bath/bath/brownian"
	"github.com/cwbudde/algo-bath/bath/core"
)

func testParams() brownian.Params {
	return brownian.Params{CoupStrength: 0.1, CavBroad: 0.05, CavFreq: 1.0}
}

func TestBathAtTimeZero(t *testing.T) {
	p := testParams()
	c, err := Bath(p.SpectralDensity, []float64{0}, core.FiniteTemperature(1), DefaultConfig(20))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}
	if imag(c[0]) != 0 {
		t.Errorf("imag C(0) = %g, want 0", imag(c[0]))
	}
	if real(c[0]) <= 0 {
		t.Errorf("real C(0) = %g, want positive", real(c[0]))
	}
	// C(0) = 1/pi * int coth(beta*w/2)*J(w) dw, roughly lambda^2/(2*omega)
	// * (coth(beta*a/2) + c.c.) for this narrow resonance.
	if real(c[0]) < 0.009 || real(c[0]) > 0.013 {
		t.Errorf("real C(0) = %g, outside the expected window", real(c[0]))
	}
}

func TestBathHermitianSymmetry(t *testing.T) {
	p := testParams()
	tlist := []float64{-3, -1, -0.2, 0.2, 1, 3}
	c, err := Bath(p.SpectralDensity, tlist, core.FiniteTemperature(1), DefaultConfig(15))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}
	// C(-t) = conj(C(t)).
	for i := 0; i < 3; i++ {
		got := c[i]
		want := cmplx.Conj(c[len(c)-1-i])
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("C(%g) = %v, want conj(C(%g)) = %v", tlist[i], got, tlist[len(c)-1-i], want)
		}
	}
}

func TestBathDecays(t *testing.T) {
	p := testParams()
	c, err := Bath(p.SpectralDensity, []float64{0, 20}, core.FiniteTemperature(1), DefaultConfig(20))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}
	if cmplx.Abs(c[1]) >= cmplx.Abs(c[0]) {
		t.Errorf("|C(20)| = %g not below |C(0)| = %g", cmplx.Abs(c[1]), cmplx.Abs(c[0]))
	}
}

func TestBathZeroTemperatureIsFinite(t *testing.T) {
	p := testParams()
	tlist := []float64{0, 0.5, 1, 2, 5}
	c, err := Bath(p.SpectralDensity, tlist, core.ZeroTemperature(), DefaultConfig(20))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}
	for i, v := range c {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Errorf("C(%g) = %v, want finite", tlist[i], v)
		}
	}
	// The zero-temperature factor is one, so C(0) is the plain integral of
	// J/pi and must be below the finite-temperature value.
	warm, err := Bath(p.SpectralDensity, []float64{0}, core.FiniteTemperature(1), DefaultConfig(20))
	if err != nil {
		t.Fatalf("Bath() warm error = %v", err)
	}
	if real(c[0]) >= real(warm[0]) {
		t.Errorf("zero-T C(0) = %g not below warm C(0) = %g", real(c[0]), real(warm[0]))
	}
}

func TestBathWorkerCountInvariance(t *testing.T) {
	p := testParams()
	tlist := []float64{0, 0.3, 0.7, 1.1, 2.5, 4}
	temp := core.FiniteTemperature(0.8)

	cfg1 := DefaultConfig(15)
	cfg1.Workers = 1
	serial, err := Bath(p.SpectralDensity, tlist, temp, cfg1)
	if err != nil {
		t.Fatalf("Bath() serial error = %v", err)
	}
	cfg4 := DefaultConfig(15)
	cfg4.Workers = 4
	parallel, err := Bath(p.SpectralDensity, tlist, temp, cfg4)
	if err != nil {
		t.Fatalf("Bath() parallel error = %v", err)
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("sample %d: serial %v != parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestBathEmptyTimeGrid(t *testing.T) {
	p := testParams()
	c, err := Bath(p.SpectralDensity, nil, core.FiniteTemperature(1), DefaultConfig(10))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}
	if len(c) != 0 {
		t.Errorf("Bath() over empty grid returned %d samples", len(c))
	}
}

func TestBathInputValidation(t *testing.T) {
	p := testParams()
	temp := core.FiniteTemperature(1)

	if _, err := Bath(nil, []float64{0}, temp, DefaultConfig(10)); !errors.Is(err, ErrNilSpectralDensity) {
		t.Errorf("nil density error = %v, want ErrNilSpectralDensity", err)
	}
	for _, cutoff := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		if _, err := Bath(p.SpectralDensity, []float64{0}, temp, Config{Cutoff: cutoff}); !errors.Is(err, ErrInvalidCutoff) {
			t.Errorf("cutoff %g error = %v, want ErrInvalidCutoff", cutoff, err)
		}
	}
	var invalid core.Temperature
	if _, err := Bath(p.SpectralDensity, []float64{0}, invalid, DefaultConfig(10)); !errors.Is(err, core.ErrInvalidBeta) {
		t.Errorf("invalid temperature error = %v, want core.ErrInvalidBeta", err)
	}
}

func TestBathSurfacesNonConvergence(t *testing.T) {
	p := testParams()
	cfg := DefaultConfig(20)
	cfg.MaxIntervals = 1
	// One panel cannot resolve the oscillatory integrand at large t.
	_, err := Bath(p.SpectralDensity, []float64{40}, core.FiniteTemperature(1), cfg)
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("Bath() error = %v, want ErrNotConverged", err)
	}
}
