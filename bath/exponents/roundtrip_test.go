package exponents

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-bath/bath/core"
	"github.com/cwbudde/algo-bath/bath/correlation"
	"github.com/cwbudde/algo-bath/stats/decay"
)

// The decompositions must reproduce the directly integrated correlation
// function, with the residual shrinking monotonically as Matsubara terms are
// added.
func TestReconstructionMatchesIntegrator(t *testing.T) {
	p := testParams()
	temp := core.FiniteTemperature(1)
	tlist := make([]float64, 81)
	floats.Span(tlist, 0, 20)

	want, err := correlation.Bath(p.SpectralDensity, tlist, temp, correlation.DefaultConfig(20))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}

	nExps := []int{2, 6, 20, 50}
	residuals := make([]float64, len(nExps))
	for i, nExp := range nExps {
		got, err := Correlation(p, temp, nExp, tlist)
		if err != nil {
			t.Fatalf("Correlation(nExp=%d) error = %v", nExp, err)
		}
		r, err := decay.MaxAbsDiff(got, want)
		if err != nil {
			t.Fatalf("MaxAbsDiff() error = %v", err)
		}
		residuals[i] = r
	}

	if residuals[len(residuals)-1] > 1e-3 {
		t.Errorf("residual at nExp=50 is %g, want below 1e-3", residuals[len(residuals)-1])
	}
	for i := 1; i < len(residuals); i++ {
		if residuals[i] >= residuals[i-1] {
			t.Errorf("residual did not shrink: nExp=%d gives %g, nExp=%d gives %g",
				nExps[i], residuals[i], nExps[i-1], residuals[i-1])
		}
	}
}

func TestReconstructionZeroTemperature(t *testing.T) {
	p := testParams()
	tlist := make([]float64, 41)
	floats.Span(tlist, 0, 10)

	want, err := correlation.Bath(p.SpectralDensity, tlist, core.ZeroTemperature(), correlation.DefaultConfig(20))
	if err != nil {
		t.Fatalf("Bath() error = %v", err)
	}
	got, err := Correlation(p, core.ZeroTemperature(), 0, tlist)
	if err != nil {
		t.Fatalf("Correlation() error = %v", err)
	}
	r, err := decay.MaxAbsDiff(got, want)
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if r > 1e-4 {
		t.Errorf("zero-temperature residual = %g, want below 1e-4", r)
	}
}
