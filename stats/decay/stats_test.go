package decay

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// generateDecay creates n samples of amp * exp(-rate*i).
func generateDecay(amp, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Exp(-rate*float64(i))
	}
	return out
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil)

	if s.N != 0 {
		t.Errorf("N: got %d, want 0", s.N)
	}
	if s.MaxAbs != 0 || s.RMS != 0 || s.Mean != 0 || s.Final != 0 {
		t.Errorf("empty input: got nonzero stats %+v", s)
	}
}

func TestCalculate_Constant(t *testing.T) {
	x := []float64{0.5, 0.5, 0.5, 0.5}
	s := Calculate(x)

	if s.N != 4 {
		t.Errorf("N: got %d, want 4", s.N)
	}
	if !almostEqual(s.MaxAbs, 0.5, tolerance) {
		t.Errorf("MaxAbs: got %g, want 0.5", s.MaxAbs)
	}
	if s.MaxAbsIndex != 0 {
		t.Errorf("MaxAbsIndex: got %d, want 0", s.MaxAbsIndex)
	}
	if !almostEqual(s.Mean, 0.5, tolerance) {
		t.Errorf("Mean: got %g, want 0.5", s.Mean)
	}
	if !almostEqual(s.RMS, 0.5, tolerance) {
		t.Errorf("RMS: got %g, want 0.5", s.RMS)
	}
	if !almostEqual(s.Final, 0.5, tolerance) {
		t.Errorf("Final: got %g, want 0.5", s.Final)
	}
}

func TestCalculate_KnownValues(t *testing.T) {
	x := []float64{3, -4}
	s := Calculate(x)

	if !almostEqual(s.MaxAbs, 4, tolerance) {
		t.Errorf("MaxAbs: got %g, want 4", s.MaxAbs)
	}
	if s.MaxAbsIndex != 1 {
		t.Errorf("MaxAbsIndex: got %d, want 1", s.MaxAbsIndex)
	}
	if !almostEqual(s.Mean, -0.5, tolerance) {
		t.Errorf("Mean: got %g, want -0.5", s.Mean)
	}
	if !almostEqual(s.RMS, math.Sqrt(12.5), tolerance) {
		t.Errorf("RMS: got %g, want %g", s.RMS, math.Sqrt(12.5))
	}
	if !almostEqual(s.Final, -4, tolerance) {
		t.Errorf("Final: got %g, want -4", s.Final)
	}
}

func TestCalculate_DecayTrace(t *testing.T) {
	x := generateDecay(1.0, 0.25, 21)
	s := Calculate(x)

	if s.MaxAbsIndex != 0 {
		t.Errorf("MaxAbsIndex: got %d, want 0", s.MaxAbsIndex)
	}
	if !almostEqual(s.MaxAbs, 1.0, tolerance) {
		t.Errorf("MaxAbs: got %g, want 1.0", s.MaxAbs)
	}
	if !almostEqual(s.Final, math.Exp(-5), tolerance) {
		t.Errorf("Final: got %g, want %g", s.Final, math.Exp(-5))
	}
	if s.RMS <= s.Final || s.RMS >= s.MaxAbs {
		t.Errorf("RMS %g not between Final %g and MaxAbs %g", s.RMS, s.Final, s.MaxAbs)
	}
}

func TestCalculate_FirstOfEqualPeaks(t *testing.T) {
	x := []float64{1, -1, 1}
	s := Calculate(x)

	if s.MaxAbsIndex != 0 {
		t.Errorf("MaxAbsIndex: got %d, want 0", s.MaxAbsIndex)
	}
}

func TestCalculateComplex(t *testing.T) {
	x := []complex128{3 + 4i, 1i, 0}
	s := Calculate([]float64{5, 1, 0})
	sc := CalculateComplex(x)

	if sc != s {
		t.Errorf("CalculateComplex: got %+v, want %+v", sc, s)
	}
	if !almostEqual(sc.MaxAbs, 5, tolerance) {
		t.Errorf("MaxAbs: got %g, want 5", sc.MaxAbs)
	}
	if !almostEqual(sc.Mean, 2, tolerance) {
		t.Errorf("Mean: got %g, want 2", sc.Mean)
	}
}

func TestCalculateComplex_Empty(t *testing.T) {
	s := CalculateComplex(nil)
	if s != (Stats{}) {
		t.Errorf("empty input: got %+v, want zero Stats", s)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1 + 2i, 3, 5i}
	b := []complex128{1, 3, 5i}

	got, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff returned error: %v", err)
	}
	if !almostEqual(got, 2, tolerance) {
		t.Errorf("MaxAbsDiff: got %g, want 2", got)
	}
}

func TestRMSDiff(t *testing.T) {
	a := []complex128{1 + 2i, 3}
	b := []complex128{1, 3}

	got, err := RMSDiff(a, b)
	if err != nil {
		t.Fatalf("RMSDiff returned error: %v", err)
	}
	if !almostEqual(got, math.Sqrt(2), tolerance) {
		t.Errorf("RMSDiff: got %g, want %g", got, math.Sqrt(2))
	}
}

func TestDiff_Identical(t *testing.T) {
	a := []complex128{1 + 1i, 2 - 3i, 0.25i}

	m, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff returned error: %v", err)
	}
	if m != 0 {
		t.Errorf("MaxAbsDiff of identical traces: got %g, want 0", m)
	}

	r, err := RMSDiff(a, a)
	if err != nil {
		t.Fatalf("RMSDiff returned error: %v", err)
	}
	if r != 0 {
		t.Errorf("RMSDiff of identical traces: got %g, want 0", r)
	}
}

func TestDiff_LengthMismatch(t *testing.T) {
	a := []complex128{1, 2}
	b := []complex128{1}

	if _, err := MaxAbsDiff(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("MaxAbsDiff: got %v, want ErrLengthMismatch", err)
	}
	if _, err := RMSDiff(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("RMSDiff: got %v, want ErrLengthMismatch", err)
	}
}
