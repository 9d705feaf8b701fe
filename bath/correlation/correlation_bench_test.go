package correlation

import (
	"testing"

	"github.com/cwbudde/algo-bath/bath/core"
	"gonum.org/v1/gonum/floats"
)

func BenchmarkBath(b *testing.B) {
	p := testParams()
	temp := core.FiniteTemperature(1)
	tlist := make([]float64, 32)
	floats.Span(tlist, 0, 10)

	cases := []struct {
		name    string
		workers int
	}{
		{"serial", 1},
		{"workers4", 4},
	}
	for _, tc := range cases {
		cfg := DefaultConfig(20)
		cfg.Workers = tc.workers
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Bath(p.SpectralDensity, tlist, temp, cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFromSpectrum(b *testing.B) {
	p := testParams()
	temp := core.FiniteTemperature(1)
	const (
		n    = 4096
		wmax = 30.0
	)
	ws := make([]float64, n)
	floats.Span(ws, -wmax, wmax-2*wmax/n)
	spec, err := p.SampleSpectrum(ws, temp)
	if err != nil {
		b.Fatal(err)
	}
	re := make([]float64, n)
	for i, v := range spec {
		re[i] = real(v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := FromSpectrum(re, wmax); err != nil {
			b.Fatal(err)
		}
	}
}
