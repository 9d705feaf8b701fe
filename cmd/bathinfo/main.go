// Command bathinfo prints the exponential decomposition of an underdamped
// Brownian bath correlation function.
//
// Usage:
//
//	bathinfo [flags]
//
// It derives the pole pair from the physical parameters, prints the
// non-Matsubara and Matsubara exponent tables, and compares the
// reconstructed correlation function against direct numerical integration
// of the spectral density.
//
// Examples:
//
//	bathinfo
//	bathinfo -lambda 0.2 -gamma 0.1 -w0 2 -beta 0.5
//	bathinfo -beta inf -tmax 10
//	bathinfo -spectrum -wmax 2
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-bath/bath/brownian"
	"github.com/cwbudde/algo-bath/bath/core"
	"github.com/cwbudde/algo-bath/bath/correlation"
	"github.com/cwbudde/algo-bath/bath/exponents"
	"github.com/cwbudde/algo-bath/stats/decay"
)

func main() {
	lambda := flag.Float64("lambda", 0.1, "coupling strength")
	gamma := flag.Float64("gamma", 0.05, "cavity broadening")
	w0 := flag.Float64("w0", 1.0, "cavity frequency")
	beta := flag.Float64("beta", 1.0, "inverse temperature (inf for zero temperature)")
	nexp := flag.Int("nexp", 50, "requested exponent count (yields nexp-1 Matsubara terms)")
	tmax := flag.Float64("tmax", 20, "upper end of the time grid")
	samples := flag.Int("samples", 81, "number of time grid samples")
	spectrum := flag.Bool("spectrum", false, "print a spectrum table")
	wmax := flag.Float64("wmax", 3, "spectrum table covers [-wmax, wmax]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bathinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the exponential decomposition of an underdamped Brownian\n")
		fmt.Fprintf(os.Stderr, "bath correlation function and checks it against direct integration.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bathinfo -lambda 0.2 -gamma 0.1 -w0 2\n")
		fmt.Fprintf(os.Stderr, "  bathinfo -beta inf -tmax 10\n")
		fmt.Fprintf(os.Stderr, "  bathinfo -spectrum -wmax 2\n")
	}
	flag.Parse()

	p := brownian.Params{CoupStrength: *lambda, CavBroad: *gamma, CavFreq: *w0}
	if err := p.Validate(); err != nil {
		fatal(err)
	}

	temp := core.FiniteTemperature(*beta)
	if err := temp.Validate(); err != nil {
		fatal(err)
	}

	printModel(p, temp)

	if err := printExponents(p, temp, *nexp); err != nil {
		fatal(err)
	}

	if *samples > 1 && *tmax > 0 {
		if err := printReconstruction(p, temp, *nexp, *tmax, *samples); err != nil {
			fatal(err)
		}
	}

	if *spectrum {
		if err := printSpectrum(p, temp, *wmax); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func printModel(p brownian.Params, temp core.Temperature) {
	pl := p.Poles()

	fmt.Printf("Underdamped Brownian bath, lambda=%g gamma=%g w0=%g, %s\n\n",
		p.CoupStrength, p.CavBroad, p.CavFreq, temp)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "omega\t%.6f\n", pl.Omega)
	fmt.Fprintf(tw, "a\t%.6f\n", pl.A)
	fmt.Fprintf(tw, "conj(a)\t%.6f\n", pl.AConj)
	if err := tw.Flush(); err != nil {
		fatal(err)
	}

	fmt.Println()
}

func printExponents(p brownian.Params, temp core.Temperature, nexp int) error {
	ck, vk, err := exponents.NonMatsubara(p, temp)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Non-Matsubara\tck\tvk\n")
	for i := range ck {
		fmt.Fprintf(tw, "%d\t%.6e\t%.6f\n", i, ck[i], vk[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()

	if temp.IsZero() {
		f0, err := exponents.MatsubaraZero(p, []float64{0})
		if err != nil {
			return err
		}
		fmt.Printf("Matsubara series replaced by the zero-temperature correction, f(0) = %.6e\n\n", f0[0])
		return nil
	}

	ck, vk, err = exponents.Matsubara(p, temp, nexp)
	if err != nil {
		return err
	}

	tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Matsubara\tck\tvk\n")
	for i := range ck {
		fmt.Fprintf(tw, "%d\t%.6e\t%.4f\n", i, real(ck[i]), real(vk[i]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()

	return nil
}

func printReconstruction(p brownian.Params, temp core.Temperature, nexp int, tmax float64, samples int) error {
	tlist := make([]float64, samples)
	floats.Span(tlist, 0, tmax)

	recon, err := exponents.Correlation(p, temp, nexp, tlist)
	if err != nil {
		return err
	}

	cfg := correlation.DefaultConfig(20 * p.CavFreq)
	direct, err := correlation.Bath(p.SpectralDensity, tlist, temp, cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "t\tRe C(t)\tIm C(t)\tRe C_recon(t)\n")
	step := (samples - 1) / 8
	if step < 1 {
		step = 1
	}
	for i := 0; i < samples; i += step {
		fmt.Fprintf(tw, "%.3f\t%+.6e\t%+.6e\t%+.6e\n",
			tlist[i], real(direct[i]), imag(direct[i]), real(recon[i]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()

	maxDiff, err := decay.MaxAbsDiff(recon, direct)
	if err != nil {
		return err
	}
	rmsDiff, err := decay.RMSDiff(recon, direct)
	if err != nil {
		return err
	}

	s := decay.CalculateComplex(direct)
	fmt.Printf("|C| peak %.6e at t=%.3f, final %.6e\n", s.MaxAbs, tlist[s.MaxAbsIndex], s.Final)
	fmt.Printf("reconstruction error: max %.3e, rms %.3e\n\n", maxDiff, rmsDiff)

	return nil
}

func printSpectrum(p brownian.Params, temp core.Temperature, wmax float64) error {
	const rows = 13

	ws := make([]float64, rows)
	floats.Span(ws, -wmax, wmax)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "w\tJ(w)\tS(w)\tS_mats\tS_nonmats\n")
	for _, w := range ws {
		j := p.SpectralDensity(w)

		s, err := p.Spectrum(w, temp)
		if err != nil {
			return err
		}
		sm, err := p.SpectrumMatsubara(w, temp)
		if err != nil {
			return err
		}
		sn, err := p.SpectrumNonMatsubara(w, temp)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%+.3f\t%+.6f\t%+.6f\t%+.6f\t%+.6f\n",
			w, real(j), real(s), real(sm), real(sn))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()

	return nil
}
