// Command bathplot renders comparison plots for the underdamped Brownian
// bath: the reconstructed versus directly integrated correlation function,
// the bi-exponential fit of the Matsubara tail, or the spectrum split.
//
// Usage:
//
//	bathplot [flags]
//
// The output format follows the file extension (.png, .svg, .pdf, ...).
//
// Examples:
//
//	bathplot -o correlation.png
//	bathplot -kind fit -tmax 4 -o fit.svg
//	bathplot -kind fit -beta inf -tmax 10 -o fit-cold.png
//	bathplot -kind spectrum -wmax 2 -o spectrum.pdf
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-bath/bath/brownian"
	"github.com/cwbudde/algo-bath/bath/core"
	"github.com/cwbudde/algo-bath/bath/correlation"
	"github.com/cwbudde/algo-bath/bath/exponents"
	"github.com/cwbudde/algo-bath/fit/biexp"
)

func main() {
	lambda := flag.Float64("lambda", 0.1, "coupling strength")
	gamma := flag.Float64("gamma", 0.05, "cavity broadening")
	w0 := flag.Float64("w0", 1.0, "cavity frequency")
	beta := flag.Float64("beta", 1.0, "inverse temperature (inf for zero temperature)")
	nexp := flag.Int("nexp", 50, "requested exponent count (yields nexp-1 Matsubara terms)")
	tmax := flag.Float64("tmax", 20, "upper end of the time grid")
	samples := flag.Int("samples", 81, "number of grid samples")
	kind := flag.String("kind", "correlation", "plot kind: correlation, fit or spectrum")
	wmax := flag.Float64("wmax", 3, "spectrum plot covers [-wmax, wmax]")
	out := flag.String("o", "bath.png", "output file, format from extension")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bathplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders underdamped Brownian bath comparison plots.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bathplot -o correlation.png\n")
		fmt.Fprintf(os.Stderr, "  bathplot -kind fit -tmax 4 -o fit.svg\n")
		fmt.Fprintf(os.Stderr, "  bathplot -kind spectrum -wmax 2 -o spectrum.pdf\n")
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

	if *samples < 2 {
		fatal(fmt.Errorf("need at least two samples, got %d", *samples))
	}

	var err error
	switch *kind {
	case "correlation":
		err = plotCorrelation(p, temp, *nexp, *tmax, *samples, *out)
	case "fit":
		err = plotFit(p, temp, *nexp, *tmax, *samples, *out)
	case "spectrum":
		err = plotSpectrum(p, temp, *wmax, *samples, *out)
	default:
		err = fmt.Errorf("unknown plot kind %q", *kind)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func plotCorrelation(bp brownian.Params, temp core.Temperature, nexp int, tmax float64, samples int, out string) error {
	tlist := make([]float64, samples)
	floats.Span(tlist, 0, tmax)

	recon, err := exponents.Correlation(bp, temp, nexp, tlist)
	if err != nil {
		return err
	}

	direct, err := correlation.Bath(bp.SpectralDensity, tlist, temp, correlation.DefaultConfig(20*bp.CavFreq))
	if err != nil {
		return err
	}

	fig := plot.New()
	fig.Title.Text = "Bath correlation: exponents vs integration"
	fig.X.Label.Text = "t"
	fig.Y.Label.Text = "C(t)"

	err = plotutil.AddLines(fig,
		"Re C (integrated)", xys(tlist, realParts(direct)),
		"Im C (integrated)", xys(tlist, imagParts(direct)),
		"Re C (exponents)", xys(tlist, realParts(recon)),
		"Im C (exponents)", xys(tlist, imagParts(recon)),
	)
	if err != nil {
		return err
	}

	return fig.Save(6*vg.Inch, 4*vg.Inch, out)
}

func plotFit(bp brownian.Params, temp core.Temperature, nexp int, tmax float64, samples int, out string) error {
	tlist := make([]float64, samples)
	floats.Span(tlist, 0, tmax)

	ydata, err := matsubaraTrace(bp, temp, nexp, tlist)
	if err != nil {
		return err
	}

	res, err := biexp.Fit(tlist, ydata, biexp.DefaultConfig())
	if err != nil {
		return err
	}

	fmt.Printf("fit: ck=[%.4e, %.4e] vk=[%.4f, %.4f] rms=%.3e status=%v\n",
		res.Ck[0], res.Ck[1], res.Vk[0], res.Vk[1], res.Residual, res.Status)

	fig := plot.New()
	fig.Title.Text = "Matsubara tail and bi-exponential fit"
	fig.X.Label.Text = "t"
	fig.Y.Label.Text = "C_mats(t)"

	err = plotutil.AddLines(fig,
		"Matsubara", xys(tlist, ydata),
		"biexp fit", xys(tlist, biexp.Eval(res.Ck, res.Vk, tlist)),
	)
	if err != nil {
		return err
	}

	return fig.Save(6*vg.Inch, 4*vg.Inch, out)
}

// matsubaraTrace samples the thermal share of the correlation function:
// the truncated Matsubara series at finite temperature, or the numerical
// zero-temperature correction.
func matsubaraTrace(bp brownian.Params, temp core.Temperature, nexp int, tlist []float64) ([]float64, error) {
	if temp.IsZero() {
		return exponents.MatsubaraZero(bp, tlist)
	}

	ck, vk, err := exponents.Matsubara(bp, temp, nexp)
	if err != nil {
		return nil, err
	}
	if len(ck) == 0 {
		return nil, fmt.Errorf("fit needs at least one Matsubara term, got nexp=%d", nexp)
	}

	trace, err := core.ExpSum(ck, vk, tlist)
	if err != nil {
		return nil, err
	}

	return realParts(trace), nil
}

func plotSpectrum(bp brownian.Params, temp core.Temperature, wmax float64, samples int, out string) error {
	ws := make([]float64, samples)
	floats.Span(ws, -wmax, wmax)

	j := make([]float64, len(ws))
	total := make([]float64, len(ws))
	mats := make([]float64, len(ws))
	nonMats := make([]float64, len(ws))

	for i, w := range ws {
		j[i] = real(bp.SpectralDensity(w))

		s, err := bp.Spectrum(w, temp)
		if err != nil {
			return err
		}
		sm, err := bp.SpectrumMatsubara(w, temp)
		if err != nil {
			return err
		}
		sn, err := bp.SpectrumNonMatsubara(w, temp)
		if err != nil {
			return err
		}

		total[i], mats[i], nonMats[i] = real(s), real(sm), real(sn)
	}

	fig := plot.New()
	fig.Title.Text = "Spectrum split"
	fig.X.Label.Text = "w"
	fig.Y.Label.Text = "S(w)"

	err := plotutil.AddLines(fig,
		"J", xys(ws, j),
		"S", xys(ws, total),
		"S_mats", xys(ws, mats),
		"S_nonmats", xys(ws, nonMats),
	)
	if err != nil {
		return err
	}

	return fig.Save(6*vg.Inch, 4*vg.Inch, out)
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	return pts
}

func realParts(zs []complex128) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = real(z)
	}

	return out
}

func imagParts(zs []complex128) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = imag(z)
	}

	return out
}
