package biexp

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bath/stats/decay"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

const (
	minSamples               = 4
	degenerateMin            = 1e-14
	defaultMaxIterations     = 200
	defaultMaxEvaluations    = 2000
	defaultGradientTolerance = 1e-10

	// symmetrySplit separates the second component's search variable when
	// both components start from identical guesses.
	symmetrySplit = 0.05
)

// Errors returned by Fit.
var (
	ErrLengthMismatch = errors.New("biexp: tlist and ydata must have the same length")
	ErrTooFewSamples  = errors.New("biexp: need at least four samples")
	ErrDegenerateData = errors.New("biexp: ydata minimum too close to zero to normalize")
	ErrInvalidBounds  = errors.New("biexp: lower bound exceeds upper bound")
	ErrInvalidLoss    = errors.New("biexp: unknown loss")
	ErrInvalidMethod  = errors.New("biexp: unknown method")
)

// Loss selects the robust loss applied to squared residuals.
type Loss int

const (
	// LossCauchy is rho(z) = ln(1+z), damping the influence of outlier
	// samples.
	LossCauchy Loss = iota
	// LossLinear is plain least squares, rho(z) = z.
	LossLinear
)

func (l Loss) String() string {
	switch l {
	case LossCauchy:
		return "cauchy"
	case LossLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Method selects the minimizer driving the fit.
type Method int

const (
	// MethodBFGS is a quasi-Newton search using the analytic gradient.
	MethodBFGS Method = iota
	// MethodNelderMead is a gradient-free simplex search.
	MethodNelderMead
)

func (m Method) String() string {
	switch m {
	case MethodBFGS:
		return "bfgs"
	case MethodNelderMead:
		return "nelder-mead"
	default:
		return "unknown"
	}
}

// Config holds fitter parameters. Zero-valued guess and bound arrays select
// the DefaultConfig values. Bounds use parameter order (c1, v1, c2, v2); an
// equal lower/upper pair pins that parameter.
type Config struct {
	CkGuess [2]float64 // initial amplitudes
	VkGuess [2]float64 // initial rates
	Lower   [4]float64 // lower bounds in order c1, v1, c2, v2
	Upper   [4]float64 // upper bounds in order c1, v1, c2, v2

	Loss   Loss
	Method Method

	MaxIterations     int
	MaxEvaluations    int
	GradientTolerance float64
}

// DefaultConfig returns the standard fitter configuration: amplitudes in
// [0, +inf), rates in (-inf, 0] (decaying-exponential assumption), distinct
// interior guesses, Cauchy loss and the BFGS minimizer.
func DefaultConfig() Config {
	return Config{
		CkGuess:           [2]float64{0.1, 0.5},
		VkGuess:           [2]float64{-0.5, -0.1},
		Lower:             [4]float64{0, math.Inf(-1), 0, math.Inf(-1)},
		Upper:             [4]float64{math.Inf(1), 0, math.Inf(1), 0},
		Loss:              LossCauchy,
		Method:            MethodBFGS,
		MaxIterations:     defaultMaxIterations,
		MaxEvaluations:    defaultMaxEvaluations,
		GradientTolerance: defaultGradientTolerance,
	}
}

// Result holds the fitted exponential pair and solver diagnostics.
type Result struct {
	Ck       [2]float64 // fitted amplitudes, rescaled to the data scale
	Vk       [2]float64 // fitted decay rates
	Residual float64    // root-mean-square misfit against ydata

	Status optimize.Status
	Stats  optimize.Stats
}

// Fit fits y(t) = c1*exp(v1*t) + c2*exp(v2*t) to the samples (tlist, ydata).
//
// The data is normalized by its minimum value before fitting, so traces
// that are predominantly negative (such as Matsubara correlation tails)
// condition well; the fitted amplitudes are rescaled back to the original
// data scale afterwards. A minimum too close to zero cannot be used for
// normalization and returns ErrDegenerateData.
//
// Solver diagnostics pass through in the Result: a non-converged Status is
// not an error. Only invalid inputs and hard solver failures are.
func Fit(tlist, ydata []float64, cfg Config) (Result, error) {
	if len(tlist) != len(ydata) {
		return Result{}, ErrLengthMismatch
	}

	if len(tlist) < minSamples {
		return Result{}, ErrTooFewSamples
	}

	cfg = normalizeConfig(cfg)

	for i := range cfg.Lower {
		if cfg.Lower[i] > cfg.Upper[i] {
			return Result{}, fmt.Errorf("%w: parameter %d: [%g, %g]",
				ErrInvalidBounds, i, cfg.Lower[i], cfg.Upper[i])
		}
	}

	rho, drho, err := lossFor(cfg.Loss)
	if err != nil {
		return Result{}, err
	}

	var method optimize.Method

	switch cfg.Method {
	case MethodBFGS:
		method = &optimize.BFGS{}
	case MethodNelderMead:
		method = &optimize.NelderMead{}
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidMethod, cfg.Method)
	}

	yMin := floats.Min(ydata)
	if math.Abs(yMin) < degenerateMin {
		return Result{}, fmt.Errorf("%w: min=%g", ErrDegenerateData, yMin)
	}

	scaled := make([]float64, len(ydata))
	vecmath.ScaleBlock(scaled, ydata, 1/yMin)

	var trs [4]boundTransform
	for i := range trs {
		trs[i] = boundTransform{lo: cfg.Lower[i], hi: cfg.Upper[i]}
	}

	guess := [4]float64{cfg.CkGuess[0], cfg.VkGuess[0], cfg.CkGuess[1], cfg.VkGuess[1]}

	u0 := make([]float64, len(guess))
	for i, tr := range trs {
		u0[i] = tr.invert(clampInterior(guess[i], cfg.Lower[i], cfg.Upper[i]))
	}

	// Identical component guesses sit on a symmetry saddle of the
	// objective: both exponentials receive the same gradient and never
	// separate. Split the second rate.
	if u0[0] == u0[2] && u0[1] == u0[3] {
		u0[3] += symmetrySplit
	}

	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			c1, v1 := trs[0].value(u[0]), trs[1].value(u[1])
			c2, v2 := trs[2].value(u[2]), trs[3].value(u[3])

			var sum float64
			for i, t := range tlist {
				r := c1*math.Exp(v1*t) + c2*math.Exp(v2*t) - scaled[i]
				sum += rho(r * r)
			}

			return sum / 2
		},
		Grad: func(grad, u []float64) {
			c1, v1 := trs[0].value(u[0]), trs[1].value(u[1])
			c2, v2 := trs[2].value(u[2]), trs[3].value(u[3])

			var g0, g1, g2, g3 float64
			for i, t := range tlist {
				e1 := math.Exp(v1 * t)
				e2 := math.Exp(v2 * t)
				r := c1*e1 + c2*e2 - scaled[i]
				w := drho(r*r) * r

				g0 += w * e1
				g1 += w * c1 * t * e1
				g2 += w * e2
				g3 += w * c2 * t * e2
			}

			grad[0] = g0 * trs[0].deriv(u[0])
			grad[1] = g1 * trs[1].deriv(u[1])
			grad[2] = g2 * trs[2].deriv(u[2])
			grad[3] = g3 * trs[3].deriv(u[3])
		},
	}

	settings := &optimize.Settings{
		MajorIterations:   cfg.MaxIterations,
		FuncEvaluations:   cfg.MaxEvaluations,
		GradientThreshold: cfg.GradientTolerance,
	}

	sol, err := optimize.Minimize(problem, u0, settings, method)
	if err != nil {
		return Result{}, fmt.Errorf("biexp: minimize: %w", err)
	}

	out := Result{
		Ck:     [2]float64{yMin * trs[0].value(sol.X[0]), yMin * trs[2].value(sol.X[2])},
		Vk:     [2]float64{trs[1].value(sol.X[1]), trs[3].value(sol.X[3])},
		Status: sol.Status,
		Stats:  sol.Stats,
	}

	resid := Eval(out.Ck, out.Vk, tlist)
	for i := range resid {
		resid[i] -= ydata[i]
	}
	out.Residual = decay.Calculate(resid).RMS

	return out, nil
}

// Eval samples the bi-exponential model c1*exp(v1*t) + c2*exp(v2*t) on the
// given time grid.
func Eval(ck, vk [2]float64, tlist []float64) []float64 {
	out := make([]float64, len(tlist))
	for i, t := range tlist {
		out[i] = ck[0]*math.Exp(vk[0]*t) + ck[1]*math.Exp(vk[1]*t)
	}

	return out
}

// lossFor returns rho and its derivative for the squared-residual argument
// z = r*r.
func lossFor(l Loss) (rho, drho func(float64) float64, err error) {
	switch l {
	case LossCauchy:
		return func(z float64) float64 { return math.Log1p(z) },
			func(z float64) float64 { return 1 / (1 + z) },
			nil
	case LossLinear:
		return func(z float64) float64 { return z },
			func(float64) float64 { return 1 },
			nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidLoss, l)
	}
}

func normalizeConfig(cfg Config) Config {
	d := DefaultConfig()

	var noBounds [4]float64
	if cfg.Lower == noBounds && cfg.Upper == noBounds {
		cfg.Lower = d.Lower
		cfg.Upper = d.Upper
	}

	var noGuess [2]float64
	if cfg.CkGuess == noGuess && cfg.VkGuess == noGuess {
		cfg.CkGuess = d.CkGuess
		cfg.VkGuess = d.VkGuess
	}

	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = d.MaxIterations
	}

	if cfg.MaxEvaluations <= 0 {
		cfg.MaxEvaluations = d.MaxEvaluations
	}

	if cfg.GradientTolerance <= 0 {
		cfg.GradientTolerance = d.GradientTolerance
	}

	return cfg
}
