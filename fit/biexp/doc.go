// Package biexp fits sampled decay data with a sum of two real
// exponentials.
//
// The model is
//
//	y(t) = c1*exp(v1*t) + c2*exp(v2*t)
//
// with non-negative amplitudes and non-positive rates by default, the
// natural shape of decaying correlation data. Key properties:
//
//   - Box constraints on (c1, v1, c2, v2) are realized through smooth
//     variable transforms, so an unconstrained quasi-Newton minimizer
//     searches the interior of the feasible region
//   - A robust Cauchy loss damps the influence of outlier samples
//   - Data is normalized by its minimum before fitting and the fitted
//     amplitudes are rescaled back afterwards
//
// # Usage
//
// Collapse a sampled Matsubara correlation tail into two exponential
// terms for cheap downstream propagation:
//
//	res, err := biexp.Fit(tlist, ydata, biexp.DefaultConfig())
//	if err != nil {
//	    // degenerate data or solver failure
//	}
//	// res.Ck, res.Vk hold the fitted pair; res.Status and res.Stats
//	// carry the solver diagnostics, res.Residual the RMS misfit.
//
// The fitter does not interpret convergence: a solver that stops on an
// iteration limit still returns a Result, and the caller decides whether
// to retry with different guesses or bounds.
package biexp
