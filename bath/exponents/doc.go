// Package exponents extracts exponential decompositions of the underdamped
// Brownian motion bath correlation function.
//
// The decomposition splits C(t) into two families of terms. The
// non-Matsubara pair comes from the spectral density poles and carries the
// damped resonance; the Matsubara series comes from the poles of the thermal
// factor at the bosonic frequencies nu_n = 2*pi*n/beta and carries the
// finite-temperature tail. At zero temperature the series degenerates into a
// continuous branch cut, evaluated numerically by MatsubaraZero.
//
// Correlation combines both families into correlation samples via
// bath/core's ExpSum, which is the form consumed by hierarchical equation
// of motion solvers and the natural target for checking reconstruction
// quality against the integrator in bath/correlation.
package exponents
