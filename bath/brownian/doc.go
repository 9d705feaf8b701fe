// Package brownian models the underdamped Brownian motion spectral density
//
//	J(w) = lambda^2*gamma * w / ((w-a)(w+a)(w-conj(a))(w+conj(a)))
//
// where lambda is the coupling strength, gamma the broadening, w0 the
// resonance frequency, and the poles derive from them as
//
//	omega = sqrt(w0^2 - gamma^2/4)
//	a     = omega + i*gamma/2
//
// In the overdamped regime w0 < gamma/2 the square root turns omega purely
// imaginary; all formulas continue analytically and callers must tolerate
// complex intermediate values. Evaluated at real frequencies, J itself is
// real up to floating-point cancellation.
//
// The package also assembles the power spectrum of the bath correlation
// function and its split into a resonant (non-Matsubara) and a thermal
// (Matsubara) share, which pair with the exponent extractors in
// bath/exponents.
package brownian
