// Package correlation computes bath correlation functions numerically.
//
// Bath integrates the thermally weighted spectral density
//
//	C(t) = 1/pi * int_0^wcut [ coth(beta*w/2)*cos(w*t) - i*sin(w*t) ] * Re J(w) dw
//
// and serves as the ground truth that exponential decompositions from
// bath/exponents are checked against. The integral runs over a finite
// cutoff; choosing wcut large enough for J to have decayed is the caller's
// responsibility and the neglected tail is a documented truncation error,
// not a fault.
//
// FromSpectrum approaches the same function from the frequency side: it
// inverts a sampled power spectrum with an FFT, which makes an independent
// cross-check between the spectrum assembler in bath/brownian and the time
// domain integrator.
//
// # Performance
//
// Each time sample costs two adaptive quadratures. Samples are independent,
// so Bath fans them out across a bounded worker pool; per-sample arithmetic
// is unaffected by the fan-out and results are identical for any worker
// count.
package correlation
