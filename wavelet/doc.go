// Package wavelet implements the continuous wavelet transform with a
// Morlet mother wavelet for time-frequency analysis of non-stationary
// signals.
//
// The conventions follow Torrence & Compo, "A Practical Guide to Wavelet
// Analysis" (1998): periods map to scales through the admissible relation
// for a Morlet of central frequency omega0, and the returned power is
// normalized by signal variance so a white-noise signal has expected
// power one at every scale ("white-noise power" units).
//
// An Analyzer holds the engine constants (omega0, the support clipping
// threshold) as immutable per-instance configuration, so analyzers with
// different constants can coexist. ComputeSpectrum is the entry point;
// the ridge package consumes its output.
package wavelet
