// Package ridge extracts and evaluates the dominant instantaneous-period
// trace of a wavelet power spectrum.
//
// Two tracing strategies are provided. MaxTrace picks the per-column
// power maximum independently for every time point; it is fast and
// deterministic but has no continuity penalty, so the trace may jump
// arbitrarily between adjacent columns. The Annealer runs a simulated
// annealing search over whole ridge candidates with a curvature penalty,
// trading runtime for smoothness.
//
// Evaluate converts a raw ridge (row indices over time) into physical
// readouts: instantaneous period, phase, variance-normalized power and
// the Lilly (2010) amplitude estimate, with optional power thresholding
// and Savitzky-Golay period smoothing. FindCOICrossing locates the points
// where the ridge leaves the cone of influence at either spectrum edge.
package ridge
