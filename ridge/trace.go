package ridge

import "errors"

// Errors returned by the tracing functions.
var (
	ErrEmptySpectrum    = errors.New("ridge: empty spectrum")
	ErrStartOutside     = errors.New("ridge: start row outside spectrum")
	ErrNegativeSteps    = errors.New("ridge: negative step budget")
	ErrSpectrumTooSmall = errors.New("ridge: too few period rows for the jump range")
)

// MaxTrace returns the row index of maximum power for every time column.
//
// Each column is optimized independently; nothing penalizes jumps between
// adjacent time points, so the resulting trace can be discontinuous. That
// makes it a cheap O(rows*cols) baseline, best suited to spectra with a
// single clearly dominant oscillation.
func MaxTrace(modulus [][]float64) ([]int, error) {
	if len(modulus) == 0 || len(modulus[0]) == 0 {
		return nil, ErrEmptySpectrum
	}

	cols := len(modulus[0])
	out := make([]int, cols)

	for t := 0; t < cols; t++ {
		best := 0
		for row := 1; row < len(modulus); row++ {
			if modulus[row][t] > modulus[best][t] {
				best = row
			}
		}
		out[t] = best
	}

	return out, nil
}
