// Package smooth provides polynomial and moving-average smoothing for
// sampled signals.
package smooth

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the smoothing functions.
var (
	ErrEmptyInput     = errors.New("smooth: empty input")
	ErrEvenWindow     = errors.New("smooth: window length must be odd")
	ErrWindowTooLong  = errors.New("smooth: input shorter than window")
	ErrWindowTooShort = errors.New("smooth: window must not be shorter than 3")
	ErrOrderTooHigh   = errors.New("smooth: polynomial order must be smaller than window length")
)

// SavitzkyGolay smooths data with a Savitzky-Golay filter of the given
// window length and polynomial order.
//
// Interior points are filtered by convolution with the least-squares
// smoothing weights. The half-window at each boundary is filled by
// evaluating a polynomial fitted to the first (respectively last) full
// window, so the output keeps the input length without zero-padding bias.
//
// The window length must be odd, at least 3, not longer than data, and
// larger than the polynomial order.
func SavitzkyGolay(data []float64, windowLen, polyOrder int) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if windowLen < 3 {
		return nil, ErrWindowTooShort
	}
	if windowLen%2 == 0 {
		return nil, ErrEvenWindow
	}
	if windowLen > len(data) {
		return nil, ErrWindowTooLong
	}
	if polyOrder >= windowLen {
		return nil, ErrOrderTooHigh
	}

	weights, err := savgolWeights(windowLen, polyOrder)
	if err != nil {
		return nil, err
	}

	n := len(data)
	half := windowLen / 2
	out := make([]float64, n)

	for i := half; i < n-half; i++ {
		acc := 0.0
		for k, w := range weights {
			acc += w * data[i-half+k]
		}
		out[i] = acc
	}

	// Boundary fill: polynomial fit over the first/last full window,
	// evaluated at the positions the convolution cannot reach.
	headCoef, err := polyFit(data[:windowLen], polyOrder)
	if err != nil {
		return nil, err
	}
	for i := 0; i < half; i++ {
		out[i] = polyEval(headCoef, float64(i))
	}

	tailCoef, err := polyFit(data[n-windowLen:], polyOrder)
	if err != nil {
		return nil, err
	}
	for i := n - half; i < n; i++ {
		out[i] = polyEval(tailCoef, float64(i-(n-windowLen)))
	}

	return out, nil
}

// savgolWeights returns the least-squares smoothing weights for the window
// center. The weight vector is row zero of the pseudo-inverse of the
// Vandermonde design matrix: solving (A^T A) z = e0 and mapping back with
// A gives that row without forming the full inverse.
func savgolWeights(windowLen, polyOrder int) ([]float64, error) {
	half := windowLen / 2
	cols := polyOrder + 1

	a := mat.NewDense(windowLen, cols, nil)
	for i := 0; i < windowLen; i++ {
		t := float64(i - half)
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)

	e0 := mat.NewVecDense(cols, nil)
	e0.SetVec(0, 1)

	var z mat.VecDense
	if err := z.SolveVec(&ata, e0); err != nil {
		return nil, fmt.Errorf("smooth: singular design matrix: %w", err)
	}

	weights := make([]float64, windowLen)
	for i := range weights {
		acc := 0.0
		for j := 0; j < cols; j++ {
			acc += a.At(i, j) * z.AtVec(j)
		}
		weights[i] = acc
	}

	return weights, nil
}

// polyFit fits a polynomial of the given order to data sampled at
// positions 0, 1, ..., len(data)-1 and returns its coefficients in
// ascending order.
func polyFit(data []float64, order int) ([]float64, error) {
	rows := len(data)
	cols := order + 1

	a := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= float64(i)
		}
	}

	b := mat.NewVecDense(rows, nil)
	for i, y := range data {
		b.SetVec(i, y)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("smooth: polynomial fit failed: %w", err)
	}

	out := make([]float64, cols)
	for j := range out {
		out[j] = coef.AtVec(j)
	}

	return out, nil
}

// polyEval evaluates a polynomial with ascending coefficients at x.
func polyEval(coef []float64, x float64) float64 {
	acc := 0.0
	for j := len(coef) - 1; j >= 0; j-- {
		acc = acc*x + coef[j]
	}

	return acc
}

// OddWindow shrinks windowLen to the largest odd value not exceeding n.
// It returns windowLen unchanged when it already fits and is odd.
func OddWindow(windowLen, n int) int {
	if windowLen > n {
		windowLen = n
	}
	if windowLen%2 == 0 {
		windowLen--
	}
	if windowLen < 0 {
		return 0
	}

	return windowLen
}
