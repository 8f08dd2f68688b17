package smooth

import (
	"github.com/cwbudde/algo-wavelet/dsp/conv"
)

// WithKernel smooths data by convolving it with the given kernel under
// reflected boundary extension, so the output has the input length and
// reduced edge artifacts. The kernel is normalized to unit sum before
// convolution and must have odd length not exceeding len(data).
func WithKernel(data, kernel []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) < 3 {
		return nil, ErrWindowTooShort
	}
	if len(kernel)%2 == 0 {
		return nil, ErrEvenWindow
	}
	if len(kernel) > len(data) {
		return nil, ErrWindowTooLong
	}

	sum := 0.0
	for _, v := range kernel {
		sum += v
	}

	normalized := make([]float64, len(kernel))
	for i, v := range kernel {
		normalized[i] = v / sum
	}

	padded, err := conv.ReflectPad(data, len(kernel)-1)
	if err != nil {
		return nil, err
	}

	full, err := conv.ConvolveMode(padded, normalized, conv.ModeValid)
	if err != nil {
		return nil, err
	}

	// Valid convolution of the padded signal spans len(data)+len(kernel)-1
	// samples; trim half a kernel from each side to realign with the input.
	half := (len(kernel) - 1) / 2

	return full[half : len(full)-half], nil
}

// MovingAverage smooths data with a flat window of the given odd length
// under reflected boundary extension.
func MovingAverage(data []float64, windowLen int) ([]float64, error) {
	if windowLen < 3 {
		return nil, ErrWindowTooShort
	}

	kernel := make([]float64, windowLen)
	for i := range kernel {
		kernel[i] = 1
	}

	return WithKernel(data, kernel)
}
