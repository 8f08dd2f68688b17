package conv

import (
	"errors"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrPadTooLong       = errors.New("conv: pad length exceeds signal length")
	ErrKernelTooLong    = errors.New("conv: kernel longer than signal")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
// For longer kernels, use FFT-based overlap-add.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)

	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	core.Zero(dst)

	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// DirectComplex performs direct linear convolution of a real signal with a
// complex kernel. Returns a new slice of length len(a) + len(b) - 1.
//
// This carries the per-scale wavelet convolution: the Morlet kernel is
// complex-valued while the analyzed signal stays real.
func DirectComplex(a []float64, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]complex128, len(a)+len(b)-1)
	for i := range a {
		av := complex(a[i], 0)
		for j := range b {
			result[i+j] += av * b[j]
		}
	}

	return result, nil
}

// DirectComplexMode performs complex-kernel convolution with the given
// output mode, trimmed relative to the signal a.
func DirectComplexMode(a []float64, b []complex128, mode Mode) ([]complex128, error) {
	full, err := DirectComplex(a, b)
	if err != nil {
		return nil, err
	}

	lo, hi := modeBounds(len(a), len(b), mode)

	return full[lo:hi], nil
}

// Convolve performs linear convolution with automatic algorithm selection.
// For short kernels (<= 64 samples), uses direct convolution.
// For longer kernels, uses FFT-based overlap-add.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Ensure a is the longer signal for efficient processing.
	if len(b) > len(a) {
		a, b = b, a
	}

	const directThreshold = 64
	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	lo, hi := modeBounds(len(a), len(b), mode)

	return full[lo:hi], nil
}

// modeBounds returns the [lo, hi) range of a full convolution result for
// the requested output mode.
func modeBounds(lenA, lenB int, mode Mode) (int, int) {
	fullLen := lenA + lenB - 1

	switch mode {
	case ModeSame:
		// Center the result to match length of first input.
		start := (lenB - 1) / 2
		return start, start + lenA
	case ModeValid:
		// Return only the fully overlapping portion.
		if lenA >= lenB {
			return lenB - 1, lenA
		}
		return lenA - 1, lenB
	default:
		return 0, fullLen
	}
}

// ReflectPad extends the signal by n samples at each end, mirrored around
// the first and last sample (which are not repeated):
//
//	x[n], ..., x[1], x[0], ..., x[N-1], x[N-2], ..., x[N-1-n]
//
// Requires 0 < n < len(signal).
func ReflectPad(signal []float64, n int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if n <= 0 || n >= len(signal) {
		return nil, ErrPadTooLong
	}

	out := make([]float64, len(signal)+2*n)
	for i := 0; i < n; i++ {
		out[i] = signal[n-i]
	}
	copy(out[n:], signal)

	last := len(signal) - 1
	for i := 0; i < n; i++ {
		out[n+len(signal)+i] = signal[last-1-i]
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
