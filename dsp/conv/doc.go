// Package conv provides the convolution primitives used by the wavelet and
// filtering packages.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, for real and
//     complex-valued kernels. The complex path carries the Morlet wavelet
//     transform, where the kernel is re-evaluated per scale and FFT reuse
//     buys nothing.
//   - Overlap-add (OLA): FFT-based block convolution, used for the long
//     windowed-sinc kernels of the detrending filter.
//
// Convolve selects between the two automatically. Output modes follow the
// usual Full/Same/Valid conventions, and ReflectPad provides the mirrored
// boundary extension the sinc filter relies on for same-length trends.
package conv
