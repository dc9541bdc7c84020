package wavelet

import (
	"math"

	"github.com/pkg/errors"
)

// MaxAbsDiff returns the largest per-channel absolute difference of a and b.
func MaxAbsDiff(a, b View) (float64, error) {
	if !sameSize(a, b) {
		return 0, errors.Wrapf(ErrDimensionMismatch,
			"max diff: %dx%dx%d vs %dx%dx%d",
			a.Width(), a.Height(), a.Channels(), b.Width(), b.Height(), b.Channels(),
		)
	}
	maxDiff := 0.0
	for y := 0; y < a.Height(); y += 1 {
		for x := 0; x < a.Width(); x += 1 {
			pa, pb := a.At(x, y), b.At(x, y)
			for c := range pa {
				if d := math.Abs(pa[c] - pb[c]); maxDiff < d {
					maxDiff = d
				}
			}
		}
	}
	return maxDiff, nil
}

// PSNR calculates Peak Signal-to-Noise Ratio over all channels for samples
// in the 0..1 range. Identical inputs report 100.
func PSNR(a, b View) (float64, error) {
	if !sameSize(a, b) {
		return 0, errors.Wrapf(ErrDimensionMismatch,
			"psnr: %dx%dx%d vs %dx%dx%d",
			a.Width(), a.Height(), a.Channels(), b.Width(), b.Height(), b.Channels(),
		)
	}

	mse := 0.0
	diff := make(Pixel, a.Channels())
	for y := 0; y < a.Height(); y += 1 {
		for x := 0; x < a.Width(); x += 1 {
			copy(diff, a.At(x, y))
			diff.Sub(b.At(x, y))
			mse += Dot(diff, diff)
		}
	}
	samples := float64(a.Width() * a.Height() * a.Channels())
	if samples == 0 {
		return 0, errors.Wrap(ErrInvalidDimensions, "psnr: empty image")
	}
	mse /= samples

	if mse == 0 {
		return 100.0, nil // Infinite
	}
	return 20 * math.Log10(1.0/math.Sqrt(mse)), nil
}

const ssimBlockSize = 8

// SSIM calculates the Structural Similarity Index as the mean over
// non-overlapping 8x8 blocks and over all channels, for samples in the
// 0..1 range. Partial blocks at the right and bottom edges are skipped.
func SSIM(a, b View) (float64, error) {
	if !sameSize(a, b) {
		return 0, errors.Wrapf(ErrDimensionMismatch,
			"ssim: %dx%dx%d vs %dx%dx%d",
			a.Width(), a.Height(), a.Channels(), b.Width(), b.Height(), b.Channels(),
		)
	}
	if a.Width() < ssimBlockSize || a.Height() < ssimBlockSize {
		return 0, errors.Wrapf(ErrInvalidDimensions,
			"ssim: %dx%d is smaller than one %dx%d block", a.Width(), a.Height(), ssimBlockSize, ssimBlockSize,
		)
	}

	// K1=0.01, K2=0.03 with peak 1.0
	c1 := 0.01 * 0.01
	c2 := 0.03 * 0.03

	total := 0.0
	count := 0
	for c := 0; c < a.Channels(); c += 1 {
		for y := 0; y+ssimBlockSize <= a.Height(); y += ssimBlockSize {
			for x := 0; x+ssimBlockSize <= a.Width(); x += ssimBlockSize {
				l, cs := ssimBlock(a, b, c, x, y, c1, c2)
				total += l * cs
				count += 1
			}
		}
	}
	return total / float64(count), nil
}

// ssimBlock returns the luminance term and the contrast*structure term of
// one block of channel c.
func ssimBlock(a, b View, c, x, y int, c1, c2 float64) (float64, float64) {
	var mu1, mu2 float64
	for j := 0; j < ssimBlockSize; j += 1 {
		for i := 0; i < ssimBlockSize; i += 1 {
			mu1 += a.At(x+i, y+j)[c]
			mu2 += b.At(x+i, y+j)[c]
		}
	}
	n := float64(ssimBlockSize * ssimBlockSize)
	mu1 /= n
	mu2 /= n

	var sigma1Sq, sigma2Sq, sigma12 float64
	for j := 0; j < ssimBlockSize; j += 1 {
		for i := 0; i < ssimBlockSize; i += 1 {
			d1 := a.At(x+i, y+j)[c] - mu1
			d2 := b.At(x+i, y+j)[c] - mu2
			sigma1Sq += (d1 * d1)
			sigma2Sq += (d2 * d2)
			sigma12 += (d1 * d2)
		}
	}
	sigma1Sq /= (n - 1)
	sigma2Sq /= (n - 1)
	sigma12 /= (n - 1)

	l := ((2 * mu1 * mu2) + c1) / ((mu1 * mu1) + (mu2 * mu2) + c1)
	cs := ((2 * sigma12) + c2) / (sigma1Sq + sigma2Sq + c2)
	return l, cs
}
