package wavelet

import (
	"github.com/pkg/errors"
)

// ConvolveDownsample filters every row of in with f and keeps every second
// response:
//
//	out[j] = shift + sum_k f[k] * in[2j - center + k]
//
// out must be half as wide as in and as tall. To filter columns, pass
// transposed views. in and out must not overlap.
func ConvolveDownsample(in, out View, f Filter, shift float64, b Boundary) error {
	if f.Len() < 1 {
		return errors.Wrap(ErrInvalidArgument, "convolve downsample: empty filter")
	}
	if in.Width() != 2*out.Width() || in.Height() != out.Height() || in.Channels() != out.Channels() {
		return errors.Wrapf(ErrDimensionMismatch,
			"convolve downsample: input %dx%d, output %dx%d, want output %dx%d",
			in.Width(), in.Height(), out.Width(), out.Height(), in.Width()/2, in.Height(),
		)
	}

	src, err := newRowReader(in, f.Radius(), b)
	if err != nil {
		return errors.WithStack(err)
	}

	center := f.Center()
	sum := make(Pixel, in.Channels())
	for y := 0; y < out.Height(); y += 1 {
		for j := 0; j < out.Width(); j += 1 {
			sum.Fill(shift)
			base := (2 * j) - center
			for k, w := range f.taps {
				sum.AddScaled(w, src.at(base+k, y))
			}
			copy(out.At(j, y), sum)
		}
	}
	return nil
}

// ConvolveUpsample is the adjoint of ConvolveDownsample. Every input sample,
// less shift, is scattered through f onto every second output position:
//
//	out[2i - center + k] += f[k] * (in[i] - shift)
//
// out must be twice as wide as in and as tall. out is accumulated into, not
// overwritten; zero it before the first call.
func ConvolveUpsample(in, out View, f Filter, shift float64, b Boundary) error {
	if f.Len() < 1 {
		return errors.Wrap(ErrInvalidArgument, "convolve upsample: empty filter")
	}
	if out.Width() != 2*in.Width() || in.Height() != out.Height() || in.Channels() != out.Channels() {
		return errors.Wrapf(ErrDimensionMismatch,
			"convolve upsample: input %dx%d, output %dx%d, want output %dx%d",
			in.Width(), in.Height(), out.Width(), out.Height(), in.Width()*2, in.Height(),
		)
	}

	dst, err := newRowWriter(out, f.Radius(), b)
	if err != nil {
		return errors.WithStack(err)
	}

	center := f.Center()
	value := make(Pixel, in.Channels())
	for y := 0; y < in.Height(); y += 1 {
		for i := 0; i < in.Width(); i += 1 {
			copy(value, in.At(i, y))
			for c := range value {
				value[c] -= shift
			}
			base := (2 * i) - center
			for k, w := range f.taps {
				dst.at(base+k, y).AddScaled(w, value)
			}
		}
	}
	dst.flush()
	return nil
}
