package wavelet

import (
	"github.com/pkg/errors"
)

// checkPyramid validates every level up front so that a failing call never
// leaves a partially written output.
func checkPyramid(op string, levels int, in, out View, bank *Bank, b Boundary, forward bool) error {
	if levels < 1 {
		return errors.Wrapf(ErrInvalidArgument, "%s: %d levels, at least 1 is required", op, levels)
	}
	if bank == nil {
		return errors.Wrapf(ErrInvalidArgument, "%s: no filter bank", op)
	}
	if !sameSize(in, out) {
		return errors.Wrapf(ErrDimensionMismatch,
			"%s: input %dx%dx%d, output %dx%dx%d",
			op, in.Width(), in.Height(), in.Channels(), out.Width(), out.Height(), out.Channels(),
		)
	}

	width, height := in.Width(), in.Height()
	for level := 1; level <= levels; level += 1 {
		if width < 2 || height < 2 || width%2 != 0 || height%2 != 0 {
			return errors.Wrapf(ErrInvalidDimensions,
				"%s: level %d of %d works on %dx%d, which is not divisible by 2",
				op, level, levels, width, height,
			)
		}
		if forward && b == Mirror {
			r := bank.analysisRadius()
			if width < 2*r || height < 2*r {
				return errors.Wrapf(ErrInvalidDimensions,
					"%s: level %d of %d: mirror radius %d exceeds half of %dx%d",
					op, level, levels, r, width, height,
				)
			}
		}
		width, height = width/2, height/2
	}
	return nil
}

// Decompose builds a levels-deep pyramid of in into out. Each level after
// the first re-applies Analyze to the LL quadrant of the previous one.
func Decompose(levels int, in, out View, bank *Bank, b Boundary) error {
	if err := checkPyramid("decompose", levels, in, out, bank, b, true); err != nil {
		return errors.WithStack(err)
	}
	return decompose(levels, in, out, bank, b)
}

func decompose(levels int, in, out View, bank *Bank, b Boundary) error {
	if err := Analyze(in, out, bank, b); err != nil {
		return errors.WithStack(err)
	}
	if levels == 1 {
		return nil
	}

	// LL is written back in place through a sub-view of out
	ll := out.Sub(0, 0, out.Width()/2, out.Height()/2)
	tmp := ll.Clone()
	if err := decompose(levels-1, tmp.View(), ll, bank, b); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Reconstruct inverts Decompose. in is left untouched unless it is out.
func Reconstruct(levels int, in, out View, bank *Bank, b Boundary) error {
	if err := checkPyramid("reconstruct", levels, in, out, bank, b, false); err != nil {
		return errors.WithStack(err)
	}
	return reconstruct(levels, in, out, bank, b)
}

func reconstruct(levels int, in, out View, bank *Bank, b Boundary) error {
	if levels == 1 {
		if err := Synthesize(in, out, bank, b); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}

	halfW, halfH := in.Width()/2, in.Height()/2
	tmp := in.Clone()
	if err := reconstruct(levels-1, in.Sub(0, 0, halfW, halfH), tmp.View().Sub(0, 0, halfW, halfH), bank, b); err != nil {
		return errors.WithStack(err)
	}
	if err := Synthesize(tmp.View(), out, bank, b); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Forward returns a new pyramid image of img.
func Forward(levels int, img *Image, bank *Bank, b Boundary) (*Image, error) {
	if img == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "forward: nil image")
	}
	out := NewImage(img.Width, img.Height, img.Channels)
	if err := Decompose(levels, img.View(), out.View(), bank, b); err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// Inverse returns a new image reconstructed from the pyramid pyr.
func Inverse(levels int, pyr *Image, bank *Bank, b Boundary) (*Image, error) {
	if pyr == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "inverse: nil pyramid")
	}
	out := NewImage(pyr.Width, pyr.Height, pyr.Channels)
	if err := Reconstruct(levels, pyr.View(), out.View(), bank, b); err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
