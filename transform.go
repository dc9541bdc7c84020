package wavelet

import (
	"github.com/pkg/errors"
)

func checkLevel(op string, in, out View, bank *Bank) error {
	if bank == nil {
		return errors.Wrapf(ErrInvalidArgument, "%s: no filter bank", op)
	}
	if !sameSize(in, out) {
		return errors.Wrapf(ErrDimensionMismatch,
			"%s: input %dx%dx%d, output %dx%dx%d",
			op, in.Width(), in.Height(), in.Channels(), out.Width(), out.Height(), out.Channels(),
		)
	}
	if in.Width()%2 != 0 || in.Height()%2 != 0 || in.Width() < 2 || in.Height() < 2 {
		return errors.Wrapf(ErrInvalidDimensions, "%s: %dx%d is not divisible by 2", op, in.Width(), in.Height())
	}
	return nil
}

// Analyze applies one decomposition level. out receives four quadrants:
// LL top-left, HL (high x) top-right, LH (high y) bottom-left and HH
// bottom-right. High-pass quadrants are offset by HighPassShift.
// in and out may be the same view.
func Analyze(in, out View, bank *Bank, b Boundary) error {
	if err := checkLevel("analyze", in, out, bank); err != nil {
		return errors.WithStack(err)
	}
	width, height := in.Width(), in.Height()
	halfW, halfH := width/2, height/2

	// rows: low left, high right
	tmp := NewImage(width, height, in.Channels()).View()
	if err := ConvolveDownsample(in, tmp.Sub(0, 0, halfW, height), bank.AnalysisLow, 0, b); err != nil {
		return errors.WithStack(err)
	}
	if err := ConvolveDownsample(in, tmp.Sub(halfW, 0, halfW, height), bank.AnalysisHigh, HighPassShift, b); err != nil {
		return errors.WithStack(err)
	}

	// columns: low top, high bottom
	top := out.Sub(0, 0, width, halfH).Transpose()
	bottom := out.Sub(0, halfH, width, halfH).Transpose()
	if err := ConvolveDownsample(tmp.Transpose(), top, bank.AnalysisLow, 0, b); err != nil {
		return errors.WithStack(err)
	}
	if err := ConvolveDownsample(tmp.Transpose(), bottom, bank.AnalysisHigh, HighPassShift, b); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Synthesize inverts one Analyze level. in and out may be the same view.
func Synthesize(in, out View, bank *Bank, b Boundary) error {
	if err := checkLevel("synthesize", in, out, bank); err != nil {
		return errors.WithStack(err)
	}
	width, height := in.Width(), in.Height()
	halfW, halfH := width/2, height/2

	// columns: top and bottom halves accumulate into one full-height image
	tmp := NewImage(width, height, in.Channels()).View()
	top := in.Sub(0, 0, width, halfH).Transpose()
	bottom := in.Sub(0, halfH, width, halfH).Transpose()
	if err := ConvolveUpsample(top, tmp.Transpose(), bank.SynthesisLow, 0, b); err != nil {
		return errors.WithStack(err)
	}
	if err := ConvolveUpsample(bottom, tmp.Transpose(), bank.SynthesisHigh, HighPassShift, b); err != nil {
		return errors.WithStack(err)
	}

	// rows: left and right halves
	out.Zero()
	if err := ConvolveUpsample(tmp.Sub(0, 0, halfW, height), out, bank.SynthesisLow, 0, b); err != nil {
		return errors.WithStack(err)
	}
	if err := ConvolveUpsample(tmp.Sub(halfW, 0, halfW, height), out, bank.SynthesisHigh, HighPassShift, b); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
