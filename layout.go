package wavelet

import (
	"github.com/pkg/errors"
)

// Orientation names a sub-band by the filters applied along x and y.
type Orientation int

const (
	LL Orientation = iota
	HL             // high x, low y: top-right
	LH             // low x, high y: bottom-left
	HH
)

func (o Orientation) String() string {
	switch o {
	case LL:
		return "LL"
	case HL:
		return "HL"
	case LH:
		return "LH"
	case HH:
		return "HH"
	}
	return "??"
}

// Band is one sub-band rectangle of a pyramid. Level 1 is the finest.
type Band struct {
	Level         int
	Orientation   Orientation
	X, Y          int
	Width, Height int
}

// Bands lists the sub-bands of a levels-deep pyramid of width x height,
// coarsest LL first, then HL, LH, HH from the coarsest level to the finest.
func Bands(width, height, levels int) ([]Band, error) {
	if levels < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "bands: %d levels, at least 1 is required", levels)
	}
	w, h := width, height
	for level := 1; level <= levels; level += 1 {
		if w < 2 || h < 2 || w%2 != 0 || h%2 != 0 {
			return nil, errors.Wrapf(ErrInvalidDimensions,
				"bands: %dx%d is not divisible by 2^%d", width, height, levels,
			)
		}
		w, h = w/2, h/2
	}

	bands := make([]Band, 0, (3*levels)+1)
	bands = append(bands, Band{levels, LL, 0, 0, w, h})
	for level := levels; 1 <= level; level -= 1 {
		w, h = width>>level, height>>level
		bands = append(bands,
			Band{level, HL, w, 0, w, h},
			Band{level, LH, 0, h, w, h},
			Band{level, HH, w, h, w, h},
		)
	}
	return bands, nil
}

func (v View) Band(b Band) View {
	return v.Sub(b.X, b.Y, b.Width, b.Height)
}
