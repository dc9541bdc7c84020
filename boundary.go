package wavelet

import (
	"strings"

	"github.com/pkg/errors"
)

// Boundary selects how samples beyond the edges of an axis are supplied
// to a filter window.
type Boundary int

const (
	// Cyclic treats every axis as periodic. Reconstruction is exact for
	// any perfect-reconstruction filter bank.
	Cyclic Boundary = iota

	// Mirror materializes mirrored border samples. Upsampling discards
	// contributions that land outside the axis, so pixels near the edges
	// are not reconstructed exactly for filters longer than two taps.
	Mirror
)

func (b Boundary) String() string {
	switch b {
	case Cyclic:
		return "cyclic"
	case Mirror:
		return "mirror"
	}
	return "unknown"
}

func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(name) {
	case "cyclic", "periodic", "wrap":
		return Cyclic, nil
	case "mirror", "symmetric":
		return Mirror, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "boundary: unknown policy %q", name)
}

func wrap(p, n int) int {
	return ((p % n) + n) % n
}

// FillBorders fills the r outer columns and rows on each side of the
// extended view v by mirroring the samples next to them: the sample at
// offset -i-1 from an edge takes the value at offset i.
// The r x r corners are left unspecified.
func FillBorders(v View, r int) error {
	if err := fillSides(v, r); err != nil {
		return errors.WithStack(err)
	}
	if err := fillSides(v.Transpose(), r); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Extend returns a copy of v with r mirrored samples added on all four sides.
func Extend(v View, r int) (*Image, error) {
	if r < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "mirror: negative radius %d", r)
	}
	if v.Width() < 2*r || v.Height() < 2*r {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"mirror: radius %d exceeds half of %dx%d", r, v.Width(), v.Height(),
		)
	}

	ext := NewImage(v.Width()+(2*r), v.Height()+(2*r), v.Channels())
	if err := ext.View().Sub(r, r, v.Width(), v.Height()).CopyFrom(v); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := FillBorders(ext.View(), r); err != nil {
		return nil, errors.WithStack(err)
	}
	return ext, nil
}

// padRows mirrors only along x, the axis a row convolution reads.
func padRows(v View, r int) (*Image, error) {
	if v.Width() < 2*r {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"mirror: radius %d exceeds half of axis length %d", r, v.Width(),
		)
	}

	ext := NewImage(v.Width()+(2*r), v.Height(), v.Channels())
	if err := ext.View().Sub(r, 0, v.Width(), v.Height()).CopyFrom(v); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := fillSides(ext.View(), r); err != nil {
		return nil, errors.WithStack(err)
	}
	return ext, nil
}

func fillSides(v View, r int) error {
	width := v.Width()
	inner := width - (2 * r)
	if r < 0 || inner < 2*r {
		return errors.Wrapf(ErrInvalidDimensions,
			"mirror: radius %d exceeds half of axis length %d", r, inner,
		)
	}
	for y := 0; y < v.Height(); y += 1 {
		for i := 0; i < r; i += 1 {
			copy(v.At(r-1-i, y), v.At(r+i, y))
			copy(v.At(width-r+i, y), v.At(width-r-1-i, y))
		}
	}
	return nil
}

// rowReader reads row samples at any x, including positions beyond the edges.
type rowReader struct {
	src    View
	offset int
	cyclic bool
}

func newRowReader(in View, r int, b Boundary) (rowReader, error) {
	switch b {
	case Cyclic:
		return rowReader{src: in, cyclic: true}, nil
	case Mirror:
		ext, err := padRows(in, r)
		if err != nil {
			return rowReader{}, errors.WithStack(err)
		}
		return rowReader{src: ext.View(), offset: r}, nil
	}
	return rowReader{}, errors.Wrapf(ErrInvalidArgument, "boundary: unknown policy %d", int(b))
}

func (r rowReader) at(x, y int) Pixel {
	if r.cyclic {
		return r.src.At(wrap(x, r.src.Width()), y)
	}
	return r.src.At(x+r.offset, y)
}

// rowWriter accumulates row samples at any x. Under Mirror it scatters into
// a padded scratch image and flush adds back only the part inside dst.
type rowWriter struct {
	dst    View
	pad    *Image
	offset int
}

func newRowWriter(out View, r int, b Boundary) (rowWriter, error) {
	switch b {
	case Cyclic:
		return rowWriter{dst: out}, nil
	case Mirror:
		pad := NewImage(out.Width()+(2*r), out.Height(), out.Channels())
		return rowWriter{dst: out, pad: pad, offset: r}, nil
	}
	return rowWriter{}, errors.Wrapf(ErrInvalidArgument, "boundary: unknown policy %d", int(b))
}

func (w rowWriter) at(x, y int) Pixel {
	if w.pad == nil {
		return w.dst.At(wrap(x, w.dst.Width()), y)
	}
	return w.pad.At(x+w.offset, y)
}

func (w rowWriter) flush() {
	if w.pad == nil {
		return
	}
	for y := 0; y < w.dst.Height(); y += 1 {
		for x := 0; x < w.dst.Width(); x += 1 {
			w.dst.At(x, y).Add(w.pad.At(x+w.offset, y))
		}
	}
}
