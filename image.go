package wavelet

import (
	"github.com/pkg/errors"
)

// Image is a dense row-major buffer of multi-channel float pixels.
type Image struct {
	Pix      []float64
	Width    int
	Height   int
	Channels int
}

func NewImage(width, height, channels int) *Image {
	return &Image{
		Pix:      make([]float64, width*height*channels), // zero clear
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

func (img *Image) offset(x, y int) int {
	return ((y * img.Width) + x) * img.Channels
}

// At returns the pixel at (x, y) as a slice of the underlying storage.
func (img *Image) At(x, y int) Pixel {
	off := img.offset(x, y)
	return Pixel(img.Pix[off : off+img.Channels : off+img.Channels])
}

func (img *Image) View() View {
	return View{
		img:    img,
		width:  img.Width,
		height: img.Height,
	}
}

func (img *Image) Clone() *Image {
	pix := make([]float64, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{pix, img.Width, img.Height, img.Channels}
}

// View is a rectangular window over an Image's storage. x0, y0, width and
// height are in image coordinates; a transposed view swaps the axes it
// exposes, so column processing is row processing of Transpose().
type View struct {
	img           *Image
	x0, y0        int
	width, height int
	transposed    bool
}

func (v View) Width() int {
	if v.transposed {
		return v.height
	}
	return v.width
}

func (v View) Height() int {
	if v.transposed {
		return v.width
	}
	return v.height
}

func (v View) Channels() int {
	return v.img.Channels
}

func (v View) Transposed() bool {
	return v.transposed
}

func (v View) At(x, y int) Pixel {
	if v.transposed {
		return v.img.At(v.x0+y, v.y0+x)
	}
	return v.img.At(v.x0+x, v.y0+y)
}

// Sub returns the window (x, y, width, height) of v in v's own coordinates.
// It shares storage with v.
func (v View) Sub(x, y, width, height int) View {
	if v.transposed {
		return View{v.img, v.x0 + y, v.y0 + x, height, width, true}
	}
	return View{v.img, v.x0 + x, v.y0 + y, width, height, false}
}

func (v View) Transpose() View {
	v.transposed = !v.transposed
	return v
}

func (v View) Zero() {
	v.Fill(0)
}

func (v View) Fill(value float64) {
	for y := 0; y < v.height; y += 1 {
		off := v.img.offset(v.x0, v.y0+y)
		row := v.img.Pix[off : off+(v.width*v.img.Channels)]
		for i := range row {
			row[i] = value
		}
	}
}

// CopyFrom copies src into v. Both must have the same logical size.
func (v View) CopyFrom(src View) error {
	if v.Width() != src.Width() || v.Height() != src.Height() || v.Channels() != src.Channels() {
		return errors.Wrapf(ErrDimensionMismatch,
			"copy: destination %dx%dx%d, source %dx%dx%d",
			v.Width(), v.Height(), v.Channels(), src.Width(), src.Height(), src.Channels(),
		)
	}
	for y := 0; y < v.Height(); y += 1 {
		for x := 0; x < v.Width(); x += 1 {
			copy(v.At(x, y), src.At(x, y))
		}
	}
	return nil
}

// Clone returns a new Image holding a copy of v in v's orientation.
func (v View) Clone() *Image {
	img := NewImage(v.Width(), v.Height(), v.Channels())
	for y := 0; y < v.Height(); y += 1 {
		for x := 0; x < v.Width(); x += 1 {
			copy(img.At(x, y), v.At(x, y))
		}
	}
	return img
}

func sameSize(a, b View) bool {
	return a.Width() == b.Width() && a.Height() == b.Height() && a.Channels() == b.Channels()
}
