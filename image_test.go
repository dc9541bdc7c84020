package wavelet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	// 4x3
	img := newGray(4, 3,
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	)

	t.Run("at", func(tt *testing.T) {
		v := img.View()
		if v.At(3, 2)[0] != 11 {
			tt.Errorf("At(3,2) = %v", v.At(3, 2))
		}
	})
	t.Run("transpose", func(tt *testing.T) {
		v := img.View().Transpose()
		if v.Width() != 3 || v.Height() != 4 {
			tt.Fatalf("size %dx%d", v.Width(), v.Height())
		}
		if v.At(2, 1)[0] != 9 {
			tt.Errorf("At(2,1) = %v", v.At(2, 1))
		}
		if v.Transpose().At(1, 2)[0] != 9 {
			tt.Errorf("double transpose")
		}
	})
	t.Run("sub", func(tt *testing.T) {
		s := img.View().Sub(1, 1, 2, 2)
		got := []float64{s.At(0, 0)[0], s.At(1, 0)[0], s.At(0, 1)[0], s.At(1, 1)[0]}
		if cmp.Equal(got, []float64{5, 6, 9, 10}) != true {
			tt.Errorf("%v", got)
		}
	})
	t.Run("sub of transposed", func(tt *testing.T) {
		s := img.View().Transpose().Sub(1, 2, 2, 2)
		// transposed coordinates (1,2) is image (2,1)
		if s.At(0, 0)[0] != 6 || s.At(1, 0)[0] != 10 || s.At(0, 1)[0] != 7 {
			tt.Errorf("%v %v %v", s.At(0, 0), s.At(1, 0), s.At(0, 1))
		}
		if s.Width() != 2 || s.Height() != 2 {
			tt.Errorf("size %dx%d", s.Width(), s.Height())
		}
	})
	t.Run("sub shares storage", func(tt *testing.T) {
		c := img.Clone()
		c.View().Sub(2, 0, 2, 3).Fill(-1)
		want := []float64{
			0, 1, -1, -1,
			4, 5, -1, -1,
			8, 9, -1, -1,
		}
		if cmp.Equal(c.Pix, want) != true {
			tt.Errorf("%v", c.Pix)
		}
	})
	t.Run("clone of transposed", func(tt *testing.T) {
		c := img.View().Transpose().Clone()
		if c.Width != 3 || c.Height != 4 || c.At(2, 3)[0] != 11 || c.At(1, 0)[0] != 4 {
			tt.Errorf("%+v", c)
		}
	})
	t.Run("copy", func(tt *testing.T) {
		dst := NewImage(2, 2, Gray)
		require.NoError(tt, dst.View().CopyFrom(img.View().Sub(2, 1, 2, 2)))
		if cmp.Equal(dst.Pix, []float64{6, 7, 10, 11}) != true {
			tt.Errorf("%v", dst.Pix)
		}
		err := dst.View().CopyFrom(img.View())
		require.ErrorIs(tt, err, ErrDimensionMismatch)
	})
}
