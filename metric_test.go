package wavelet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestMaxAbsDiff(t *testing.T) {
	a := newGray(2, 2, 0, 0.5, 1, 0.25)
	b := newGray(2, 2, 0, 0.75, 0.5, 0.25)

	d, err := MaxAbsDiff(a.View(), b.View())
	require.NoError(t, err)
	if d != 0.5 {
		t.Errorf("max diff %v", d)
	}

	_, err = MaxAbsDiff(a.View(), NewImage(2, 1, Gray).View())
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPSNR(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)

	t.Run("identical", func(tt *testing.T) {
		img := randomImage(9, 4, 4, RGB)
		p, err := PSNR(img.View(), img.Clone().View())
		require.NoError(tt, err)
		if p != 100 {
			tt.Errorf("psnr %v", p)
		}
	})
	t.Run("uniform error", func(tt *testing.T) {
		a := NewImage(4, 4, RGB)
		b := NewImage(4, 4, RGB)
		b.View().Fill(0.1)
		p, err := PSNR(a.View(), b.View())
		require.NoError(tt, err)
		if cmp.Equal(p, 20.0, opt) != true {
			tt.Errorf("psnr %v", p)
		}
	})
	t.Run("mismatch", func(tt *testing.T) {
		_, err := PSNR(NewImage(4, 4, RGB).View(), NewImage(4, 4, Gray).View())
		require.ErrorIs(tt, err, ErrDimensionMismatch)
	})
}

func TestSSIM(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)

	t.Run("identical", func(tt *testing.T) {
		img := randomImage(21, 20, 16, RGB)
		s, err := SSIM(img.View(), img.Clone().View())
		require.NoError(tt, err)
		if cmp.Equal(s, 1.0, opt) != true {
			tt.Errorf("ssim %v", s)
		}
	})
	t.Run("noise lowers", func(tt *testing.T) {
		img := randomImage(22, 16, 16, Gray)
		noisy := img.Clone()
		other := randomImage(23, 16, 16, Gray)
		for i := range noisy.Pix {
			noisy.Pix[i] = (noisy.Pix[i] + other.Pix[i]) / 2
		}
		s, err := SSIM(img.View(), noisy.View())
		require.NoError(tt, err)
		if s <= 0 || 0.99 < s {
			tt.Errorf("ssim %v", s)
		}
	})
	t.Run("uniform shift", func(tt *testing.T) {
		// flat blocks: only the luminance term moves
		a := NewImage(8, 8, Gray)
		a.View().Fill(0.5)
		b := NewImage(8, 8, Gray)
		b.View().Fill(0.25)
		s, err := SSIM(a.View(), b.View())
		require.NoError(tt, err)
		expect := ((2 * 0.5 * 0.25) + 0.0001) / ((0.5 * 0.5) + (0.25 * 0.25) + 0.0001)
		if cmp.Equal(s, expect, opt) != true {
			tt.Errorf("ssim %v, want %v", s, expect)
		}
	})
	t.Run("errors", func(tt *testing.T) {
		_, err := SSIM(NewImage(8, 8, RGB).View(), NewImage(8, 8, Gray).View())
		require.ErrorIs(tt, err, ErrDimensionMismatch)
		_, err = SSIM(NewImage(4, 8, Gray).View(), NewImage(4, 8, Gray).View())
		require.ErrorIs(tt, err, ErrInvalidDimensions)
	})
}
