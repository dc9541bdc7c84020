package wavelet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixel(t *testing.T) {
	t.Run("add/sub", func(tt *testing.T) {
		p := Pixel{1, 2, 3}
		p.Add(Pixel{0.5, 0.5, 0.5})
		if cmp.Equal(p, Pixel{1.5, 2.5, 3.5}) != true {
			tt.Errorf("%v", p)
		}
		p.Sub(Pixel{1.5, 2.5, 3.5})
		if cmp.Equal(p, Pixel{0, 0, 0}) != true {
			tt.Errorf("%v", p)
		}
	})
	t.Run("scale", func(tt *testing.T) {
		p := Pixel{1, -2, 4}
		p.Scale(0.5)
		if cmp.Equal(p, Pixel{0.5, -1, 2}) != true {
			tt.Errorf("%v", p)
		}
	})
	t.Run("addscaled", func(tt *testing.T) {
		p := Pixel{1, 1, 1}
		p.AddScaled(2, Pixel{1, 2, 3})
		if cmp.Equal(p, Pixel{3, 5, 7}) != true {
			tt.Errorf("%v", p)
		}
	})
	t.Run("dot", func(tt *testing.T) {
		if d := Dot(Pixel{1, 2, 3}, Pixel{4, 5, 6}); d != 32 {
			tt.Errorf("dot = %v", d)
		}
	})
	t.Run("channels independent", func(tt *testing.T) {
		p := Pixel{7}
		p.Fill(0.25)
		p.AddScaled(4, Pixel{1})
		if cmp.Equal(p, Pixel{4.25}) != true {
			tt.Errorf("%v", p)
		}
	})
}
