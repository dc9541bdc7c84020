package wavelet

import (
	"math/rand/v2"
	"testing"
)

func newGray(width, height int, values ...float64) *Image {
	img := NewImage(width, height, Gray)
	copy(img.Pix, values)
	return img
}

func randomImage(seed uint64, width, height, channels int) *Image {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	img := NewImage(width, height, channels)
	for i := range img.Pix {
		img.Pix[i] = rng.Float64()
	}
	return img
}

func gradientImage(width, height int) *Image {
	img := NewImage(width, height, RGB)
	for y := 0; y < height; y += 1 {
		for x := 0; x < width; x += 1 {
			p := img.At(x, y)
			p[0] = float64(x) / float64(width)
			p[1] = float64(y) / float64(height)
			p[2] = float64(x+y) / float64(width+height)
		}
	}
	return img
}

func mustLookup(t *testing.T, name string) *Bank {
	t.Helper()
	bank, err := Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %+v", name, err)
	}
	return bank
}

func maxDiff(t *testing.T, a, b View) float64 {
	t.Helper()
	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return d
}
