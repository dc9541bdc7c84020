package main

import (
	"github.com/pkg/errors"

	"github.com/octu0/wavelet"
)

type bandStat struct {
	Band   wavelet.Band
	Mean   float64
	Energy float64
}

// measureBands reports the mean of every band and the energy of its
// samples around the value that stands for zero: 0 for LL, the high-pass
// shift for the detail bands.
func measureBands(pyr *wavelet.Image, levels int) ([]bandStat, error) {
	bands, err := wavelet.Bands(pyr.Width, pyr.Height, levels)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats := make([]bandStat, 0, len(bands))
	for _, b := range bands {
		zero := wavelet.HighPassShift
		if b.Orientation == wavelet.LL {
			zero = 0
		}

		v := pyr.View().Band(b)
		sum, energy := 0.0, 0.0
		for y := 0; y < v.Height(); y += 1 {
			for x := 0; x < v.Width(); x += 1 {
				for _, s := range v.At(x, y) {
					sum += s
					energy += (s - zero) * (s - zero)
				}
			}
		}
		n := float64(v.Width() * v.Height() * v.Channels())
		stats = append(stats, bandStat{b, sum / n, energy / n})
	}
	return stats, nil
}
