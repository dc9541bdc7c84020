package wavelet

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultTolerance bounds the coefficient-sum checks of Bank.Validate.
const DefaultTolerance = 1e-9

// Filter is an immutable FIR kernel centered at (Len()-1)/2.
type Filter struct {
	taps []float64
}

func NewFilter(taps ...float64) (Filter, error) {
	if len(taps) < 1 {
		return Filter{}, errors.Wrap(ErrInvalidArgument, "filter: no coefficients")
	}
	c := make([]float64, len(taps))
	copy(c, taps)
	return Filter{c}, nil
}

func (f Filter) Len() int {
	return len(f.taps)
}

func (f Filter) Center() int {
	return (len(f.taps) - 1) / 2
}

// Radius is the look-around the filter needs on either side of its center.
func (f Filter) Radius() int {
	return len(f.taps) / 2
}

func (f Filter) Sum() float64 {
	return lo.Sum(f.taps)
}

func (f Filter) Taps() []float64 {
	c := make([]float64, len(f.taps))
	copy(c, f.taps)
	return c
}

func (f Filter) scaled(s float64) Filter {
	return Filter{lo.Map(f.taps, func(v float64, _ int) float64 {
		return v * s
	})}
}

// Bank is the four filters of a two-channel filter bank.
type Bank struct {
	Name          string
	Family        Family
	AnalysisLow   Filter
	AnalysisHigh  Filter
	SynthesisLow  Filter
	SynthesisHigh Filter
}

// NewOrthogonal derives a bank from a synthesis low-pass prototype whose
// coefficients sum to 2. The synthesis high-pass is the reversed prototype
// with every odd coefficient negated, and both analysis filters are the
// synthesis filters halved. A bank failing Validate is rejected.
func NewOrthogonal(name string, synthesisLow []float64) (*Bank, error) {
	lowS, err := NewFilter(synthesisLow...)
	if err != nil {
		return nil, errors.Wrapf(err, "orthogonal bank %s", name)
	}
	n := lowS.Len()
	if n%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "orthogonal bank %s: odd prototype length %d", name, n)
	}

	highS := Filter{lo.Times(n, func(k int) float64 {
		v := lowS.taps[n-1-k]
		if k%2 == 1 {
			return -v
		}
		return v
	})}

	bank := &Bank{
		Name:          name,
		Family:        Orthogonal,
		AnalysisLow:   lowS.scaled(0.5),
		AnalysisHigh:  highS.scaled(0.5),
		SynthesisLow:  lowS,
		SynthesisHigh: highS,
	}
	if err := bank.Validate(DefaultTolerance); err != nil {
		return nil, errors.WithStack(err)
	}
	return bank, nil
}

// NewBiorthogonal derives a bank from independent analysis and synthesis
// low-pass prototypes. Their scaling is taken as given: the analysis
// prototype must sum to 1 and the synthesis prototype to 2, and both
// derived high-pass filters must sum to 0.
func NewBiorthogonal(name string, analysisLow, synthesisLow []float64) (*Bank, error) {
	lowA, err := NewFilter(analysisLow...)
	if err != nil {
		return nil, errors.Wrapf(err, "biorthogonal bank %s: analysis", name)
	}
	lowS, err := NewFilter(synthesisLow...)
	if err != nil {
		return nil, errors.Wrapf(err, "biorthogonal bank %s: synthesis", name)
	}
	bank := &Bank{
		Name:          name,
		Family:        Biorthogonal,
		AnalysisLow:   lowA,
		AnalysisHigh:  alternateFlip(lowS),
		SynthesisLow:  lowS,
		SynthesisHigh: alternateFlip(lowA),
	}
	if err := bank.Validate(DefaultTolerance); err != nil {
		return nil, errors.WithStack(err)
	}
	return bank, nil
}

// alternateFlip returns g(n) = (-1)^n * p(1-n), where n and the index of p
// are taken relative to the filter centers. The result is zero-padded until
// its own center lines up, which adds one leading zero for odd-length p.
func alternateFlip(p Filter) Filter {
	n := p.Len()
	c := p.Center()
	first, last := c+2-n, c+1 // support of g relative to its center

	size := n
	for {
		cc := (size - 1) / 2
		if -cc <= first && last <= size-1-cc {
			break
		}
		size += 1
	}

	cc := (size - 1) / 2
	taps := make([]float64, size)
	for k := range taps {
		m := k - cc
		src := 1 - m + c
		if src < 0 || n <= src {
			continue
		}
		v := p.taps[src]
		if m&1 != 0 {
			v = -v
		}
		taps[k] = v
	}
	return Filter{taps}
}

// Radius is the largest look-around of the four filters.
func (b *Bank) Radius() int {
	return lo.Max([]int{
		b.AnalysisLow.Radius(),
		b.AnalysisHigh.Radius(),
		b.SynthesisLow.Radius(),
		b.SynthesisHigh.Radius(),
	})
}

func (b *Bank) analysisRadius() int {
	return max(b.AnalysisLow.Radius(), b.AnalysisHigh.Radius())
}

// Validate checks the DC invariants: the analysis low-pass sums to 1, the
// synthesis low-pass to 2, and both high-pass filters to 0.
func (b *Bank) Validate(tol float64) error {
	checks := []struct {
		name   string
		filter Filter
		want   float64
	}{
		{"analysis low-pass", b.AnalysisLow, 1},
		{"synthesis low-pass", b.SynthesisLow, 2},
		{"analysis high-pass", b.AnalysisHigh, 0},
		{"synthesis high-pass", b.SynthesisHigh, 0},
	}
	for _, c := range checks {
		if c.filter.Len() < 1 {
			return errors.Wrapf(ErrInvalidArgument, "bank %s: empty %s", b.Name, c.name)
		}
		if sum := c.filter.Sum(); tol < math.Abs(sum-c.want) {
			return errors.Wrapf(ErrInvalidArgument,
				"bank %s: %s sums to %g, want %g", b.Name, c.name, sum, c.want,
			)
		}
	}
	return nil
}
