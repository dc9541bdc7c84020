package wavelet

import (
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Daubechies orthonormal scaling filters (coefficients sum to sqrt(2)).
// https://en.wikipedia.org/wiki/Daubechies_wavelet
var (
	sqrt3  = math.Sqrt(3)
	sqrt10 = math.Sqrt(10)
	db3s   = math.Sqrt(5 + (2 * sqrt10))

	daubechies4 = []float64{
		(1 + sqrt3) / (4 * math.Sqrt2),
		(3 + sqrt3) / (4 * math.Sqrt2),
		(3 - sqrt3) / (4 * math.Sqrt2),
		(1 - sqrt3) / (4 * math.Sqrt2),
	}
	daubechies6 = []float64{
		(1 + sqrt10 + db3s) * math.Sqrt2 / 32,
		(5 + sqrt10 + (3 * db3s)) * math.Sqrt2 / 32,
		(10 - (2 * sqrt10) + (2 * db3s)) * math.Sqrt2 / 32,
		(10 - (2 * sqrt10) - (2 * db3s)) * math.Sqrt2 / 32,
		(5 + sqrt10 - (3 * db3s)) * math.Sqrt2 / 32,
		(1 + sqrt10 - db3s) * math.Sqrt2 / 32,
	}
	daubechies8 = []float64{
		0.2303778133088964,
		0.7148465705529154,
		0.6308807679298587,
		-0.0279837694168599,
		-0.1870348117190931,
		0.0308413818355607,
		0.0328830116668852,
		-0.0105974017850690,
	}
)

// CDF 9/7 (bior4.4) low-pass filters, both normalized to sum to sqrt(2).
var (
	cdf97Analysis = []float64{
		0.03782845550726404,
		-0.023849465019556843,
		-0.11062440441843718,
		0.37740285561283066,
		0.8526986790088938,
		0.37740285561283066,
		-0.11062440441843718,
		-0.023849465019556843,
		0.03782845550726404,
	}
	cdf97Synthesis = []float64{
		-0.06453888262869706,
		-0.04068941760916406,
		0.41809227322161724,
		0.7884856164055829,
		0.41809227322161724,
		-0.04068941760916406,
		-0.06453888262869706,
	}
)

func scale(taps []float64, s float64) []float64 {
	return lo.Map(taps, func(v float64, _ int) float64 {
		return v * s
	})
}

type catalogEntry func(name string) (*Bank, error)

func orthonormal(taps []float64) catalogEntry {
	return func(name string) (*Bank, error) {
		return NewOrthogonal(name, scale(taps, math.Sqrt2))
	}
}

var catalog = map[string]catalogEntry{
	"haar": func(name string) (*Bank, error) {
		return NewOrthogonal(name, []float64{1, 1})
	},
	"d4": orthonormal(daubechies4),
	"d6": orthonormal(daubechies6),
	"d8": orthonormal(daubechies8),
	"legall53": func(name string) (*Bank, error) {
		return NewBiorthogonal(name,
			[]float64{-0.125, 0.25, 0.75, 0.25, -0.125},
			[]float64{0.5, 1, 0.5},
		)
	},
	"cdf97": func(name string) (*Bank, error) {
		return NewBiorthogonal(name,
			scale(cdf97Analysis, 1/math.Sqrt2),
			scale(cdf97Synthesis, math.Sqrt2),
		)
	},
}

var aliases = map[string]string{
	"d2":     "haar",
	"legall": "legall53",
	"53":     "legall53",
	"5/3":    "legall53",
	"97":     "cdf97",
	"9/7":    "cdf97",
}

// Names lists the catalog filter families in sorted order.
func Names() []string {
	names := lo.Keys(catalog)
	slices.Sort(names)
	return names
}

// Lookup builds the named bank from the catalog.
func Lookup(name string) (*Bank, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	entry, ok := catalog[key]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "catalog: unknown filter %q", name)
	}
	bank, err := entry(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bank, nil
}
