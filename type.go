package wavelet

const (
	Gray = 1
	RGB  = 3
)

// HighPassShift is added to every high-pass response so that a zero
// detail coefficient is stored as mid-gray.
const HighPassShift float64 = 0.5

// Pixel holds one value per channel.
type Pixel []float64

type Family int

const (
	Orthogonal Family = iota
	Biorthogonal
)

func (f Family) String() string {
	switch f {
	case Orthogonal:
		return "orthogonal"
	case Biorthogonal:
		return "biorthogonal"
	}
	return "unknown"
}
