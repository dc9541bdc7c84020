package wavelet

// channel-wise arithmetic, every channel independent of the others.

func (p Pixel) Add(q Pixel) {
	for i := range p {
		p[i] += q[i]
	}
}

func (p Pixel) Sub(q Pixel) {
	for i := range p {
		p[i] -= q[i]
	}
}

func (p Pixel) Scale(f float64) {
	for i := range p {
		p[i] *= f
	}
}

// AddScaled computes p += f * q.
func (p Pixel) AddScaled(f float64, q Pixel) {
	for i := range p {
		p[i] += f * q[i]
	}
}

func (p Pixel) Fill(v float64) {
	for i := range p {
		p[i] = v
	}
}

// Dot sums the channel-wise products of p and q.
func Dot(p, q Pixel) float64 {
	sum := 0.0
	for i := range p {
		sum += p[i] * q[i]
	}
	return sum
}
