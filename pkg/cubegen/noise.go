package cubegen

// Seeded 2D simplex noise used for the continentalness, erosion, and
// ridge fields. Output is in the range [-1, 1].

// simplexGrad are gradient vectors for 2D simplex noise.
var simplexGrad = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

type simplexNoise struct {
	perm [512]int
}

// newSimplexNoise builds a noise source with a permutation table shuffled
// from the given sub-seed.
func newSimplexNoise(seed uint64) *simplexNoise {
	sn := &simplexNoise{}

	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle driven by a splitmix64 stream.
	s := seed
	for i := 255; i > 0; i-- {
		s = splitmix64(s)
		j := int(s % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	for i := 0; i < 512; i++ {
		sn.perm[i] = p[i&255]
	}
	return sn
}

// splitmix64 advances and mixes a 64-bit state. Also used to derive
// per-field sub-seeds from the world seed.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// sample returns 2D simplex noise at (x, y), in [-1, 1].
func (sn *simplexNoise) sample(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	// Skew input space to find the containing simplex cell.
	s := (x + y) * f2
	i := floorInt(x + s)
	j := floorInt(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := sn.perm[ii+sn.perm[jj]] & 7
	gi1 := sn.perm[ii+i1+sn.perm[jj+j1]] & 7
	gi2 := sn.perm[ii+1+sn.perm[jj+1]] & 7

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * (simplexGrad[gi0][0]*x0 + simplexGrad[gi0][1]*y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * (simplexGrad[gi1][0]*x1 + simplexGrad[gi1][1]*y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * (simplexGrad[gi2][0]*x2 + simplexGrad[gi2][1]*y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// fractal layers octaves of simplex noise, halving amplitude and doubling
// frequency per octave. Output is normalized to roughly [-1, 1].
func (sn *simplexNoise) fractal(x, y float64, octaves int) float64 {
	var total, norm float64
	amplitude := 1.0
	frequency := 1.0

	for range octaves {
		total += sn.sample(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return total / norm
}

func floorInt(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
