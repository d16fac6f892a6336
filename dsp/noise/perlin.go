package noise

import "math"

// PerlinOctaves is the number of Perlin octaves.
const PerlinOctaves = 4

// PerlinPeriod is the period of Noise1D in noise units. Octave k samples
// the noise at time*2^k, so wrapping time at this bound is seamless for
// every octave.
const PerlinPeriod = 256.0

// PerlinParams are the per-sample Perlin controls. Speed and Amp are the
// effective values after any CV crossfade.
type PerlinParams struct {
	Speed   float64 // noise units per second
	Amp     float64 // output volts per noise unit
	Weights [PerlinOctaves]float64
}

// DefaultPerlinParams returns unit speed, 5 V amplitude and equal weights.
func DefaultPerlinParams() PerlinParams {
	return PerlinParams{
		Speed:   1,
		Amp:     5,
		Weights: [PerlinOctaves]float64{1, 1, 1, 1},
	}
}

// Ken Perlin's reference permutation, repeated so that index+1 never
// needs a wrap.
var permutation = func() [512]uint8 {
	base := [256]uint8{
		151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
		140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
		247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
		57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
		74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
		60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
		65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
		200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
		52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
		207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
		119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
		129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
		218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
		81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
		184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
		222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	}
	var p [512]uint8
	for i := range p {
		p[i] = base[i&255]
	}
	return p
}()

// Noise1D evaluates classic one-dimensional Perlin noise at x. The result
// lies in [-1, 1], is zero on integers and repeats every PerlinPeriod.
func Noise1D(x float64) float64 {
	fl := math.Floor(x)
	xi := int(fl) & 255
	xf := x - fl

	u := fade(xf)
	a := grad(permutation[xi], xf)
	b := grad(permutation[xi+1], xf-1)

	return lerp(u, a, b) * 2
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash uint8, x float64) float64 {
	if hash&1 == 0 {
		return x
	}
	return -x
}

// Perlin advances a time accumulator and samples four octaves of Noise1D.
type Perlin struct {
	time float64
}

// Time returns the current position in noise units, in [0, PerlinPeriod).
func (p *Perlin) Time() float64 {
	return p.time
}

// Process samples every octave at the current time, mixes them by weight,
// then advances time by params.Speed*dt. Octave k is Noise1D(time*2^k)*Amp.
// Negative weights count as zero; if all weights are zero each octave gets
// weight 0.25.
func (p *Perlin) Process(params PerlinParams, dt float64) (octaves [PerlinOctaves]float64, mix float64) {
	mult := 1.0
	for k := range octaves {
		octaves[k] = Noise1D(p.time*mult) * params.Amp
		mult *= 2
	}

	var weights [PerlinOctaves]float64
	total := 0.0
	for k, w := range params.Weights {
		weights[k] = math.Max(w, 0)
		total += weights[k]
	}
	if total == 0 {
		for k := range weights {
			weights[k] = 0.25
		}
		total = 1
	}
	for k, o := range octaves {
		mix += weights[k] * o
	}
	mix /= total

	p.time = math.Mod(p.time+params.Speed*dt, PerlinPeriod)
	if p.time < 0 {
		p.time += PerlinPeriod
	}

	return octaves, mix
}

// Reset rewinds time to zero.
func (p *Perlin) Reset() {
	p.time = 0
}
