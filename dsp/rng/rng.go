// Package rng provides the seeded pseudo-random source used by the noise
// generators and the random pattern style.
//
// Every consumer owns its own Generator. Seeds are supplied by the caller so
// that two instances can be decorrelated without relying on addresses or
// wall-clock time, and so that tests are reproducible.
package rng

import "math/rand/v2"

// streamSalt separates the PCG increment from the state seed.
const streamSalt = 0xda3e39cb94b95bdb

// Generator is a 32-bit oriented PCG source. It is not safe for concurrent use.
type Generator struct {
	src *rand.PCG
	r   *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed^streamSalt)
	return &Generator{src: src, r: rand.New(src)}
}

// Seed restarts the sequence from seed.
func (g *Generator) Seed(seed uint64) {
	g.src.Seed(seed, seed^streamSalt)
}

// Uint32 returns 32 uniformly distributed bits.
func (g *Generator) Uint32() uint32 {
	return g.r.Uint32()
}

// Uniform returns a value in [0, 1) with 32 bits of resolution.
func (g *Generator) Uniform() float64 {
	return float64(g.Uint32()) * (1.0 / (1 << 32))
}

// Normal returns a standard normal variate (mean 0, deviation 1).
func (g *Generator) Normal() float64 {
	return g.r.NormFloat64()
}

// Derive mixes a base seed with a stream index (splitmix64 finalizer) so one
// user-supplied seed can feed several independent generators.
func Derive(seed, stream uint64) uint64 {
	z := seed + (stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
