package vmath

import (
	"math"
	"unicode/utf16"
)

// Xmur3 returns a string hash generator. Each call yields the next 32-bit
// value derived from seed; the first value is used to seed Mulberry32.
// The hash runs over the UTF-16 code units of seed, not its UTF-8 bytes, so
// non-ASCII seeds produce the same stream as web builds of the game.
func Xmur3(seed string) func() uint32 {
	units := utf16.Encode([]rune(seed))
	h := uint32(1779033703) ^ uint32(len(units))
	for _, u := range units {
		h = (h ^ uint32(u)) * 3432918353
		h = h<<13 | h>>19
	}
	return func() uint32 {
		h = (h ^ h>>16) * 2246822507
		h = (h ^ h>>13) * 3266489909
		h ^= h >> 16
		return h
	}
}

// Mulberry32 is a small, fast 32-bit PRNG with a single word of state.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 returns a generator starting from state.
func NewMulberry32(state uint32) *Mulberry32 {
	return &Mulberry32{state: state}
}

// Uint32 returns the next 32-bit value.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6d2b79f5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}

// Rand is the random source consumed by the simulation. Two Rands created
// from the same seed produce identical sequences.
type Rand struct {
	src *Mulberry32
}

// NewRand seeds a Rand from a string.
func NewRand(seed string) *Rand {
	return &Rand{src: NewMulberry32(Xmur3(seed)())}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// IntN returns an integer in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("vmath: IntN called with non-positive n")
	}
	return int(math.Floor(r.Float64() * float64(n)))
}

// PointOnCircle returns a point at distance radius from the origin, at a
// whole-degree angle.
func (r *Rand) PointOnCircle(radius float64) Vec2 {
	angle := DegToRad(float64(r.IntN(360)))
	s, c := math.Sincos(angle)
	return Vec2{X: radius * c, Y: radius * s}
}
