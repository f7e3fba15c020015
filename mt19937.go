package rng

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// MersenneTwister is the 32-bit MT19937 generator. It is not suitable for
// cryptographic use; its state can be recovered from 624 outputs.
type MersenneTwister struct {
	mt *prng.MT19937
}

// NewMersenneTwister creates an MT19937 seeded with the low 32 bits of seed,
// as init_genrand does in the reference implementation.
func NewMersenneTwister(seed uint32) *MersenneTwister {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	return &MersenneTwister{mt: mt}
}

// NewMersenneTwisterFromKeys creates an MT19937 seeded by key array, as
// init_by_array does in the reference implementation.
func NewMersenneTwisterFromKeys(keys []uint32) *MersenneTwister {
	mt := prng.NewMT19937()
	mt.SeedFromKeys(keys)
	return &MersenneTwister{mt: mt}
}

// Uint32 implements Generator.
func (m *MersenneTwister) Uint32() uint32 {
	return m.mt.Uint32()
}

// Uint64 implements Generator. Two 32-bit outputs are combined low first.
func (m *MersenneTwister) Uint64() uint64 {
	return Uint64FromUint32(m)
}

// Fill implements Generator.
func (m *MersenneTwister) Fill(dst []byte) {
	FillFromUint32(m, dst)
}

// MersenneTwister64 is the 64-bit MT19937-64 generator.
type MersenneTwister64 struct {
	mt *prng.MT19937_64
}

// NewMersenneTwister64 creates an MT19937-64 seeded with seed.
func NewMersenneTwister64(seed uint64) *MersenneTwister64 {
	mt := prng.NewMT19937_64()
	mt.Seed(seed)
	return &MersenneTwister64{mt: mt}
}

// Uint64 implements Generator.
func (m *MersenneTwister64) Uint64() uint64 {
	return m.mt.Uint64()
}

// Uint32 implements Generator with the high half of a 64-bit draw.
func (m *MersenneTwister64) Uint32() uint32 {
	return uint32(m.mt.Uint64() >> 32)
}

// Fill implements Generator.
func (m *MersenneTwister64) Fill(dst []byte) {
	FillFromUint64(m, dst)
}
