package rng

import (
	"math/bits"
)

const (
	// pcg32Multiplier is the 64-bit LCG multiplier used by PCG32.
	pcg32Multiplier = 6364136223846793005

	// pcgCheapMultiplier is the 64-bit "cheap multiplier" of the 128-bit
	// DXSM generator, also used by its output permutation.
	pcgCheapMultiplier = 0xda942042e4dd58b5
)

// Pcg32 is the PCG XSH RR 64/32 generator: 64 bits of LCG state with a
// 32-bit permuted output.
type Pcg32 struct {
	state     uint64
	increment uint64
}

// NewPcg32 creates a Pcg32 from an initial state and a stream selector.
// Only the low 63 bits of stream are significant.
func NewPcg32(state, stream uint64) *Pcg32 {
	p := &Pcg32{increment: stream<<1 | 1}
	p.state = state + p.increment
	p.step()
	return p
}

func (p *Pcg32) step() {
	p.state = p.state*pcg32Multiplier + p.increment
}

// Uint32 implements Generator.
func (p *Pcg32) Uint32() uint32 {
	old := p.state
	p.step()

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 implements Generator.
func (p *Pcg32) Uint64() uint64 {
	return Uint64FromUint32(p)
}

// Fill implements Generator.
func (p *Pcg32) Fill(dst []byte) {
	FillFromUint32(p, dst)
}

// Pcg64Dxsm is the 128-bit LCG with cheap multiplier and the DXSM (double
// xorshift multiply) output function, producing 64 bits per step.
type Pcg64Dxsm struct {
	hi, lo       uint64 // state
	incHi, incLo uint64 // increment, always odd
}

// NewPcg64Dxsm creates a generator from 128-bit state and stream values,
// each given as (high, low) halves. The top bit of stream is discarded.
func NewPcg64Dxsm(stateHi, stateLo, streamHi, streamLo uint64) *Pcg64Dxsm {
	p := &Pcg64Dxsm{
		incHi: streamHi<<1 | streamLo>>63,
		incLo: streamLo<<1 | 1,
	}
	var carry uint64
	p.lo, carry = bits.Add64(stateLo, p.incLo, 0)
	p.hi, _ = bits.Add64(stateHi, p.incHi, carry)
	p.step()
	return p
}

// step advances state = state*cheapMultiplier + increment mod 2^128.
func (p *Pcg64Dxsm) step() {
	hi, lo := bits.Mul64(p.lo, pcgCheapMultiplier)
	hi += p.hi * pcgCheapMultiplier

	var carry uint64
	p.lo, carry = bits.Add64(lo, p.incLo, 0)
	p.hi, _ = bits.Add64(hi, p.incHi, carry)
}

// Uint64 implements Generator. The output is taken from the state before
// it advances.
func (p *Pcg64Dxsm) Uint64() uint64 {
	hi, lo := p.hi, p.lo|1
	p.step()

	hi ^= hi >> 32
	hi *= pcgCheapMultiplier
	hi ^= hi >> 48
	hi *= lo
	return hi
}

// Uint32 implements Generator.
func (p *Pcg64Dxsm) Uint32() uint32 {
	return uint32(p.Uint64())
}

// Fill implements Generator.
func (p *Pcg64Dxsm) Fill(dst []byte) {
	FillFromUint64(p, dst)
}
