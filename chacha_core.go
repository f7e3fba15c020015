package rng

import (
	"math/bits"
)

const (
	// chachaBlockWords is the size of one logical ChaCha block in words.
	chachaBlockWords = 16

	// chachaQuadBlocks is the number of logical blocks per Generate call.
	chachaQuadBlocks = 4

	// chachaBufferWords is the number of words buffered per Generate call.
	chachaBufferWords = chachaBlockWords * chachaQuadBlocks
)

// "expand 32-byte k" as little-endian words.
const (
	chachaConst0 = 0x61707865
	chachaConst1 = 0x3320646e
	chachaConst2 = 0x79622d32
	chachaConst3 = 0x6b206574
)

// chachaState holds the fixed inputs of the block function.
type chachaState struct {
	key          [8]uint32
	stream       uint64
	doubleRounds uint
}

// input returns the 16-word block input for counter.
func (s *chachaState) input(counter uint64) [16]uint32 {
	return [16]uint32{
		chachaConst0, chachaConst1, chachaConst2, chachaConst3,
		s.key[0], s.key[1], s.key[2], s.key[3],
		s.key[4], s.key[5], s.key[6], s.key[7],
		uint32(counter), uint32(counter >> 32),
		uint32(s.stream), uint32(s.stream >> 32),
	}
}

// quadFunc writes the four logical blocks counter..counter+3 to out, block
// counter+i at out[16*i:16*i+16]. Counters wrap modulo 2^64.
type quadFunc func(s *chachaState, counter uint64, out []uint32)

// quarterRound is the ChaCha quarter-round on (a, b, c, d).
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// chachaCore implements SeekableBlockCore for ChaCha. One Generate call
// produces a quad-block of 64 words and advances the counter by four.
type chachaCore struct {
	state   chachaState
	counter uint64 // first block of the next quad-block
	backend Backend
	quad    quadFunc
}

func newChachaCore(key [8]uint32, stream uint64, doubleRounds uint, backend Backend) *chachaCore {
	return &chachaCore{
		state: chachaState{
			key:          key,
			stream:       stream,
			doubleRounds: doubleRounds,
		},
		backend: backend,
		quad:    quadFuncFor(backend),
	}
}

// BlockLen implements BlockCore.
func (c *chachaCore) BlockLen() int {
	return chachaBufferWords
}

// Generate implements BlockCore.
func (c *chachaCore) Generate(block []uint32) {
	c.quad(&c.state, c.counter, block)
	c.counter += chachaQuadBlocks
}

// Counter implements SeekableBlockCore.
func (c *chachaCore) Counter() uint64 {
	return c.counter
}

// SetCounter implements SeekableBlockCore.
func (c *chachaCore) SetCounter(counter uint64) {
	c.counter = counter
}

// quadFuncFor returns the block implementation for a resolved backend.
func quadFuncFor(b Backend) quadFunc {
	switch b {
	case BackendAVX2:
		return quadBlockAVX2
	case BackendSSE2:
		return quadBlockSSE2
	default:
		return quadBlockScalar
	}
}
