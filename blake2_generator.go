package rng

import (
	"encoding/binary"

	"github.com/opd-ai/go-rng/internal"
)

// blake2BlockWords is the number of words in one Blake2b-512 output.
const blake2BlockWords = 16

// Blake2Core is a deterministic hash-chain BlockCore: each block is the
// Blake2b-512 hash of the previous one, the first being the hash of the
// seed. It is reproducible across platforms but not seekable.
type Blake2Core struct {
	data [64]byte // Current Blake2b-512 output
}

// NewBlake2Core creates a core whose first block is Blake2b-512(seed).
func NewBlake2Core(seed []byte) *Blake2Core {
	return &Blake2Core{data: internal.Blake2b512(seed)}
}

// BlockLen implements BlockCore.
func (c *Blake2Core) BlockLen() int {
	return blake2BlockWords
}

// Generate implements BlockCore. The current state is emitted and then
// replaced by its hash.
func (c *Blake2Core) Generate(block []uint32) {
	for i := range block[:blake2BlockWords] {
		block[i] = binary.LittleEndian.Uint32(c.data[4*i:])
	}
	c.data = internal.Blake2b512(c.data[:])
}

// NewBlake2Generator returns a streaming generator over a Blake2Core.
func NewBlake2Generator(seed []byte) *BlockBuffer[*Blake2Core] {
	return NewBlockBuffer(NewBlake2Core(seed))
}
