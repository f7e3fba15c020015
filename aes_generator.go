package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

const (
	// aesCtrBlocks is the number of AES blocks encrypted per Generate call.
	aesCtrBlocks = 4

	// aesCtrWords is the number of words produced per Generate call.
	aesCtrWords = aesCtrBlocks * aes.BlockSize / 4
)

// AesCtrCore is a SeekableBlockCore producing the AES counter-mode
// keystream. The 128-bit counter block is the 64-bit nonce followed by the
// 64-bit block counter, both little-endian.
type AesCtrCore struct {
	block   cipher.Block
	nonce   uint64
	counter uint64
}

// NewAesCtrCore creates a core for a 16, 24 or 32 byte AES key.
func NewAesCtrCore(key []byte, nonce uint64) (*AesCtrCore, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("rng: aes key: %w", err)
	}
	return &AesCtrCore{block: block, nonce: nonce}, nil
}

// BlockLen implements BlockCore.
func (c *AesCtrCore) BlockLen() int {
	return aesCtrWords
}

// Generate implements BlockCore.
func (c *AesCtrCore) Generate(block []uint32) {
	var in, out [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(in[0:8], c.nonce)

	for i := 0; i < aesCtrBlocks; i++ {
		binary.LittleEndian.PutUint64(in[8:16], c.counter)
		c.block.Encrypt(out[:], in[:])
		for j := 0; j < 4; j++ {
			block[4*i+j] = binary.LittleEndian.Uint32(out[4*j:])
		}
		c.counter++
	}
}

// Counter implements SeekableBlockCore.
func (c *AesCtrCore) Counter() uint64 {
	return c.counter
}

// SetCounter implements SeekableBlockCore.
func (c *AesCtrCore) SetCounter(counter uint64) {
	c.counter = counter
}

// NewAesCtr returns a seekable streaming generator over an AesCtrCore.
func NewAesCtr(key []byte, nonce uint64) (*SeekableBlockBuffer[*AesCtrCore], error) {
	core, err := NewAesCtrCore(key, nonce)
	if err != nil {
		return nil, err
	}
	return NewSeekableBlockBuffer(core), nil
}
