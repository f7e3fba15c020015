package rng

import (
	"encoding/binary"
	"fmt"

	"github.com/opd-ai/go-rng/internal"
)

// SeedKeyWords is the number of 32-bit key words in a Seed.
const SeedKeyWords = 8

// Seed pairs a 256-bit key with a 64-bit stream id. It is only used to
// construct generator state and is never mutated.
type Seed struct {
	key    [SeedKeyWords]uint32
	stream uint64
}

// NewSeed creates a Seed from exactly eight key words.
func NewSeed(key []uint32, stream uint64) (Seed, error) {
	var s Seed
	if len(key) != SeedKeyWords {
		return s, &RangeError{
			Arg:    "key",
			Value:  len(key),
			Bound:  SeedKeyWords,
			Reason: "word count must equal",
		}
	}
	copy(s.key[:], key)
	s.stream = stream
	return s, nil
}

// SeedFromBytes decodes a 32-byte key as eight little-endian words.
func SeedFromBytes(key [32]byte, stream uint64) Seed {
	var s Seed
	for i := range s.key {
		s.key[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	s.stream = stream
	return s
}

// SeedFromHash compresses arbitrary material into a key with Blake2b-256.
func SeedFromHash(material []byte, stream uint64) Seed {
	return SeedFromBytes(internal.Blake2b256(material), stream)
}

// SeedFromEntropy draws a key from the operating system's entropy source.
// The stream id is zero.
func SeedFromEntropy() (Seed, error) {
	var key [32]byte
	if err := NewSystemRandom().TryFill(key[:]); err != nil {
		return Seed{}, fmt.Errorf("rng: seed from entropy: %w", err)
	}
	s := SeedFromBytes(key, 0)
	zeroBytes(key[:])
	return s, nil
}

// DeriveSeed stretches a passphrase into a key with Argon2id. The salt must
// be at least 8 bytes.
func DeriveSeed(passphrase, salt []byte, stream uint64) (Seed, error) {
	key, err := internal.DeriveKey(passphrase, salt, internal.DefaultArgon2Config())
	if err != nil {
		return Seed{}, fmt.Errorf("rng: derive seed: %w", err)
	}
	s := SeedFromBytes(key, stream)
	zeroBytes(key[:])
	return s, nil
}

// Derive returns a child seed whose key is the keyed Blake2b-256 hash of
// label under s's key. Distinct labels give unrelated keys.
func (s Seed) Derive(label []byte, stream uint64) Seed {
	parent := s.Bytes()
	key, err := internal.Blake2bKeyed256(parent[:], label)
	zeroBytes(parent[:])
	if err != nil {
		// A 32-byte key is always accepted.
		panic(err)
	}
	return SeedFromBytes(key, stream)
}

// Key returns the key words.
func (s Seed) Key() [SeedKeyWords]uint32 {
	return s.key
}

// Stream returns the stream id.
func (s Seed) Stream() uint64 {
	return s.stream
}

// Bytes returns the key in little-endian byte order.
func (s Seed) Bytes() [32]byte {
	var b [32]byte
	for i, w := range s.key {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// WithStream returns a copy of s selecting a different stream.
func (s Seed) WithStream(stream uint64) Seed {
	s.stream = stream
	return s
}

// zeroBytes clears a byte slice.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
