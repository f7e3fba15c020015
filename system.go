package rng

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SystemRandom reads from the operating system's cryptographic source.
// It is safe for concurrent use.
type SystemRandom struct {
	src io.Reader
}

// NewSystemRandom returns a generator backed by crypto/rand.
func NewSystemRandom() *SystemRandom {
	return &SystemRandom{src: rand.Reader}
}

// TryFill fills dst from the entropy source, reporting read failures.
func (s *SystemRandom) TryFill(dst []byte) error {
	if _, err := io.ReadFull(s.src, dst); err != nil {
		return fmt.Errorf("rng: system entropy: %w", err)
	}
	return nil
}

// Fill implements Generator. It panics if the entropy source fails, which
// on supported platforms does not happen.
func (s *SystemRandom) Fill(dst []byte) {
	if err := s.TryFill(dst); err != nil {
		panic(err)
	}
}

// Uint32 implements Generator.
func (s *SystemRandom) Uint32() uint32 {
	return Uint32FromFill(s)
}

// Uint64 implements Generator.
func (s *SystemRandom) Uint64() uint64 {
	return Uint64FromFill(s)
}
