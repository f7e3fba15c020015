// Package rng provides pseudo-random number generators behind one small
// contract, together with the block-buffer engine they are built on.
//
// The central engine is ChaCha, a cryptographically secure generator with
// three interchangeable backends (scalar, 128-bit and 256-bit lane layouts)
// selected once at construction from the CPU features available. PCG,
// xorshift, Mersenne Twister and the operating-system entropy source are
// provided behind the same Generator interface.
//
// Example usage:
//
//	seed, err := rng.SeedFromEntropy()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := rng.NewChaCha(seed)
//
//	word := g.Uint64()
//	buf := make([]byte, 32)
//	g.Fill(buf)
//
// Uniform sampling over ranges lives in the distribution subpackage.
package rng

import (
	"fmt"
	"strings"
)

// Generator is the capability every engine exposes. Higher layers depend
// only on this interface, never on a concrete engine.
//
// A Generator is not safe for concurrent use; see Pool and Locked.
type Generator interface {
	// Uint32 returns the next 32 random bits.
	Uint32() uint32

	// Uint64 returns the next 64 random bits.
	Uint64() uint64

	// Fill overwrites dst with random bytes.
	Fill(dst []byte)
}

// Backend identifies the ChaCha block implementation in use.
type Backend int

const (
	// BackendAuto selects the widest backend the CPU supports.
	BackendAuto Backend = iota

	// BackendScalar computes one block at a time with plain 32-bit arithmetic.
	BackendScalar

	// BackendSSE2 keeps word i of four blocks in one 128-bit lane group, so
	// all four blocks of a quad-block advance together. It is written in
	// plain Go and models the SSE2 layout without emitting SSE2 code.
	BackendSSE2

	// BackendAVX2 holds one row of two blocks per 256-bit lane group and
	// reaches the diagonals with lane rotations. Two passes per quad-block.
	// Like BackendSSE2 it is a pure Go model of the register layout and is
	// not expected to outrun the scalar backend.
	BackendAVX2
)

// String returns the string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "Auto"
	case BackendScalar:
		return "Scalar"
	case BackendSSE2:
		return "SSE2"
	case BackendAVX2:
		return "AVX2"
	default:
		return fmt.Sprintf("Backend(%d)", b)
	}
}

// ParseBackend converts a backend name, as returned by String, back into a
// Backend. Matching is case-insensitive.
func ParseBackend(name string) (Backend, error) {
	for b := BackendAuto; b <= BackendAVX2; b++ {
		if strings.EqualFold(name, b.String()) {
			return b, nil
		}
	}
	return BackendAuto, fmt.Errorf("rng: unknown backend %q", name)
}

// UnmarshalYAML lets configuration files name backends instead of using
// their numeric values.
func (b *Backend) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseBackend(name)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// DefaultDoubleRounds is the double-round count of ChaCha20.
const DefaultDoubleRounds = 10

// Config specifies how a ChaCha generator is built.
type Config struct {
	// DoubleRounds is half the number of mixing rounds. 10 gives ChaCha20,
	// 6 ChaCha12 and 4 ChaCha8. Must not be zero.
	DoubleRounds uint `yaml:"double_rounds"`

	// Backend forces a specific block implementation. Use BackendAuto for
	// detection.
	Backend Backend `yaml:"backend"`
}

// DefaultConfig returns the ChaCha20 configuration with automatic backend
// selection.
func DefaultConfig() Config {
	return Config{DoubleRounds: DefaultDoubleRounds, Backend: BackendAuto}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DoubleRounds == 0 {
		return &RangeError{
			Arg:    "DoubleRounds",
			Value:  c.DoubleRounds,
			Bound:  1,
			Reason: "must be at least",
		}
	}

	if c.Backend < BackendAuto || c.Backend > BackendAVX2 {
		return fmt.Errorf("rng: invalid backend: %v", c.Backend)
	}

	return nil
}
