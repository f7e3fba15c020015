package rng

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a ChaCha known-answer test: the keystream expected from a
// key, stream and starting block counter.
type TestVector struct {
	Name         string `json:"name"`
	DoubleRounds uint   `json:"double_rounds"`
	Key          string `json:"key"`      // Hex-encoded 32-byte key
	Stream       uint64 `json:"stream"`   // Stream id (words 14 and 15)
	Counter      uint64 `json:"counter"`  // Block counter (words 12 and 13)
	Expected     string `json:"expected"` // Hex-encoded keystream bytes
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetSeed returns the Seed described by the vector's key and stream.
func (tv *TestVector) GetSeed() (Seed, error) {
	raw, err := hex.DecodeString(tv.Key)
	if err != nil {
		return Seed{}, fmt.Errorf("invalid key hex: %w", err)
	}
	if len(raw) != 32 {
		return Seed{}, fmt.Errorf("key must be 32 bytes, got %d", len(raw))
	}
	var key [32]byte
	copy(key[:], raw)
	return SeedFromBytes(key, tv.Stream), nil
}

// GetExpected returns the decoded expected keystream.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected keystream: %w", err)
	}
	if len(expected) == 0 || len(expected)%4 != 0 {
		return nil, fmt.Errorf("expected keystream must be a non-empty multiple of 4 bytes, got %d", len(expected))
	}
	return expected, nil
}

// Generate builds a generator for the vector on backend and reads as many
// bytes as the vector expects.
func (tv *TestVector) Generate(backend Backend) ([]byte, error) {
	seed, err := tv.GetSeed()
	if err != nil {
		return nil, err
	}
	expected, err := tv.GetExpected()
	if err != nil {
		return nil, err
	}

	c, err := NewChaChaWithConfig(seed, Config{DoubleRounds: tv.DoubleRounds, Backend: backend})
	if err != nil {
		return nil, err
	}
	c.SetBlockCounter(tv.Counter)

	out := make([]byte, len(expected))
	c.Fill(out)
	return out, nil
}
