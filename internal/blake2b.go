// Package internal provides the hashing primitives used for seed
// derivation. It wraps golang.org/x/crypto.
package internal

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2b256 computes a 256-bit Blake2b hash (32 bytes).
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Blake2bKeyed256 computes a keyed 256-bit Blake2b MAC of data. The key must
// be at most 64 bytes.
func Blake2bKeyed256(key, data []byte) ([32]byte, error) {
	var out [32]byte

	h, err := blake2b.New256(key)
	if err != nil {
		return out, err
	}

	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Blake2b512 computes a 512-bit Blake2b hash (64 bytes).
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}
