package internal

import (
	"errors"

	"golang.org/x/crypto/argon2"
)

// MinSaltLen is the shortest salt DeriveKey accepts.
const MinSaltLen = 8

// Argon2Config specifies Argon2id parameters for passphrase seed derivation.
type Argon2Config struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory in KiB
	Threads uint8  // Parallelism factor
}

// DefaultArgon2Config returns the RFC 9106 second recommended option.
func DefaultArgon2Config() Argon2Config {
	return Argon2Config{
		Time:    3,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
	}
}

// DeriveKey stretches passphrase into 32 bytes of key material with
// Argon2id.
func DeriveKey(passphrase, salt []byte, config Argon2Config) ([32]byte, error) {
	var out [32]byte

	if len(salt) < MinSaltLen {
		return out, errors.New("salt must be at least 8 bytes")
	}
	if config.Time == 0 || config.Threads == 0 {
		return out, errors.New("argon2 time and threads must be non-zero")
	}

	key := argon2.IDKey(passphrase, salt, config.Time, config.Memory, config.Threads, 32)
	copy(out[:], key)
	return out, nil
}
