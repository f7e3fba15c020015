package internal

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestBlake2b256(t *testing.T) {
	got := Blake2b256([]byte("abc"))
	want := "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("Blake2b256(abc) = %x, want %s", got, want)
	}
}

func TestBlake2bKeyed256(t *testing.T) {
	got, err := Blake2bKeyed256([]byte("key"), []byte("abc"))
	if err != nil {
		t.Fatalf("Blake2bKeyed256() error = %v", err)
	}
	want := "0330531d097355a3f72e80d55c1245ccf79f1704431c6e3887938320442c23c0"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("Blake2bKeyed256(key, abc) = %x, want %s", got, want)
	}

	if _, err := Blake2bKeyed256(make([]byte, 65), nil); err == nil {
		t.Error("Blake2bKeyed256() should reject a 65-byte key")
	}
}

func TestBlake2b512(t *testing.T) {
	got := Blake2b512([]byte("abc"))
	if prefix := hex.EncodeToString(got[:16]); prefix != "ba80a53f981c4d0d6a2797b69f12f6e9" {
		t.Errorf("Blake2b512(abc) prefix = %s", prefix)
	}
}

func TestDeriveKey(t *testing.T) {
	cfg := Argon2Config{Time: 1, Memory: 64, Threads: 1}

	tests := []struct {
		name    string
		salt    []byte
		config  Argon2Config
		wantErr bool
	}{
		{"valid", []byte("12345678"), cfg, false},
		{"short_salt", []byte("1234567"), cfg, true},
		{"zero_time", []byte("12345678"), Argon2Config{Memory: 64, Threads: 1}, true},
		{"zero_threads", []byte("12345678"), Argon2Config{Time: 1, Memory: 64}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKey([]byte("password"), tt.salt, tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeriveKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	a, _ := DeriveKey([]byte("password"), []byte("somesalt"), cfg)
	b, _ := DeriveKey([]byte("password"), []byte("somesalt"), cfg)
	c, _ := DeriveKey([]byte("password"), []byte("othersalt"), cfg)
	if !bytes.Equal(a[:], b[:]) {
		t.Error("DeriveKey() is not deterministic")
	}
	if bytes.Equal(a[:], c[:]) {
		t.Error("different salts derived the same key")
	}
}

func TestDefaultArgon2Config(t *testing.T) {
	cfg := DefaultArgon2Config()
	if cfg.Time == 0 || cfg.Threads == 0 || cfg.Memory < 8*uint32(cfg.Threads) {
		t.Errorf("DefaultArgon2Config() = %+v is not usable", cfg)
	}
}
