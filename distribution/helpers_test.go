package distribution

import (
	"github.com/opd-ai/go-rng"
)

// scripted is a generator replaying fixed draws. Each 32-bit draw comes
// from words and each 64-bit draw from dwords; Fill encodes 32-bit draws.
type scripted struct {
	words  []uint32
	dwords []uint64
}

func (s *scripted) Uint32() uint32 {
	w := s.words[0]
	s.words = s.words[1:]
	return w
}

func (s *scripted) Uint64() uint64 {
	w := s.dwords[0]
	s.dwords = s.dwords[1:]
	return w
}

func (s *scripted) Fill(dst []byte) {
	rng.FillFromUint32(s, dst)
}

// constant returns the same bits for every draw.
type constant uint64

func (c constant) Uint32() uint32 { return uint32(c) }

func (c constant) Uint64() uint64 { return uint64(c) }

func (c constant) Fill(dst []byte) {
	for i := range dst {
		dst[i] = byte(c)
	}
}

func newTestGenerator(name string) *rng.ChaCha {
	return rng.NewChaCha(rng.SeedFromHash([]byte(name), 0))
}
