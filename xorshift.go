package rng

// xorShiftZeroSeed replaces an all-zero seed, which would lock the
// generator at zero forever.
const xorShiftZeroSeed = 0x0bad5eed

// XorShift128 is Marsaglia's 128-bit xorshift generator with 32-bit output.
// It is fast but predictable and fails several statistical tests.
type XorShift128 struct {
	x, y, z, w uint32
}

// NewXorShift128 creates a generator from four seed words. An all-zero seed
// is replaced by a fixed non-zero one.
func NewXorShift128(seed [4]uint32) *XorShift128 {
	if seed == [4]uint32{} {
		seed = [4]uint32{xorShiftZeroSeed, xorShiftZeroSeed, xorShiftZeroSeed, xorShiftZeroSeed}
	}
	return &XorShift128{x: seed[0], y: seed[1], z: seed[2], w: seed[3]}
}

// Uint32 implements Generator.
func (s *XorShift128) Uint32() uint32 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ (s.w >> 19) ^ (t ^ (t >> 8))
	return s.w
}

// Uint64 implements Generator.
func (s *XorShift128) Uint64() uint64 {
	return Uint64FromUint32(s)
}

// Fill implements Generator.
func (s *XorShift128) Fill(dst []byte) {
	FillFromUint32(s, dst)
}

// XorShift128Plus holds the state of an xorshift128+ generator.
type XorShift128Plus struct {
	state [2]uint64
}

// NewXorShift128Plus creates a new xorshift128+ generator. An all-zero seed
// is replaced by a fixed non-zero one.
func NewXorShift128Plus(s0, s1 uint64) *XorShift128Plus {
	if s0 == 0 && s1 == 0 {
		s0, s1 = xorShiftZeroSeed, xorShiftZeroSeed
	}
	return &XorShift128Plus{state: [2]uint64{s0, s1}}
}

// Uint64 generates a pseudorandom number and advances the state of s.
func (s *XorShift128Plus) Uint64() uint64 {
	s1 := s.state[0]
	s0 := s.state[1]
	result := s0 + s1
	s.state[0] = s0
	s1 ^= s1 << 23                                // a
	s.state[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5) // b, c
	return result
}

// Uint32 implements Generator with the high half of a 64-bit draw, the
// better-mixed bits of an xorshift+ output.
func (s *XorShift128Plus) Uint32() uint32 {
	return uint32(s.Uint64() >> 32)
}

// Fill implements Generator.
func (s *XorShift128Plus) Fill(dst []byte) {
	FillFromUint64(s, dst)
}
