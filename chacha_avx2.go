package rng

import (
	"math/bits"
)

// u32x8 models a 256-bit register. Lanes 0-3 and 4-7 are independent
// 128-bit halves, each holding one row of a different block.
type u32x8 [8]uint32

func (v u32x8) add(w u32x8) u32x8 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

func (v u32x8) xor(w u32x8) u32x8 {
	for i := range v {
		v[i] ^= w[i]
	}
	return v
}

func (v u32x8) rotl(k int) u32x8 {
	for i := range v {
		v[i] = bits.RotateLeft32(v[i], k)
	}
	return v
}

// shuffle rotates each 128-bit half left by k lanes, so lane i of a half
// receives what was in lane i+k.
func (v u32x8) shuffle(k int) u32x8 {
	var r u32x8
	for i := 0; i < 4; i++ {
		j := (i + k) & 3
		r[i] = v[j]
		r[4+i] = v[4+j]
	}
	return r
}

func quarterRound8(a, b, c, d u32x8) (u32x8, u32x8, u32x8, u32x8) {
	a = a.add(b)
	d = d.xor(a).rotl(16)
	c = c.add(d)
	b = b.xor(c).rotl(12)
	a = a.add(b)
	d = d.xor(a).rotl(8)
	c = c.add(d)
	b = b.xor(c).rotl(7)
	return a, b, c, d
}

// doubleBlockAVX2 computes blocks counter and counter+1 into out[:32]. Each
// block is held as four row vectors; the diagonal round is reached by
// rotating rows b, c and d by one, two and three lanes and undone after.
func doubleBlockAVX2(s *chachaState, counter uint64, out []uint32) {
	c0, c1 := counter, counter+1
	sLo, sHi := uint32(s.stream), uint32(s.stream>>32)

	a := u32x8{
		chachaConst0, chachaConst1, chachaConst2, chachaConst3,
		chachaConst0, chachaConst1, chachaConst2, chachaConst3,
	}
	b := u32x8{
		s.key[0], s.key[1], s.key[2], s.key[3],
		s.key[0], s.key[1], s.key[2], s.key[3],
	}
	c := u32x8{
		s.key[4], s.key[5], s.key[6], s.key[7],
		s.key[4], s.key[5], s.key[6], s.key[7],
	}
	d := u32x8{
		uint32(c0), uint32(c0 >> 32), sLo, sHi,
		uint32(c1), uint32(c1 >> 32), sLo, sHi,
	}
	a0, b0, c0v, d0 := a, b, c, d

	for i := s.doubleRounds; i > 0; i-- {
		a, b, c, d = quarterRound8(a, b, c, d)
		b, c, d = b.shuffle(1), c.shuffle(2), d.shuffle(3)
		a, b, c, d = quarterRound8(a, b, c, d)
		b, c, d = b.shuffle(3), c.shuffle(2), d.shuffle(1)
	}

	a, b, c, d = a.add(a0), b.add(b0), c.add(c0v), d.add(d0)

	out = out[:2*chachaBlockWords]
	for half := 0; half < 2; half++ {
		o := out[half*chachaBlockWords:]
		l := half * 4
		copy(o[0:4], a[l:l+4])
		copy(o[4:8], b[l:l+4])
		copy(o[8:12], c[l:l+4])
		copy(o[12:16], d[l:l+4])
	}
}

// quadBlockAVX2 produces a quad-block as two double-block passes.
func quadBlockAVX2(s *chachaState, counter uint64, out []uint32) {
	doubleBlockAVX2(s, counter, out[:2*chachaBlockWords])
	doubleBlockAVX2(s, counter+2, out[2*chachaBlockWords:chachaBufferWords])
}
