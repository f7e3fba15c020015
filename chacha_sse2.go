package rng

import (
	"math/bits"
)

// u32x4 models a 128-bit register of four 32-bit lanes.
type u32x4 [4]uint32

func splat4(x uint32) u32x4 {
	return u32x4{x, x, x, x}
}

func (v u32x4) add(w u32x4) u32x4 {
	return u32x4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v u32x4) xor(w u32x4) u32x4 {
	return u32x4{v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3]}
}

func (v u32x4) rotl(k int) u32x4 {
	return u32x4{
		bits.RotateLeft32(v[0], k),
		bits.RotateLeft32(v[1], k),
		bits.RotateLeft32(v[2], k),
		bits.RotateLeft32(v[3], k),
	}
}

func quarterRound4(a, b, c, d u32x4) (u32x4, u32x4, u32x4, u32x4) {
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

// quadBlockSSE2 computes four blocks at once in word-major layout: x[i]
// holds word i of blocks counter..counter+3, one block per lane. Because
// every lane sees the same word index, the diagonal round needs no
// shuffles. The result is transposed into block order on output.
func quadBlockSSE2(s *chachaState, counter uint64, out []uint32) {
	in := s.input(counter)

	var x [16]u32x4
	for i := range x {
		x[i] = splat4(in[i])
	}
	for lane := 0; lane < 4; lane++ {
		c := counter + uint64(lane)
		x[12][lane] = uint32(c)
		x[13][lane] = uint32(c >> 32)
	}
	orig := x

	for i := s.doubleRounds; i > 0; i-- {
		x[0], x[4], x[8], x[12] = quarterRound4(x[0], x[4], x[8], x[12])
		x[1], x[5], x[9], x[13] = quarterRound4(x[1], x[5], x[9], x[13])
		x[2], x[6], x[10], x[14] = quarterRound4(x[2], x[6], x[10], x[14])
		x[3], x[7], x[11], x[15] = quarterRound4(x[3], x[7], x[11], x[15])

		x[0], x[5], x[10], x[15] = quarterRound4(x[0], x[5], x[10], x[15])
		x[1], x[6], x[11], x[12] = quarterRound4(x[1], x[6], x[11], x[12])
		x[2], x[7], x[8], x[13] = quarterRound4(x[2], x[7], x[8], x[13])
		x[3], x[4], x[9], x[14] = quarterRound4(x[3], x[4], x[9], x[14])
	}

	out = out[:chachaBufferWords]
	for i := range x {
		v := x[i].add(orig[i])
		out[i] = v[0]
		out[chachaBlockWords+i] = v[1]
		out[2*chachaBlockWords+i] = v[2]
		out[3*chachaBlockWords+i] = v[3]
	}
}
