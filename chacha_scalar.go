package rng

// chachaBlockScalar computes one block for counter into out[:16].
func chachaBlockScalar(s *chachaState, counter uint64, out []uint32) {
	in := s.input(counter)
	x0, x1, x2, x3 := in[0], in[1], in[2], in[3]
	x4, x5, x6, x7 := in[4], in[5], in[6], in[7]
	x8, x9, x10, x11 := in[8], in[9], in[10], in[11]
	x12, x13, x14, x15 := in[12], in[13], in[14], in[15]

	for i := s.doubleRounds; i > 0; i-- {
		// Column round
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	out = out[:16]
	out[0] = x0 + in[0]
	out[1] = x1 + in[1]
	out[2] = x2 + in[2]
	out[3] = x3 + in[3]
	out[4] = x4 + in[4]
	out[5] = x5 + in[5]
	out[6] = x6 + in[6]
	out[7] = x7 + in[7]
	out[8] = x8 + in[8]
	out[9] = x9 + in[9]
	out[10] = x10 + in[10]
	out[11] = x11 + in[11]
	out[12] = x12 + in[12]
	out[13] = x13 + in[13]
	out[14] = x14 + in[14]
	out[15] = x15 + in[15]
}

// quadBlockScalar produces a quad-block one block at a time.
func quadBlockScalar(s *chachaState, counter uint64, out []uint32) {
	for i := 0; i < chachaQuadBlocks; i++ {
		off := i * chachaBlockWords
		chachaBlockScalar(s, counter+uint64(i), out[off:off+chachaBlockWords])
	}
}
