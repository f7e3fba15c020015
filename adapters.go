package rng

import (
	"encoding/binary"
	"io"
)

// Word32Source produces 32-bit words. Engines whose natural primitive is a
// 32-bit draw implement this and derive the rest with the helpers below.
type Word32Source interface {
	Uint32() uint32
}

// Word64Source produces 64-bit words.
type Word64Source interface {
	Uint64() uint64
}

// ByteSource fills byte slices.
type ByteSource interface {
	Fill(dst []byte)
}

// Uint64FromUint32 combines two consecutive 32-bit draws, the first as the
// low half.
func Uint64FromUint32(src Word32Source) uint64 {
	lo := uint64(src.Uint32())
	hi := uint64(src.Uint32())
	return hi<<32 | lo
}

// FillFromUint32 fills dst with little-endian 32-bit draws. A trailing
// partial word consumes a whole draw.
func FillFromUint32(src Word32Source, dst []byte) {
	for len(dst) >= 4 {
		binary.LittleEndian.PutUint32(dst, src.Uint32())
		dst = dst[4:]
	}
	if len(dst) > 0 {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], src.Uint32())
		copy(dst, tmp[:])
	}
}

// FillFromUint64 fills dst with little-endian 64-bit draws. A trailing
// partial word consumes a whole draw.
func FillFromUint64(src Word64Source, dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, src.Uint64())
		dst = dst[8:]
	}
	if len(dst) > 0 {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], src.Uint64())
		copy(dst, tmp[:])
	}
}

// Uint32FromFill reads four bytes and decodes them little-endian.
func Uint32FromFill(src ByteSource) uint32 {
	var b [4]byte
	src.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Uint64FromFill reads eight bytes and decodes them little-endian.
func Uint64FromFill(src ByteSource) uint64 {
	var b [8]byte
	src.Fill(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Reader adapts a Generator to io.Reader. Reads never fail and always fill
// the whole slice.
func Reader(g Generator) io.Reader {
	return reader{g}
}

type reader struct {
	g Generator
}

func (r reader) Read(p []byte) (int, error) {
	r.g.Fill(p)
	return len(p), nil
}
