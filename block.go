package rng

import (
	"encoding/binary"
)

// BlockCore produces random material one fixed-size block of 32-bit words
// at a time. Generate must fill the whole block and must not fail.
type BlockCore interface {
	// BlockLen returns the number of words produced per Generate call.
	BlockLen() int

	// Generate overwrites block (of length BlockLen) with the next block.
	Generate(block []uint32)
}

// SeekableBlockCore is a BlockCore whose output is addressed by a block
// counter, allowing constant-time repositioning.
type SeekableBlockCore interface {
	BlockCore

	// Counter returns the counter the next Generate call starts from.
	Counter() uint64

	// SetCounter moves the core so the next Generate starts at counter.
	SetCounter(counter uint64)
}

// BlockBuffer turns a BlockCore into a streaming Generator. It owns a buffer
// of exactly BlockLen words and a cursor; the buffer is regenerated only
// when every word has been consumed.
type BlockBuffer[C BlockCore] struct {
	core    C
	buf     []uint32
	index   int    // next unread word; len(buf) means empty
	counter uint64 // counter buf was generated from, for seekable cores
}

// NewBlockBuffer creates an empty buffer over core. The first draw
// generates the first block.
func NewBlockBuffer[C BlockCore](core C) *BlockBuffer[C] {
	b := &BlockBuffer[C]{}
	b.init(core)
	return b
}

func (b *BlockBuffer[C]) init(core C) {
	n := core.BlockLen()
	if n < 2 {
		panic("rng: block length must be at least 2 words")
	}
	b.core = core
	b.buf = make([]uint32, n)
	b.index = n // Force initial generation
	if s, ok := any(core).(SeekableBlockCore); ok {
		b.counter = s.Counter()
	}
}

// Core returns the underlying block core.
func (b *BlockBuffer[C]) Core() C {
	return b.core
}

// Index returns the cursor position within the buffer.
func (b *BlockBuffer[C]) Index() int {
	return b.index
}

// Reset discards any buffered output so the next draw regenerates.
func (b *BlockBuffer[C]) Reset() {
	b.index = len(b.buf)
	if s, ok := any(b.core).(SeekableBlockCore); ok {
		b.counter = s.Counter()
	}
}

// generate refills the buffer from the core and leaves the cursor at index.
func (b *BlockBuffer[C]) generate(index int) {
	if s, ok := any(b.core).(SeekableBlockCore); ok {
		b.counter = s.Counter()
	}
	b.core.Generate(b.buf)
	b.index = index
}

// Uint32 returns the next buffered word.
func (b *BlockBuffer[C]) Uint32() uint32 {
	if b.index >= len(b.buf) {
		b.generate(0)
	}
	v := b.buf[b.index]
	b.index++
	return v
}

// Uint64 returns the next two buffered words, the first as the low half.
// A single word left in the buffer becomes the low half of the result and
// the high half is taken from the freshly generated block.
func (b *BlockBuffer[C]) Uint64() uint64 {
	n := len(b.buf)
	i := b.index
	switch {
	case i < n-1:
		b.index = i + 2
		return uint64(b.buf[i+1])<<32 | uint64(b.buf[i])
	case i >= n:
		b.generate(2)
		return uint64(b.buf[1])<<32 | uint64(b.buf[0])
	default:
		lo := uint64(b.buf[n-1])
		b.generate(1)
		return uint64(b.buf[0])<<32 | lo
	}
}

// Fill copies buffered words into dst as little-endian bytes, regenerating
// as needed. A word only partially copied is still consumed.
func (b *BlockBuffer[C]) Fill(dst []byte) {
	for len(dst) > 0 {
		if b.index >= len(b.buf) {
			b.generate(0)
		}
		consumed, written := fillWords(dst, b.buf[b.index:])
		b.index += consumed
		dst = dst[written:]
	}
}

// fillWords copies as many words of src into dst as fit, returning the
// number of words consumed and bytes written.
func fillWords(dst []byte, src []uint32) (consumed, written int) {
	for consumed < len(src) && written < len(dst) {
		if len(dst)-written >= 4 {
			binary.LittleEndian.PutUint32(dst[written:], src[consumed])
			written += 4
		} else {
			var tmp [4]byte
			binary.LittleEndian.PutUint32(tmp[:], src[consumed])
			written += copy(dst[written:], tmp[:])
		}
		consumed++
	}
	return consumed, written
}

// SeekableBlockBuffer is a BlockBuffer over a SeekableBlockCore. Its buffer
// contents are always the material the core produces for BlockCounter.
type SeekableBlockBuffer[C SeekableBlockCore] struct {
	BlockBuffer[C]
}

// NewSeekableBlockBuffer creates an empty buffer over core.
func NewSeekableBlockBuffer[C SeekableBlockCore](core C) *SeekableBlockBuffer[C] {
	b := &SeekableBlockBuffer[C]{}
	b.init(core)
	return b
}

// BlockCounter returns the counter of the buffered block, or the counter of
// the next block when the buffer is empty.
func (b *SeekableBlockBuffer[C]) BlockCounter() uint64 {
	if b.index >= len(b.buf) {
		return b.core.Counter()
	}
	return b.counter
}

// SetBlockCounter regenerates the buffer from counter immediately and
// rewinds the cursor to the start of the block.
func (b *SeekableBlockBuffer[C]) SetBlockCounter(counter uint64) {
	b.core.SetCounter(counter)
	b.generate(0)
}

// Regenerate recomputes the buffered block without moving BlockCounter.
// The cursor is left where it was.
func (b *SeekableBlockBuffer[C]) Regenerate() {
	index := b.index
	if index >= len(b.buf) {
		return
	}
	b.core.SetCounter(b.counter)
	b.generate(index)
}

// Seek sets the buffer to the block generated from counter and the cursor
// to word. word must lie in [0, BlockLen).
func (b *SeekableBlockBuffer[C]) Seek(counter uint64, word int) error {
	if word < 0 || word >= len(b.buf) {
		return &RangeError{
			Arg:    "word",
			Value:  word,
			Bound:  len(b.buf),
			Reason: "must be non-negative and less than",
		}
	}
	b.core.SetCounter(counter)
	b.generate(word)
	return nil
}
