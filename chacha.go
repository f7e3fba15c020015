package rng

// MaxPositionWord is the largest word index a Position may carry. Word 16
// addresses the end of a block, the same place as word 0 of the next one.
const MaxPositionWord = chachaBlockWords

// Position addresses ChaCha output by 16-word block and word within it.
type Position struct {
	Block uint64
	Word  uint32
}

// ChaCha is a ChaCha stream-cipher generator. The zero value is not usable;
// construct one with NewChaCha or NewChaChaWithConfig.
//
// Output is buffered a quad-block (four 16-word blocks) at a time. The
// backend chosen at construction never changes and does not affect output.
type ChaCha struct {
	buf SeekableBlockBuffer[*chachaCore]
}

// NewChaCha creates a ChaCha20 generator positioned at block 0.
func NewChaCha(seed Seed) *ChaCha {
	c, err := NewChaChaWithConfig(seed, DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return c
}

// NewChaCha8 creates a generator with 4 double-rounds.
func NewChaCha8(seed Seed) *ChaCha {
	c, _ := NewChaChaWithConfig(seed, Config{DoubleRounds: 4})
	return c
}

// NewChaCha12 creates a generator with 6 double-rounds.
func NewChaCha12(seed Seed) *ChaCha {
	c, _ := NewChaChaWithConfig(seed, Config{DoubleRounds: 6})
	return c
}

// NewChaChaWithConfig creates a generator with the given double-round
// count and backend selection.
func NewChaChaWithConfig(seed Seed, config Config) (*ChaCha, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	backend := resolveBackend(config.Backend)
	traceBackend(config.Backend, backend, config.DoubleRounds)

	c := &ChaCha{}
	c.buf.init(newChachaCore(seed.key, seed.stream, config.DoubleRounds, backend))
	return c, nil
}

// Uint32 implements Generator.
func (c *ChaCha) Uint32() uint32 {
	return c.buf.Uint32()
}

// Uint64 implements Generator.
func (c *ChaCha) Uint64() uint64 {
	return c.buf.Uint64()
}

// Fill implements Generator.
func (c *ChaCha) Fill(dst []byte) {
	c.buf.Fill(dst)
}

// Read implements io.Reader. It never fails.
func (c *ChaCha) Read(p []byte) (int, error) {
	c.buf.Fill(p)
	return len(p), nil
}

// Backend returns the block implementation in use.
func (c *ChaCha) Backend() Backend {
	return c.buf.core.backend
}

// DoubleRounds returns the configured double-round count.
func (c *ChaCha) DoubleRounds() uint {
	return c.buf.core.state.doubleRounds
}

// Seed returns the key and the current stream id.
func (c *ChaCha) Seed() Seed {
	return Seed{key: c.buf.core.state.key, stream: c.buf.core.state.stream}
}

// Position returns the position of the next word to be returned.
func (c *ChaCha) Position() Position {
	i := c.buf.index
	if i >= chachaBufferWords {
		return Position{Block: c.buf.core.Counter()}
	}
	return Position{
		Block: c.buf.counter + uint64(i/chachaBlockWords),
		Word:  uint32(i % chachaBlockWords),
	}
}

// SetPosition moves the generator so the next word returned is word p.Word
// of block p.Block. The quad-block holding it is regenerated immediately.
func (c *ChaCha) SetPosition(p Position) error {
	if p.Word > MaxPositionWord {
		return &RangeError{
			Arg:    "word",
			Value:  p.Word,
			Bound:  MaxPositionWord,
			Reason: "must not exceed",
		}
	}

	quad := p.Block &^ (chachaQuadBlocks - 1)
	index := int(p.Block&(chachaQuadBlocks-1))*chachaBlockWords + int(p.Word)
	if index == chachaBufferWords {
		// End of the quad-block: the next draw starts the following one.
		c.buf.core.SetCounter(quad + chachaQuadBlocks)
		c.buf.Reset()
		return nil
	}

	if err := c.buf.Seek(quad, index); err != nil {
		return err
	}
	traceWords("chacha quad-block regenerated", c.buf.buf[:chachaBlockWords])
	return nil
}

// BlockCounter returns the 16-word block the next word comes from.
func (c *ChaCha) BlockCounter() uint64 {
	return c.Position().Block
}

// SetBlockCounter moves to the start of block counter, regenerating
// immediately.
func (c *ChaCha) SetBlockCounter(counter uint64) {
	// Word 0 is always in range.
	_ = c.SetPosition(Position{Block: counter})
}

// Stream returns the stream id.
func (c *ChaCha) Stream() uint64 {
	return c.buf.core.state.stream
}

// SetStream switches to another stream at the same position. Buffered
// output from the old stream is discarded.
func (c *ChaCha) SetStream(stream uint64) {
	pos := c.Position()
	c.buf.core.state.stream = stream
	c.buf.Reset()
	_ = c.SetPosition(pos)
}

// Clone returns an independent copy that will produce the same output.
func (c *ChaCha) Clone() *ChaCha {
	core := *c.buf.core
	d := &ChaCha{}
	d.buf.core = &core
	d.buf.buf = append([]uint32(nil), c.buf.buf...)
	d.buf.index = c.buf.index
	d.buf.counter = c.buf.counter
	return d
}
