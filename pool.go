package rng

import (
	"sync"
)

// Pool hands out independently seeded ChaCha generators so goroutines can
// draw without sharing one instance. Generators returned by Get must not be
// used after they are passed to Put.
type Pool struct {
	config Config
	pool   sync.Pool
}

// NewPool creates a pool of generators built with config. Each new
// generator gets a fresh key from the operating system.
func NewPool(config Config) (*Pool, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Pool{config: config}
	p.pool.New = func() interface{} {
		seed, err := SeedFromEntropy()
		if err != nil {
			panic(err)
		}
		c, err := NewChaChaWithConfig(seed, p.config)
		if err != nil {
			panic(err)
		}
		traceLog("pool: new %v generator", c.Backend())
		return c
	}
	return p, nil
}

// Get retrieves a generator from the pool.
func (p *Pool) Get() *ChaCha {
	return p.pool.Get().(*ChaCha)
}

// Put returns a generator to the pool for reuse.
func (p *Pool) Put(c *ChaCha) {
	if c != nil {
		p.pool.Put(c)
	}
}

// Locked serializes access to a generator that must be shared between
// goroutines. Prefer one generator per goroutine or a Pool.
type Locked struct {
	mu sync.Mutex
	g  Generator
}

// NewLocked wraps g. g must not be used directly afterwards.
func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

// Uint32 implements Generator.
func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint32()
}

// Uint64 implements Generator.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint64()
}

// Fill implements Generator.
func (l *Locked) Fill(dst []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Fill(dst)
}
