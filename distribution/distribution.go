// Package distribution turns raw generator output into values uniformly
// distributed over numeric ranges.
//
// Every distribution is an immutable value computed once at construction.
// It may be shared between goroutines, each sampling with its own
// generator:
//
//	dice, err := distribution.NewUniformIntInclusive(1, 6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	roll := dice.Sample(g)
//
// Construction errors are *rng.RangeError values naming the offending bound.
// Sampling never returns an error: a draw that falls in the rejection zone
// is retried by Sample and reported as false by TrySample.
package distribution

import (
	"github.com/opd-ai/go-rng"
)

// Distribution produces values of type T from a generator.
type Distribution[T any] interface {
	// Sample draws until a value is accepted.
	Sample(g rng.Generator) T

	// TrySample makes exactly one attempt and reports whether it was
	// accepted. Callers needing bounded work loop over TrySample with their
	// own limit.
	TrySample(g rng.Generator) (T, bool)
}

// SampleN fills dst with samples from d.
func SampleN[T any](d Distribution[T], g rng.Generator, dst []T) {
	for i := range dst {
		dst[i] = d.Sample(g)
	}
}
