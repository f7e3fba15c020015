package rng

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// debugEnabled controls whether debug tracing is enabled via RNG_DEBUG env var
var debugEnabled = os.Getenv("RNG_DEBUG") == "1"

var traceLogger = newTraceLogger(os.Stderr)

func newTraceLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().
		Timestamp().
		Str("component", "rng").
		Logger()
}

// SetDebug turns construction tracing on or off.
func SetDebug(on bool) {
	debugEnabled = on
}

// SetDebugOutput redirects trace output, which goes to stderr by default.
func SetDebugOutput(w io.Writer) {
	traceLogger = newTraceLogger(w)
}

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		traceLogger.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

// traceBackend records which ChaCha backend a constructor settled on.
func traceBackend(requested, selected Backend, doubleRounds uint) {
	if debugEnabled {
		traceLogger.Debug().
			Stringer("requested", requested).
			Stringer("selected", selected).
			Uint("double_rounds", doubleRounds).
			Msg("chacha backend selected")
	}
}

// traceWords outputs words as little-endian hex with a descriptive name
func traceWords(name string, words []uint32) {
	if debugEnabled {
		buf := make([]byte, 4*len(words))
		for i, w := range words {
			binary.LittleEndian.PutUint32(buf[4*i:], w)
		}
		traceLogger.Debug().
			Int("words", len(words)).
			Str("hex", hex.EncodeToString(buf)).
			Msg(name)
	}
}
