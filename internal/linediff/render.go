package linediff

import "fmt"

// Sink consumes the rendered diff stream one chunk at a time. The stream is
// forward-only and non-restartable; returning a non-nil error aborts the
// remaining stream for the call (the engine's state is unaffected).
//
// Chunk granularity matches the emit callback of classic diff libraries: a
// hunk header arrives as one chunk ending in '\n'; each line then arrives as
// a one-byte prefix chunk ("-", "+", or " ") followed by a content chunk
// holding the exact original line bytes. Concatenating all chunks yields the
// unified-diff text.
type Sink func(chunk []byte) error

// noNewlineMarker follows the content chunk of a line with no trailing '\n':
// the line is terminated for display, then flagged, so the output remains
// parseable by patch tools.
var noNewlineMarker = []byte("\n\\ No newline at end of file\n")

var (
	contextPrefix = []byte(" ")
	deletePrefix  = []byte("-")
	insertPrefix  = []byte("+")
)

func prefixChunk(op Op) []byte {
	switch op {
	case OpDelete:
		return deletePrefix
	case OpInsert:
		return insertPrefix
	default:
		return contextPrefix
	}
}

// RenderHunk serializes one hunk to sink as unified-diff text. Context and
// delete lines are read from oldBuf, insert lines from newBuf; these must be
// the buffers the hunk was computed from. A sink error is returned wrapped in
// ErrSinkAborted and no further chunks are emitted.
func RenderHunk(h Hunk, oldBuf, newBuf []byte, sink Sink) error {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
	if err := sink([]byte(header)); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkAborted, err)
	}
	for _, ln := range h.Lines {
		if err := sink(prefixChunk(ln.Op)); err != nil {
			return fmt.Errorf("%w: %w", ErrSinkAborted, err)
		}
		buf := oldBuf
		if ln.Op == OpInsert {
			buf = newBuf
		}
		if err := sink(ln.Rec.Slice(buf)); err != nil {
			return fmt.Errorf("%w: %w", ErrSinkAborted, err)
		}
		if !ln.Rec.HasEOL {
			if err := sink(noNewlineMarker); err != nil {
				return fmt.Errorf("%w: %w", ErrSinkAborted, err)
			}
		}
	}
	return nil
}
