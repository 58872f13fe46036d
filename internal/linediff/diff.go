package linediff

import (
	"errors"
	"fmt"
)

// Options configures a diff computation. The zero value is valid (zero
// context, exact comparison, no cost ceiling); DefaultOptions matches the
// conventional diff defaults.
type Options struct {
	// Context is the number of unchanged lines shown around each change.
	// Must be >= 0.
	Context int

	// IgnoreWhitespace makes lines that differ only in spaces, tabs, and
	// other horizontal whitespace compare equal. The line terminator is
	// always significant.
	IgnoreWhitespace bool

	// IgnoreCase folds ASCII letters before comparison.
	IgnoreCase bool

	// MaxCost aborts the computation with ErrResourceExceeded when
	// old_lines*new_lines exceeds it. 0 means no ceiling.
	MaxCost int
}

// DefaultOptions returns the conventional defaults: 3 lines of context,
// exact comparison, no cost ceiling.
func DefaultOptions() Options {
	return Options{Context: 3}
}

// Error kinds. All are recoverable by the caller; the engine never panics on
// any input.
var (
	// ErrInvalidOptions rejects a nonsensical Options value before any
	// computation begins.
	ErrInvalidOptions = errors.New("linediff: invalid options")

	// ErrResourceExceeded reports an input pair over the configured MaxCost.
	ErrResourceExceeded = errors.New("linediff: resource limit exceeded")

	// ErrSinkAborted wraps the error a Sink returned; rendering of the
	// remaining stream stops immediately.
	ErrSinkAborted = errors.New("linediff: sink aborted")
)

func (o Options) validate() error {
	if o.Context < 0 {
		return fmt.Errorf("%w: negative context %d", ErrInvalidOptions, o.Context)
	}
	if o.MaxCost < 0 {
		return fmt.Errorf("%w: negative max cost %d", ErrInvalidOptions, o.MaxCost)
	}
	return nil
}

// ComputeHunks diffs oldBuf against newBuf and returns the context-bounded
// hunks. Identical inputs (including both empty) yield a nil slice. The
// returned hunks reference oldBuf/newBuf through their line records; the
// buffers must outlive any use of the result.
func ComputeHunks(oldBuf, newBuf []byte, opts Options) ([]Hunk, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	a := newSide(oldBuf, opts)
	b := newSide(newBuf, opts)
	if opts.MaxCost > 0 && len(a.recs) > 0 && len(b.recs) > 0 && len(a.recs) > opts.MaxCost/len(b.recs) {
		return nil, fmt.Errorf("%w: %d x %d lines exceeds max cost %d",
			ErrResourceExceeded, len(a.recs), len(b.recs), opts.MaxCost)
	}
	script := newAligner(a, b, opts).align()
	return aggregate(script, opts.Context, a.recs, b.recs), nil
}

// Compute diffs oldBuf against newBuf and streams the rendered unified-diff
// hunks to sink (see Sink for chunk granularity). Identical inputs produce no
// sink calls. On a sink error the remaining stream is dropped and the error
// is returned wrapped in ErrSinkAborted.
func Compute(oldBuf, newBuf []byte, opts Options, sink Sink) error {
	hunks, err := ComputeHunks(oldBuf, newBuf, opts)
	if err != nil {
		return err
	}
	for _, h := range hunks {
		if err := RenderHunk(h, oldBuf, newBuf, sink); err != nil {
			return err
		}
	}
	return nil
}
