// Package linediff computes a minimal line-level diff between an "old" and a
// "new" byte buffer and renders it as a unified-diff hunk stream.
//
// Pipeline: raw bytes -> line records -> per-line comparison keys -> edit
// script -> hunks -> formatted chunks. Each stage is pure; a diff call
// allocates everything it needs and shares nothing across calls, so
// independent calls may run concurrently as long as no caller mutates an
// input buffer mid-call (the engine only reads).
//
// Representation: SplitLines produces zero-copy LineRecord views into the
// input buffer. The alignment engine (Myers' greedy diagonal search) emits an
// EditScript of Equal/Delete/Insert steps that is minimal in edit count;
// aggregate groups it into context-bounded Hunks; RenderHunk serializes a
// hunk through a caller-supplied Sink.
//
// Invariants:
//   - The EditScript covers every line index of both sides exactly once, in
//     ascending order on each side, and its Delete+Insert count equals the
//     line-level edit distance under the configured equality.
//   - Hunk.OldCount equals the hunk's context+delete lines and Hunk.NewCount
//     its context+insert lines; starts are 1-based except that a side
//     contributing no lines anchors at the preceding line number (0 at the
//     start of the file).
//   - Concatenating all Sink chunks yields standard unified-diff hunk text,
//     bit-exact: consumers parse it.
//
// Getting a diff:
//
//	err := linediff.Compute(oldBuf, newBuf, linediff.DefaultOptions(), func(chunk []byte) error {
//		_, err := w.Write(chunk)
//		return err
//	})
//
// ComputeHunks returns the structured hunks instead, for callers that want to
// render themselves.
//
// Equality is configurable (ignore ASCII case, ignore horizontal whitespace);
// comparison keys are 64-bit hashes with an exact re-check on candidate
// matches, so hash collisions never produce a wrong diff. Inputs whose line
// counts multiply out beyond Options.MaxCost are rejected with
// ErrResourceExceeded before any quadratic work begins.
package linediff
