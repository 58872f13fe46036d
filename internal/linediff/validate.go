package linediff

import "fmt"

// validateHunks checks the Hunk invariants and returns an error on the first
// violation.
func validateHunks(hunks []Hunk) error {
	prevOldEnd := 0
	prevNewEnd := 0
	for hi, h := range hunks {
		ctx, del, ins := 0, 0, 0
		for li, ln := range h.Lines {
			switch ln.Op {
			case OpEqual:
				ctx++
			case OpDelete:
				del++
			case OpInsert:
				ins++
			default:
				return fmt.Errorf("hunk[%d].line[%d]: unknown op %d", hi, li, ln.Op)
			}
			if ln.Rec.Len < 1 {
				return fmt.Errorf("hunk[%d].line[%d]: empty line record", hi, li)
			}
		}
		if del == 0 && ins == 0 {
			return fmt.Errorf("hunk[%d]: no changed lines", hi)
		}
		if h.OldCount != ctx+del {
			return fmt.Errorf("hunk[%d]: OldCount=%d but context+delete=%d", hi, h.OldCount, ctx+del)
		}
		if h.NewCount != ctx+ins {
			return fmt.Errorf("hunk[%d]: NewCount=%d but context+insert=%d", hi, h.NewCount, ctx+ins)
		}
		if h.OldStart < 0 || h.NewStart < 0 {
			return fmt.Errorf("hunk[%d]: negative start (-%d +%d)", hi, h.OldStart, h.NewStart)
		}
		if h.OldCount > 0 && h.OldStart < 1 {
			return fmt.Errorf("hunk[%d]: OldCount=%d requires 1-based OldStart, got %d", hi, h.OldCount, h.OldStart)
		}
		if h.NewCount > 0 && h.NewStart < 1 {
			return fmt.Errorf("hunk[%d]: NewCount=%d requires 1-based NewStart, got %d", hi, h.NewCount, h.NewStart)
		}

		// Hunks must be ordered and non-overlapping on both sides.
		oldStart := h.OldStart
		if h.OldCount == 0 {
			oldStart = h.OldStart + 1
		}
		newStart := h.NewStart
		if h.NewCount == 0 {
			newStart = h.NewStart + 1
		}
		if oldStart <= prevOldEnd {
			return fmt.Errorf("hunk[%d]: old range starts at %d inside previous hunk ending at %d", hi, oldStart, prevOldEnd)
		}
		if newStart <= prevNewEnd {
			return fmt.Errorf("hunk[%d]: new range starts at %d inside previous hunk ending at %d", hi, newStart, prevNewEnd)
		}
		prevOldEnd = oldStart + h.OldCount - 1
		prevNewEnd = newStart + h.NewCount - 1
	}
	return nil
}
