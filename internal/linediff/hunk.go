package linediff

// HunkLine is one rendered line of a hunk: a tag and a record locating the
// line's bytes. Context and delete lines point into the old buffer; insert
// lines point into the new buffer.
type HunkLine struct {
	Op  Op // OpEqual (context), OpDelete, or OpInsert
	Rec LineRecord
}

// Hunk is a contiguous, context-bounded group of changed lines and their
// surrounding context.
//
// Invariants:
//   - OldCount == count of OpEqual+OpDelete lines; NewCount == OpEqual+OpInsert.
//   - OldStart/NewStart are 1-based when the matching count is nonzero. When a
//     side contributes no lines, its start is the line number preceding the
//     change on that side (0 at the start of the file), per unified-diff
//     convention.
//   - Lines contains at least one non-equal line.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []HunkLine
}

// aggregate groups script into context-bounded hunks. Two change runs
// separated by more than 2*context equal lines land in separate hunks;
// anything closer is merged with the separating lines kept as context.
// Visible context is clipped to at most `context` lines on each outer edge.
// A script with no non-equal edits yields no hunks.
//
// Within each contiguous change run, deleted lines are emitted before
// inserted lines, the conventional unified-diff ordering.
func aggregate(script EditScript, context int, oldRecs, newRecs []LineRecord) []Hunk {
	// oldBefore[i]/newBefore[i]: lines of each side consumed by script[:i].
	oldBefore := make([]int, len(script)+1)
	newBefore := make([]int, len(script)+1)
	for i, e := range script {
		oldBefore[i+1] = oldBefore[i]
		newBefore[i+1] = newBefore[i]
		switch e.Op {
		case OpEqual:
			oldBefore[i+1]++
			newBefore[i+1]++
		case OpDelete:
			oldBefore[i+1]++
		case OpInsert:
			newBefore[i+1]++
		}
	}

	var hunks []Hunk
	i := 0
	for i < len(script) {
		if script[i].Op == OpEqual {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}

		// Extend over further change runs while the equal gap between them is
		// small enough to merge.
		last := i
		j := i + 1
		for j < len(script) {
			if script[j].Op != OpEqual {
				last = j
				j++
				continue
			}
			k := j
			for k < len(script) && script[k].Op == OpEqual {
				k++
			}
			if k < len(script) && k-j <= 2*context {
				j = k
				continue
			}
			break
		}

		end := last + 1 + context
		if end > len(script) {
			end = len(script)
		}

		hunks = append(hunks, buildHunk(script[start:end], oldBefore[start], newBefore[start], oldRecs, newRecs))
		i = last + 1
	}
	return hunks
}

// buildHunk assembles one hunk from a script slice. oldPos/newPos are the
// number of lines of each side preceding the slice.
func buildHunk(ops EditScript, oldPos, newPos int, oldRecs, newRecs []LineRecord) Hunk {
	lines := make([]HunkLine, 0, len(ops))
	oldCount, newCount := 0, 0

	for i := 0; i < len(ops); {
		if ops[i].Op == OpEqual {
			lines = append(lines, HunkLine{Op: OpEqual, Rec: oldRecs[ops[i].OldIndex]})
			oldCount++
			newCount++
			i++
			continue
		}
		// A change run: all deletes, then all inserts.
		j := i
		for j < len(ops) && ops[j].Op != OpEqual {
			j++
		}
		for k := i; k < j; k++ {
			if ops[k].Op == OpDelete {
				lines = append(lines, HunkLine{Op: OpDelete, Rec: oldRecs[ops[k].OldIndex]})
				oldCount++
			}
		}
		for k := i; k < j; k++ {
			if ops[k].Op == OpInsert {
				lines = append(lines, HunkLine{Op: OpInsert, Rec: newRecs[ops[k].NewIndex]})
				newCount++
			}
		}
		i = j
	}

	h := Hunk{OldCount: oldCount, NewCount: newCount, Lines: lines}
	if oldCount > 0 {
		h.OldStart = oldPos + 1
	} else {
		h.OldStart = oldPos
	}
	if newCount > 0 {
		h.NewStart = newPos + 1
	} else {
		h.NewStart = newPos
	}
	return h
}
