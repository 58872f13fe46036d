package linediff

// The aligner implements Myers' greedy diagonal search over the line edit
// graph. A point (x, y) means x old lines and y new lines consumed; a
// horizontal step deletes old[x], a vertical step inserts new[y], and a
// diagonal "snake" step consumes one equal line from each side for free.
// Diagonal k is x-y; for each distance d the search tracks the
// furthest-reaching x per reachable diagonal.
//
// Tie-break, fixed so output is reproducible: each diagonal extends from
// whichever neighbor yields the larger resulting x, and on an exact x tie the
// vertical (insert) extension wins. This is the condition
//
//	k == -d || (k != d && v[k-1] < v[k+1])
//
// applied identically during search and backtrack.
//
// Two variants share that policy. alignTrace records per-distance endpoint
// snapshots and backtracks through them; its trace costs O(D^2) memory. When
// the cell count old_len*new_len of a subproblem exceeds the ceiling,
// alignLinear takes over: a divide-and-conquer on the middle snake that keeps
// only two O(old_len+new_len) endpoint arrays alive. Both produce minimal
// scripts.
type aligner struct {
	a, b    side
	opts    Options
	ceiling int // cell count above which the linear-space variant runs
}

// linearCeiling bounds the memory of the trace variant. Above this many cells
// the aligner switches to the linear-space recursion.
const linearCeiling = 1 << 22

func newAligner(a, b side, opts Options) *aligner {
	return &aligner{a: a, b: b, opts: opts, ceiling: linearCeiling}
}

// equal reports whether old line i and new line j match: key comparison
// first, exact normalized re-check on key equality.
func (al *aligner) equal(i, j int) bool {
	if al.a.keys[i] != al.b.keys[j] {
		return false
	}
	return sameLine(al.a.buf, al.a.recs[i], al.b.buf, al.b.recs[j], al.opts)
}

// align computes a minimal edit script between the two sides.
func (al *aligner) align() EditScript {
	n, m := len(al.a.recs), len(al.b.recs)
	if n == 0 && m == 0 {
		return nil
	}

	// Common prefix and suffix are part of some minimal script; stripping
	// them first shrinks the search to the changed region.
	pre := 0
	for pre < n && pre < m && al.equal(pre, pre) {
		pre++
	}
	suf := 0
	for suf < n-pre && suf < m-pre && al.equal(n-1-suf, m-1-suf) {
		suf++
	}

	script := make(EditScript, 0, n+m)
	for i := 0; i < pre; i++ {
		script = append(script, Edit{Op: OpEqual, OldIndex: i, NewIndex: i})
	}
	script = al.alignRange(script, pre, n-suf, pre, m-suf)
	for i := 0; i < suf; i++ {
		script = append(script, Edit{Op: OpEqual, OldIndex: n - suf + i, NewIndex: m - suf + i})
	}
	return script
}

// alignRange appends the script for old[oldLo:oldHi) vs new[newLo:newHi).
func (al *aligner) alignRange(script EditScript, oldLo, oldHi, newLo, newHi int) EditScript {
	n, m := oldHi-oldLo, newHi-newLo
	switch {
	case n == 0 && m == 0:
		return script
	case n == 0:
		for j := newLo; j < newHi; j++ {
			script = append(script, Edit{Op: OpInsert, OldIndex: -1, NewIndex: j})
		}
		return script
	case m == 0:
		for i := oldLo; i < oldHi; i++ {
			script = append(script, Edit{Op: OpDelete, OldIndex: i, NewIndex: -1})
		}
		return script
	}
	if n > al.ceiling/m {
		return al.alignLinear(script, oldLo, oldHi, newLo, newHi)
	}
	return append(script, al.alignTrace(oldLo, oldHi, newLo, newHi)...)
}

// alignTrace runs the forward search to completion, snapshotting the
// endpoint array before each distance round, then backtracks the snapshots
// to reconstruct the path. Both ranges must be non-empty.
func (al *aligner) alignTrace(oldLo, oldHi, newLo, newHi int) EditScript {
	n, m := oldHi-oldLo, newHi-newLo
	maxD := n + m
	off := maxD
	// v[off+k] is the furthest-reaching x on diagonal k. Zero initialization
	// doubles as the conventional V[1] = 0 seed for d = 0.
	v := make([]int, 2*maxD+1)
	// trace[d] holds v[-d..d] as it stood before round d ran, which is the
	// state that determined round d's choices.
	trace := make([][]int, 0, 16)

	dFinal := -1
search:
	for d := 0; d <= maxD; d++ {
		snap := make([]int, 2*d+1)
		copy(snap, v[off-d:off+d+1])
		trace = append(trace, snap)
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1] // vertical: insert
			} else {
				x = v[off+k-1] + 1 // horizontal: delete
			}
			y := x - k
			for x < n && y < m && al.equal(oldLo+x, newLo+y) {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				dFinal = d
				break search
			}
		}
	}

	// Backtrack from (n, m), reapplying the tie-break against each round's
	// snapshot. Ops come out in reverse order.
	rev := make(EditScript, 0, n+m)
	x, y := n, m
	for d := dFinal; d > 0; d-- {
		snap := trace[d] // indexed by k+d
		k := x - y
		var prevK int
		if k == -d || (k != d && snap[d+k-1] < snap[d+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := snap[d+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			rev = append(rev, Edit{Op: OpEqual, OldIndex: oldLo + x - 1, NewIndex: newLo + y - 1})
			x--
			y--
		}
		if prevK == k+1 {
			rev = append(rev, Edit{Op: OpInsert, OldIndex: -1, NewIndex: newLo + prevY})
		} else {
			rev = append(rev, Edit{Op: OpDelete, OldIndex: oldLo + prevX, NewIndex: -1})
		}
		x, y = prevX, prevY
	}
	for x > 0 && y > 0 {
		rev = append(rev, Edit{Op: OpEqual, OldIndex: oldLo + x - 1, NewIndex: newLo + y - 1})
		x--
		y--
	}

	script := make(EditScript, len(rev))
	for i, e := range rev {
		script[len(rev)-1-i] = e
	}
	return script
}

// alignLinear is the linear-space divide-and-conquer: strip the common
// prefix and suffix of the range, then split at a point on the middle snake
// and recurse on both halves. Scratch is bounded by the two endpoint arrays
// in splitRange.
func (al *aligner) alignLinear(script EditScript, oldLo, oldHi, newLo, newHi int) EditScript {
	for oldLo < oldHi && newLo < newHi && al.equal(oldLo, newLo) {
		script = append(script, Edit{Op: OpEqual, OldIndex: oldLo, NewIndex: newLo})
		oldLo++
		newLo++
	}
	suf := 0
	for oldHi > oldLo && newHi > newLo && al.equal(oldHi-1, newHi-1) {
		oldHi--
		newHi--
		suf++
	}

	switch {
	case oldLo == oldHi:
		for j := newLo; j < newHi; j++ {
			script = append(script, Edit{Op: OpInsert, OldIndex: -1, NewIndex: j})
		}
	case newLo == newHi:
		for i := oldLo; i < oldHi; i++ {
			script = append(script, Edit{Op: OpDelete, OldIndex: i, NewIndex: -1})
		}
	default:
		// With prefix and suffix gone the distance here is at least 2, so the
		// split point is strictly inside the range and both halves shrink.
		sx, sy := al.splitRange(oldLo, oldHi, newLo, newHi)
		script = al.alignLinear(script, oldLo, sx, newLo, sy)
		script = al.alignLinear(script, sx, oldHi, sy, newHi)
	}

	for i := 0; i < suf; i++ {
		script = append(script, Edit{Op: OpEqual, OldIndex: oldHi + i, NewIndex: newHi + i})
	}
	return script
}

// splitRange finds a point on the middle snake of old[off1:lim1) vs
// new[off2:lim2) by running the forward and backward searches toward each
// other until their furthest-reaching paths overlap. Diagonals are indexed by
// the absolute k = x - y, which ranges over [off1-lim2, lim1-off2]. Both
// ranges must be non-empty and share no common prefix or suffix.
func (al *aligner) splitRange(off1, lim1, off2, lim2 int) (int, int) {
	const intMax = int(^uint(0) >> 1)

	dmin := off1 - lim2
	dmax := lim1 - off2
	fmid := off1 - off2
	bmid := lim1 - lim2
	odd := (fmid-bmid)&1 != 0

	// One guard slot beyond each end holds the sentinel a fresh diagonal
	// compares against: -1 for forward (always loses a max), intMax for
	// backward (always loses a min).
	koff := 1 - dmin
	kvdf := make([]int, dmax-dmin+3)
	kvdb := make([]int, dmax-dmin+3)
	kvdf[fmid+koff] = off1
	kvdb[bmid+koff] = lim1

	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid
	for {
		// Forward.
		if fmin > dmin {
			fmin--
			kvdf[fmin-1+koff] = -1
		} else {
			fmin++
		}
		if fmax < dmax {
			fmax++
			kvdf[fmax+1+koff] = -1
		} else {
			fmax--
		}
		for d := fmax; d >= fmin; d -= 2 {
			var i1 int
			if kvdf[d-1+koff] >= kvdf[d+1+koff] {
				i1 = kvdf[d-1+koff] + 1
			} else {
				i1 = kvdf[d+1+koff]
			}
			i2 := i1 - d
			for i1 < lim1 && i2 < lim2 && al.equal(i1, i2) {
				i1++
				i2++
			}
			kvdf[d+koff] = i1
			if odd && bmin <= d && d <= bmax && kvdb[d+koff] <= i1 {
				return i1, i2
			}
		}

		// Backward.
		if bmin > dmin {
			bmin--
			kvdb[bmin-1+koff] = intMax
		} else {
			bmin++
		}
		if bmax < dmax {
			bmax++
			kvdb[bmax+1+koff] = intMax
		} else {
			bmax--
		}
		for d := bmax; d >= bmin; d -= 2 {
			var i1 int
			if kvdb[d-1+koff] < kvdb[d+1+koff] {
				i1 = kvdb[d-1+koff]
			} else {
				i1 = kvdb[d+1+koff] - 1
			}
			i2 := i1 - d
			for i1 > off1 && i2 > off2 && al.equal(i1-1, i2-1) {
				i1--
				i2--
			}
			kvdb[d+koff] = i1
			if !odd && fmin <= d && d <= fmax && i1 <= kvdf[d+koff] {
				return i1, i2
			}
		}
	}
}
