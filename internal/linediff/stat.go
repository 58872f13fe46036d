package linediff

// Stat summarizes a diff as totals of added and deleted lines.
type Stat struct {
	Additions int
	Deletions int
}

// StatOf tallies insertions and deletions across hunks.
func StatOf(hunks []Hunk) Stat {
	var s Stat
	for _, h := range hunks {
		for _, ln := range h.Lines {
			switch ln.Op {
			case OpInsert:
				s.Additions++
			case OpDelete:
				s.Deletions++
			}
		}
	}
	return s
}
