package linediff

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text. In a Hunk, OpEqual marks a context
// line.
const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// String returns the operation's name.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Prefix returns the unified-diff marker for op: ' ', '-', or '+'.
func (op Op) Prefix() byte {
	switch op {
	case OpDelete:
		return '-'
	case OpInsert:
		return '+'
	default:
		return ' '
	}
}

// Edit is one step of an edit script. OldIndex is the 0-based old line index
// for OpEqual and OpDelete; NewIndex is the 0-based new line index for
// OpEqual and OpInsert. An index that does not apply is -1.
type Edit struct {
	Op       Op
	OldIndex int
	NewIndex int
}

// EditScript is an ordered sequence of edits covering every line index of
// both sides exactly once, old indices ascending and new indices ascending.
//
// Invariants:
//   - OpEqual edits carry both indices; OpDelete only OldIndex; OpInsert only
//     NewIndex.
//   - Concatenating the old-side indices (OpEqual+OpDelete) enumerates
//     0..old_len-1; likewise for the new side (OpEqual+OpInsert).
type EditScript []Edit

// Distance returns the number of non-equal edits: the line-level edit
// distance realized by the script.
func (s EditScript) Distance() int {
	d := 0
	for _, e := range s {
		if e.Op != OpEqual {
			d++
		}
	}
	return d
}
