package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/codalotl/linediff/internal/linediff"
)

const (
	ansiReset    = "\x1b[0m"
	ansiRed      = "\x1b[31m"
	ansiGreen    = "\x1b[32m"
	ansiMagenta  = "\x1b[35m"
	ansiCyanBold = "\x1b[1;36m"
)

// unifiedWriter adapts the chunk stream produced by linediff.Compute into
// terminal output, optionally colorized and syntax-highlighted.
//
// The stream has a fixed shape per hunk: one header chunk, then for each line
// a one-byte prefix chunk, a content chunk, and possibly a no-newline marker.
// That shape lets us classify chunks without any handshake: after a prefix we
// always expect content; otherwise headers start with "@@" and markers with a
// newline.
type unifiedWriter struct {
	w         io.Writer
	color     bool
	highlight *highlighter

	pendingOp      byte // prefix seen, content chunk is next; 0 otherwise
	wroteFileHeads bool
	oldName        string
	newName        string
}

func newUnifiedWriter(w io.Writer, color bool, hl *highlighter, oldName, newName string) *unifiedWriter {
	return &unifiedWriter{w: w, color: color, highlight: hl, oldName: oldName, newName: newName}
}

// Sink is the callback handed to linediff.Compute.
func (u *unifiedWriter) Sink(chunk []byte) error {
	if u.pendingOp != 0 {
		op := u.pendingOp
		u.pendingOp = 0
		return u.writeContent(op, chunk)
	}

	switch {
	case bytes.HasPrefix(chunk, []byte("@@")):
		if err := u.writeFileHeaders(); err != nil {
			return err
		}
		return u.writeColored(chunk, ansiMagenta)
	case len(chunk) == 1 && (chunk[0] == ' ' || chunk[0] == '-' || chunk[0] == '+'):
		u.pendingOp = chunk[0]
		return u.writePrefix(chunk[0])
	default:
		// No-newline marker (or anything else): pass through untouched.
		_, err := u.w.Write(chunk)
		return err
	}
}

// writeFileHeaders emits the "---"/"+++" lines before the first hunk, so
// identical inputs produce no output at all.
func (u *unifiedWriter) writeFileHeaders() error {
	if u.wroteFileHeads {
		return nil
	}
	u.wroteFileHeads = true
	if err := u.writeColored([]byte("--- "+u.oldName+"\n"), ansiCyanBold); err != nil {
		return err
	}
	return u.writeColored([]byte("+++ "+u.newName+"\n"), ansiCyanBold)
}

func (u *unifiedWriter) writePrefix(op byte) error {
	if code := opColor(op); u.color && code != "" {
		if _, err := io.WriteString(u.w, code); err != nil {
			return err
		}
	}
	_, err := u.w.Write([]byte{op})
	return err
}

func (u *unifiedWriter) writeContent(op byte, chunk []byte) error {
	body := chunk
	hasEOL := len(body) > 0 && body[len(body)-1] == '\n'
	if hasEOL {
		body = body[:len(body)-1]
	}

	if u.highlight != nil {
		// Close the diff color around the prefix only; the highlighter brings
		// its own escapes.
		if u.color && opColor(op) != "" {
			if _, err := io.WriteString(u.w, ansiReset); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(u.w, u.highlight.line(string(body))); err != nil {
			return err
		}
	} else {
		if _, err := u.w.Write(body); err != nil {
			return err
		}
		if u.color && opColor(op) != "" {
			if _, err := io.WriteString(u.w, ansiReset); err != nil {
				return err
			}
		}
	}

	if hasEOL {
		if _, err := u.w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

// writeColored writes a full line wrapped in code, keeping the trailing
// newline outside the escape sequence.
func (u *unifiedWriter) writeColored(line []byte, code string) error {
	if !u.color {
		_, err := u.w.Write(line)
		return err
	}
	body := line
	hasEOL := len(body) > 0 && body[len(body)-1] == '\n'
	if hasEOL {
		body = body[:len(body)-1]
	}
	if _, err := fmt.Fprintf(u.w, "%s%s%s", code, body, ansiReset); err != nil {
		return err
	}
	if hasEOL {
		if _, err := u.w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

func opColor(op byte) string {
	switch op {
	case '-':
		return ansiRed
	case '+':
		return ansiGreen
	default:
		return ""
	}
}

// renderStat writes a git-style change summary. width is the terminal width
// used to scale the +/- bar; widths <= 0 fall back to 80.
func renderStat(w io.Writer, oldName, newName string, s linediff.Stat, width int) {
	if width <= 0 {
		width = 80
	}

	label := oldName
	if newName != oldName {
		label = oldName + " => " + newName
	}

	total := s.Additions + s.Deletions
	countStr := fmt.Sprintf("%d", total)

	// " <label> | <count> <bar>"
	used := 1 + runewidth.StringWidth(label) + 3 + len(countStr) + 1
	avail := width - used
	if avail < 1 {
		avail = 1
	}
	plus, minus := scaleBar(s.Additions, s.Deletions, avail)

	fmt.Fprintf(w, " %s | %s %s%s\n", label, countStr,
		strings.Repeat("+", plus), strings.Repeat("-", minus))
	fmt.Fprintf(w, " 1 file changed, %s, %s\n",
		plural(s.Additions, "insertion(+)", "insertions(+)"),
		plural(s.Deletions, "deletion(-)", "deletions(-)"))
}

// scaleBar shrinks the +/- bar proportionally when the change count exceeds
// the available columns, always keeping at least one glyph for a non-zero
// side.
func scaleBar(adds, dels, avail int) (plus, minus int) {
	total := adds + dels
	if total <= avail {
		return adds, dels
	}
	plus = adds * avail / total
	minus = dels * avail / total
	if adds > 0 && plus == 0 {
		plus = 1
	}
	if dels > 0 && minus == 0 {
		minus = 1
	}
	return plus, minus
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
