package cli

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter syntax-highlights single lines of content for terminal output.
// The lexer is chosen once from the new file's name; per-line tokenization
// loses cross-line state (multi-line strings, block comments), which is an
// accepted tradeoff for streaming output.
type highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

func newHighlighter(filename, styleName string) *highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &highlighter{lexer: lexer, style: style, formatter: formatter}
}

// line returns the highlighted rendering of a single line (no trailing
// newline). On any tokenization or formatting error the line comes back
// unmodified.
func (h *highlighter) line(s string) string {
	iterator, err := h.lexer.Tokenise(nil, s)
	if err != nil {
		return s
	}
	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return s
	}
	// The lexer may append a newline of its own; the caller owns line endings.
	return strings.TrimRight(sb.String(), "\n")
}
