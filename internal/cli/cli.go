package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/codalotl/linediff/internal/linediff"
)

// Version is the linediff version. It is a var (not a const) so build tooling
// can override it (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.3.0"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is
// useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code and an error, if any:
//   - 0 -> the inputs are identical (err == nil)
//   - 1 -> the inputs differ (err == nil; differing inputs are not an error)
//   - 2 -> err != nil: bad arguments, unreadable input, or a compute failure
//
// In cases of errors, Run has already displayed an error message to
// opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	code, err := run(argv, in, out, errW)
	if err != nil {
		var ue UsageError
		if errors.As(err, &ue) {
			fmt.Fprintln(errW, ue.Message)
			fmt.Fprintln(errW)
			writeHelp(errW, newRunFlags(defaultConfig()).fs)
		} else {
			fmt.Fprintf(errW, "linediff: %v\n", err)
		}
	}
	return code, err
}

// runFlags binds every flag to a field, with defaults taken from the loaded
// config so the config file and the command line share one precedence chain.
type runFlags struct {
	fs *flagSet

	context          *int
	ignoreWhitespace *bool
	ignoreCase       *bool
	color            *string
	highlight        *bool
	style            *string
	stat             *bool
	maxCost          *int
	version          *bool
}

func newRunFlags(cfg Config) *runFlags {
	fs := newFlagSet()
	return &runFlags{
		fs:               fs,
		context:          fs.Int("context", 'C', cfg.Context, "unchanged lines shown around each change"),
		ignoreWhitespace: fs.Bool("ignore-whitespace", 'w', false, "treat lines differing only in whitespace as equal"),
		ignoreCase:       fs.Bool("ignore-case", 'i', false, "treat lines differing only in ASCII case as equal"),
		color:            fs.String("color", 0, cfg.Color, "colorize output: auto, always, or never"),
		highlight:        fs.Bool("highlight", 0, cfg.Highlight, "syntax-highlight line content"),
		style:            fs.String("style", 0, cfg.Style, "chroma style for --highlight"),
		stat:             fs.Bool("stat", 0, false, "print a change summary instead of the diff"),
		maxCost:          fs.Int("max-cost", 0, cfg.MaxCost, "refuse inputs whose line-count product exceeds this (0 = unlimited)"),
		version:          fs.Bool("version", 0, false, "print the version and exit"),
	}
}

func run(argv []string, in io.Reader, out, errW io.Writer) (int, error) {
	if hasHelpFlag(argv) {
		writeHelp(out, newRunFlags(defaultConfig()).fs)
		return 0, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return 2, err
	}

	rf := newRunFlags(cfg)
	positional, err := rf.fs.parse(argv)
	if err != nil {
		return 2, err
	}

	if *rf.version {
		fmt.Fprintf(out, "linediff %s\n", Version)
		return 0, nil
	}

	if len(positional) != 2 {
		return 2, usageErrorf("expected exactly two files, got %d", len(positional))
	}
	oldName, newName := positional[0], positional[1]
	if oldName == "-" && newName == "-" {
		return 2, usageErrorf("only one side may be read from stdin")
	}

	switch *rf.color {
	case "auto", "always", "never":
	default:
		return 2, usageErrorf("invalid --color value %q (want auto, always, or never)", *rf.color)
	}

	oldBuf, err := readInput(oldName, in)
	if err != nil {
		return 2, err
	}
	newBuf, err := readInput(newName, in)
	if err != nil {
		return 2, err
	}

	diffOpts := linediff.Options{
		Context:          *rf.context,
		IgnoreWhitespace: *rf.ignoreWhitespace,
		IgnoreCase:       *rf.ignoreCase,
		MaxCost:          *rf.maxCost,
	}

	hunks, err := linediff.ComputeHunks(oldBuf, newBuf, diffOpts)
	if errors.Is(err, linediff.ErrInvalidOptions) {
		return 2, usageErrorf("%v", err)
	}
	if err != nil {
		return 2, err
	}
	if len(hunks) == 0 {
		return 0, nil
	}

	if *rf.stat {
		renderStat(out, oldName, newName, linediff.StatOf(hunks), terminalWidth(out))
		return 1, nil
	}

	color := *rf.color == "always" || (*rf.color == "auto" && isTerminal(out))
	var hl *highlighter
	if *rf.highlight {
		hl = newHighlighter(newName, *rf.style)
	}

	uw := newUnifiedWriter(out, color, hl, oldName, newName)
	for _, h := range hunks {
		if err := linediff.RenderHunk(h, oldBuf, newBuf, uw.Sink); err != nil {
			return 2, err
		}
	}
	return 1, nil
}

// readInput reads a named file, or all of stdin when name is "-".
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		buf, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf, nil
	}
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

func hasHelpFlag(argv []string) bool {
	for _, a := range argv {
		if a == "--" {
			return false
		}
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}
