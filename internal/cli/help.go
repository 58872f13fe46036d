package cli

import (
	"fmt"
	"io"
	"strings"
)

func writeHelp(w io.Writer, fs *flagSet) {
	fmt.Fprintln(w, "linediff - compare two files line by line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  linediff [flags] OLD NEW")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Either OLD or NEW may be \"-\" to read that side from stdin.")
	fmt.Fprintln(w, "Exit status is 0 when the inputs match, 1 when they differ, and 2 on error.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	for _, def := range fs.sortedDefs() {
		fmt.Fprintln(w, formatFlagHelpLine(def))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  linediff -C 1 --color=always old.go new.go")
}

func formatFlagHelpLine(def *flagDef) string {
	var names string
	if def.shorthand != 0 {
		names = fmt.Sprintf("-%c, --%s", def.shorthand, def.name)
	} else {
		names = fmt.Sprintf("    --%s", def.name)
	}
	suffix := ""
	switch def.kind {
	case flagString:
		suffix = " <string>"
	case flagInt:
		suffix = " <int>"
	}
	usage := strings.TrimSpace(def.usage)
	if usage == "" {
		return fmt.Sprintf("  %s%s", names, suffix)
	}
	return fmt.Sprintf("  %s%s\t%s", names, suffix, usage)
}
