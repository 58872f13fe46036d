package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type flagKind uint8

const (
	flagBool flagKind = iota + 1
	flagString
	flagInt
)

// flagSet is a typed flag registry. There is a single command, so flags are
// flat: no subcommand scoping, no persistent/local split.
type flagSet struct {
	byLong  map[string]*flagDef
	byShort map[rune]*flagDef
	defs    []*flagDef
}

type flagDef struct {
	name      string
	shorthand rune
	usage     string
	kind      flagKind

	boolPtr   *bool
	stringPtr *string
	intPtr    *int
}

func newFlagSet() *flagSet {
	return &flagSet{
		byLong:  map[string]*flagDef{},
		byShort: map[rune]*flagDef{},
	}
}

func (fs *flagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	ptr := new(bool)
	*ptr = def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagBool, boolPtr: ptr})
	return ptr
}

func (fs *flagSet) String(name string, shorthand rune, def string, usage string) *string {
	ptr := new(string)
	*ptr = def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagString, stringPtr: ptr})
	return ptr
}

func (fs *flagSet) Int(name string, shorthand rune, def int, usage string) *int {
	ptr := new(int)
	*ptr = def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagInt, intPtr: ptr})
	return ptr
}

func (fs *flagSet) add(def *flagDef) {
	if def.name == "" {
		panic("cli: flag name must be non-empty")
	}
	if _, ok := fs.byLong[def.name]; ok {
		panic("cli: duplicate flag: --" + def.name)
	}
	fs.byLong[def.name] = def
	if def.shorthand != 0 {
		if _, ok := fs.byShort[def.shorthand]; ok {
			panic(fmt.Sprintf("cli: duplicate shorthand flag: -%c", def.shorthand))
		}
		fs.byShort[def.shorthand] = def
	}
	fs.defs = append(fs.defs, def)
}

// parse consumes flags from argv and returns the positional arguments. "--"
// ends flag parsing; everything after it is positional ("-" alone is always
// positional).
func (fs *flagSet) parse(argv []string) ([]string, error) {
	var positional []string
	parsingEnded := false

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if parsingEnded {
			positional = append(positional, argv[i:]...)
			break
		}
		if token == "--" {
			parsingEnded = true
			continue
		}
		if !strings.HasPrefix(token, "-") || token == "-" {
			positional = append(positional, token)
			continue
		}

		consumed, err := fs.parseToken(token, argv, i)
		if err != nil {
			return nil, err
		}
		i += consumed
	}
	return positional, nil
}

func (fs *flagSet) parseToken(token string, argv []string, idx int) (int, error) {
	var nextPtr *string
	if idx+1 < len(argv) {
		nextPtr = &argv[idx+1]
	}

	// Long flag: --name or --name=value.
	if strings.HasPrefix(token, "--") {
		name, value, hasValue := splitFlagValue(token[2:])
		var valuePtr *string
		if hasValue {
			valuePtr = &value
		}
		return fs.set(token, fs.byLong[name], valuePtr, nextPtr)
	}

	// Single-dash long flag: -name or -name=value (but not -n=value).
	if len(token) >= 3 && token[2] != '=' {
		name, value, hasValue := splitFlagValue(token[1:])
		var valuePtr *string
		if hasValue {
			valuePtr = &value
		}
		if def := fs.byLong[name]; def != nil {
			return fs.set(token, def, valuePtr, nextPtr)
		}
		// Fall through so "-Cx" style tokens still report the full token.
	}

	// Short flag: -n, -n=value, or -nVALUE.
	if len(token) < 2 {
		return 0, usageErrorf("unknown flag: %s", token)
	}
	def := fs.byShort[rune(token[1])]
	var valuePtr *string
	switch {
	case len(token) >= 3 && token[2] == '=':
		v := token[3:]
		valuePtr = &v
	case len(token) > 2:
		v := token[2:]
		valuePtr = &v
	}
	return fs.set(token, def, valuePtr, nextPtr)
}

// set applies a single parsed token to def and reports whether the next argv
// token was consumed as the flag's value (0 or 1).
func (fs *flagSet) set(token string, def *flagDef, value, nextValue *string) (int, error) {
	if def == nil {
		return 0, usageErrorf("unknown flag: %s", token)
	}

	consumed := 0
	var raw string
	switch {
	case value != nil:
		raw = *value
	case def.kind == flagBool:
		raw = "true"
	case nextValue == nil || *nextValue == "--":
		return 0, usageErrorf("flag needs a value: %s", token)
	default:
		raw = *nextValue
		consumed = 1
	}

	if err := def.setValue(raw); err != nil {
		return 0, usageErrorf("invalid value for %s: %v", displayFlag(def), err)
	}
	return consumed, nil
}

func (def *flagDef) setValue(raw string) error {
	switch def.kind {
	case flagBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*def.boolPtr = v
	case flagString:
		*def.stringPtr = raw
	case flagInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*def.intPtr = v
	default:
		return fmt.Errorf("unknown flag kind")
	}
	return nil
}

func (fs *flagSet) sortedDefs() []*flagDef {
	defs := append([]*flagDef(nil), fs.defs...)
	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}

func displayFlag(def *flagDef) string {
	if def.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", def.shorthand, def.name)
	}
	return "--" + def.name
}

func splitFlagValue(s string) (name, value string, ok bool) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
