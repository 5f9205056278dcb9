package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// CommandRegistryChecker reports whether a command name is registered. It keeps
// this package free of a dependency on the commands package.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// ValueFlagChecker is implemented by registries that know which of a command's
// flags take a value. Without it, a flag followed by a non-flag word takes that
// word as its value.
type ValueFlagChecker interface {
	TakesValue(command, flag string) bool
}

// boolFlags never take a value, whatever follows them.
var boolFlags = map[string]bool{
	"debug":   true,
	"help":    true,
	"h":       true,
	"version": true,
}

// ArgDef describes an expected positional argument.
type ArgDef struct {
	Name        string // e.g. "filter", "key"
	Description string
	Required    bool
}

// FlagDef describes an expected flag.
type FlagDef struct {
	Name        string // long name, e.g. "mode"
	ShortName   string // e.g. "m"; empty if none
	Description string
	HasValue    bool // --flag=v rather than --flag
	Required    bool
}

// CommandArgs holds what was parsed from the command line.
type CommandArgs struct {
	RawArgs          []string
	CommandName      string            // e.g. "list", "config set"
	Variables        []string          // positional arguments after the command name
	Flags            map[string]string // --mode=print -> map["mode"]="print"
	BoolFlags        map[string]bool   // --debug -> map["debug"]=true
	HelpRequested    bool
	VersionRequested bool
	Errors           []error
}

// Flag returns the value of a flag given by long or short name.
func (a CommandArgs) Flag(long, short string) (string, bool) {
	if v, ok := a.Flags[long]; ok {
		return v, true
	}
	if short != "" {
		if v, ok := a.Flags[short]; ok {
			return v, true
		}
	}
	return "", false
}

// Bool reports whether a boolean flag was given by long or short name.
func (a CommandArgs) Bool(long, short string) bool {
	return a.BoolFlags[long] || (short != "" && a.BoolFlags[short])
}

// ParseCommandLineArgs splits rawArgs into a command name, positional variables
// and flags. The command name is the first one or two non-flag words that the
// registry knows, trying the two-word form first.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// Global flags count wherever they appear.
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		}
	}

	args := make([]string, len(rawArgs))
	copy(args, rawArgs)

	name, rest := findCommand(args, registry)
	parsed.CommandName = name
	parseFlags(rest, &parsed, valueFlags(name, registry))
	return parsed
}

// findCommand returns the command name and the args left after removing it.
func findCommand(args []string, registry CommandRegistryChecker) (string, []string) {
	first, second := -1, -1
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if first == -1 {
			first = i
		} else {
			second = i
			break
		}
	}
	if first == -1 {
		return "", args
	}

	if second != -1 {
		if two := args[first] + " " + args[second]; registry.CommandExists(two) {
			return two, without(args, first, second)
		}
	}
	if registry.CommandExists(args[first]) {
		return args[first], without(args, first)
	}
	// Not a command; the word stays as a variable.
	return "", args
}

func without(args []string, drop ...int) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		skip := false
		for _, d := range drop {
			if i == d {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, arg)
		}
	}
	return out
}

// valueFlags reports whether a flag of command may consume the following word.
func valueFlags(command string, registry CommandRegistryChecker) func(string) bool {
	checker, ok := registry.(ValueFlagChecker)
	return func(flag string) bool {
		if boolFlags[flag] {
			return false
		}
		if !ok {
			return true
		}
		return checker.TakesValue(command, flag)
	}
}

// parseFlags fills flags and variables. A flag that takes a value and is followed
// by a non-flag word takes that word as its value; otherwise it is boolean.
// --flag=value always sets a value.
func parseFlags(args []string, parsed *CommandArgs, takesValue func(string) bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--version":
			continue

		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			value, hasValue := "", false
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, value, hasValue = name[:eq], name[eq+1:], true
			} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") && takesValue(name) {
				value, hasValue = args[i+1], true
				i++
			}
			setFlag(parsed, "--", name, value, hasValue)

		case strings.HasPrefix(arg, "-"):
			chars := strings.TrimPrefix(arg, "-")
			if chars == "" {
				parsed.Errors = append(parsed.Errors, errors.Newf("invalid flag format: %s", arg))
				continue
			}
			next := ""
			lastFlag := string(chars[len(chars)-1])
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") && takesValue(lastFlag) {
				next = args[i+1]
			}
			// Only the last short flag in a group can take the following value.
			for j, c := range chars {
				last := j == len(chars)-1
				setFlag(parsed, "-", string(c), next, last && next != "")
			}
			if next != "" {
				i++
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}
}

func setFlag(parsed *CommandArgs, prefix, name, value string, hasValue bool) {
	if hasValue {
		if _, exists := parsed.Flags[name]; exists {
			parsed.Errors = append(parsed.Errors, errors.Newf("flag provided more than once: %s%s", prefix, name))
		}
		parsed.Flags[name] = value
		return
	}
	if _, exists := parsed.BoolFlags[name]; exists {
		parsed.Errors = append(parsed.Errors, errors.Newf("boolean flag provided more than once: %s%s", prefix, name))
	}
	parsed.BoolFlags[name] = true
}
