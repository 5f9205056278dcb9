package args

import (
	"fmt"
	"sort"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
)

// ArgDef is an alias for cli.ArgDef.
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef.
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "config set").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<key> <value>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. Commands register themselves
// from init.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns every registered command sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// InteractiveFlags are the flags accepted when no command is given.
var InteractiveFlags = []FlagDef{envFlag}

// Registry satisfies cli.CommandRegistryChecker and cli.ValueFlagChecker.
type Registry struct{}

func (Registry) CommandExists(name string) bool { return CommandExists(name) }

// TakesValue reports whether flag is declared with a value by command, or by the
// interactive mode when command is empty.
func (Registry) TakesValue(command, flag string) bool {
	flags := InteractiveFlags
	if command != "" {
		cmd, found := GetCommand(command)
		if !found {
			return false
		}
		flags = cmd.ExpectedFlags()
	}
	for _, f := range flags {
		if f.HasValue && (f.Name == flag || (f.ShortName != "" && f.ShortName == flag)) {
			return true
		}
	}
	return false
}
