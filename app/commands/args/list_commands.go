package args

import (
	"github.com/pterm/pterm"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
)

// ListCommandsCommand lists the CLI's own commands.
type ListCommandsCommand struct{}

func init() {
	RegisterCommand(&ListCommandsCommand{})
}

func (c *ListCommandsCommand) Name() string {
	return "commands"
}

func (c *ListCommandsCommand) Description() string {
	return "Lists all available CLI commands."
}

func (c *ListCommandsCommand) Usage() string {
	return ""
}

func (c *ListCommandsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ListCommandsCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ListCommandsCommand) Execute(args cli.CommandArgs) error {
	rows := pterm.TableData{{"Command", "Usage", "Description"}}
	for _, cmd := range GetAllCommands() {
		// Don't list this command in its own output.
		if cmd.Name() == c.Name() {
			continue
		}
		rows = append(rows, []string{cmd.Name(), cmd.Usage(), cmd.Description()})
	}
	return current.table(rows)
}
