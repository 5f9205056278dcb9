package args

import (
	"github.com/pterm/pterm"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/config"
)

// ConfigListCommand prints every setting with its effective value.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigListCommand) Name() string {
	return "config list"
}

func (c *ConfigListCommand) Description() string {
	return "Lists all configuration keys and values."
}

func (c *ConfigListCommand) Usage() string {
	return ""
}

func (c *ConfigListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ConfigListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigListCommand) Execute(args cli.CommandArgs) error {
	path, err := current.configPath()
	if err != nil {
		return err
	}
	all, err := config.All(path)
	if err != nil {
		return err
	}

	rows := pterm.TableData{{"Key", "Value"}}
	for _, k := range config.Keys() {
		rows = append(rows, []string{k, all[k]})
	}
	return current.table(rows)
}
