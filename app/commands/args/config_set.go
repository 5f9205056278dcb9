package args

import (
	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/config"
)

// ConfigSetCommand stores a setting in the config file.
type ConfigSetCommand struct{}

func init() {
	RegisterCommand(&ConfigSetCommand{})
}

func (c *ConfigSetCommand) Name() string {
	return "config set"
}

func (c *ConfigSetCommand) Description() string {
	return "Sets a configuration key to a specific value."
}

func (c *ConfigSetCommand) Usage() string {
	return "<key> <value>"
}

func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to set.", Required: true},
		{Name: "value", Description: "The value to assign to the key.", Required: true},
	}
}

func (c *ConfigSetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigSetCommand) Execute(args cli.CommandArgs) error {
	if len(args.Variables) < 2 {
		return errors.Wrap(ErrMissingArgs, "key and value")
	}
	key, value := args.Variables[0], args.Variables[1]

	path, err := current.configPath()
	if err != nil {
		return err
	}
	if err := config.Set(path, key, value); err != nil {
		return err
	}
	current.success("%s = %s", key, value)
	return nil
}
