package args

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/config"
)

// ConfigGetCommand prints the effective value of one setting.
type ConfigGetCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
}

func (c *ConfigGetCommand) Name() string {
	return "config get"
}

func (c *ConfigGetCommand) Description() string {
	return "Gets the value of a specific configuration key."
}

func (c *ConfigGetCommand) Usage() string {
	return "<key>"
}

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to get, e.g. site.origin.", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigGetCommand) Execute(args cli.CommandArgs) error {
	if len(args.Variables) < 1 {
		return errors.Wrap(ErrMissingArgs, "key")
	}
	path, err := current.configPath()
	if err != nil {
		return err
	}
	value, err := config.Get(path, args.Variables[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(current.Out, value)
	return err
}
