package args

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/catalog"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
)

// EnvCommand prints the detected environment and the URL roots commands resolve
// against.
type EnvCommand struct{}

func init() {
	RegisterCommand(&EnvCommand{})
}

func (c *EnvCommand) Name() string {
	return "env"
}

func (c *EnvCommand) Description() string {
	return "Shows the detected version type, site type and URL roots."
}

func (c *EnvCommand) Usage() string {
	return "[--env online|premise]"
}

func (c *EnvCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *EnvCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{envFlag}
}

func (c *EnvCommand) Execute(args cli.CommandArgs) error {
	_, sess, err := current.session(args)
	if err != nil {
		return err
	}

	applicable := 0
	for _, e := range catalog.Entries() {
		if e.AppliesTo(sess.Env) {
			applicable++
		}
	}

	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"Version type", sess.Env.String()})
	rows = append(rows, []string{"Site type", string(sess.SiteType)})
	if sess.Site.Origin == "" {
		rows = append(rows, []string{"Site", "(not configured)"})
	} else {
		rows = append(rows, []string{"Site", sess.Site.PageURL("/")})
		if sess.Env == palette.EnvironmentOnline {
			rows = append(rows, []string{"SPO admin", sess.Site.SPOAdminURL("/")})
		} else {
			rows = append(rows, []string{"Central Admin", sess.Site.CentralAdminURL("/")})
		}
	}
	rows = append(rows, []string{"Commands", fmt.Sprint(applicable)})
	return current.table(rows)
}
