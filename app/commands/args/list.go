package args

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
)

// ListCommand prints the palette catalog for the configured site, narrowed by an
// optional filter exactly as the palette would narrow it.
type ListCommand struct{}

func init() {
	RegisterCommand(&ListCommand{})
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "Lists the palette commands for the configured site."
}

func (c *ListCommand) Usage() string {
	return "[filter...] [--env online|premise]"
}

func (c *ListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "filter", Description: "Only list commands whose label contains this text."},
	}
}

func (c *ListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{envFlag}
}

func (c *ListCommand) Execute(args cli.CommandArgs) error {
	_, sess, err := current.session(args)
	if err != nil {
		return err
	}
	// Listing never runs an action; the opener is only there to build records.
	ctrl := current.controller(sess, launch.PrintOpener{W: current.Out})
	ctrl.SetFilter(strings.Join(args.Variables, " "))

	view := ctrl.View()
	if len(view) == 0 {
		current.info("No commands match %q", ctrl.Filter())
		return nil
	}

	rows := pterm.TableData{{"Command", "URL"}}
	for _, rec := range view {
		rows = append(rows, []string{rec.Label, rec.Detail})
	}
	return current.table(rows)
}
