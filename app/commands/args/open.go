package args

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/logging"
)

// OpenCommand runs the first palette command matching a filter, as if the user
// had typed the filter and pressed enter.
type OpenCommand struct{}

func init() {
	RegisterCommand(&OpenCommand{})
}

func (c *OpenCommand) Name() string {
	return "open"
}

func (c *OpenCommand) Description() string {
	return "Opens the first command whose label contains the filter."
}

func (c *OpenCommand) Usage() string {
	return "<filter...> [--mode browser|clipboard|print] [--env online|premise]"
}

func (c *OpenCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "filter", Description: "Text to match against command labels.", Required: true},
	}
}

func (c *OpenCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "mode", ShortName: "m", Description: "How to open the URL: browser, clipboard or print.", HasValue: true},
		envFlag,
	}
}

func (c *OpenCommand) Execute(args cli.CommandArgs) error {
	filter := strings.Join(args.Variables, " ")
	if strings.TrimSpace(filter) == "" {
		return errors.Wrap(ErrMissingArgs, "filter")
	}

	cfg, sess, err := current.session(args)
	if err != nil {
		return err
	}
	mode := cfg.Launch.Mode
	if m, ok := args.Flag("mode", "m"); ok {
		mode = m
	}
	opener, err := launch.NewOpener(mode, current.Out)
	if err != nil {
		return err
	}
	rec := launch.NewRecorder(opener)

	ctrl := current.controller(sess, rec)
	ctrl.Show()
	ctrl.SetFilter(filter)
	target, _ := ctrl.Highlighted()
	if !ctrl.Activate() {
		return errors.Wrapf(ErrNoMatch, "%q", filter)
	}

	last, _ := rec.Last()
	if last.Err != nil {
		return last.Err
	}
	logging.Logger.Debugw("opened", "command", target.Label, "url", last.URL, "mode", mode)
	if mode != launch.ModePrint {
		current.success("%s: %s", target.Label, last.URL)
	}
	return nil
}
