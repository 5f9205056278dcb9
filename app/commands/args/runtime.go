package args

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/Guerrilla-Interactive/sp-command-palette/app"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/config"
)

// ErrNoMatch is returned by open when the filter matches no command.
var ErrNoMatch = errors.New("no command matches")

// ErrMissingArgs is returned when a command is run without its required arguments.
var ErrMissingArgs = errors.New("missing required arguments")

// Runtime is what commands read settings from and write output to.
type Runtime struct {
	ConfigPath string
	Out        io.Writer
}

var current = Runtime{Out: os.Stdout}

// SetRuntime replaces the runtime used by every command.
func SetRuntime(r Runtime) {
	if r.Out == nil {
		r.Out = os.Stdout
	}
	current = r
}

// CurrentRuntime returns the runtime commands run against.
func CurrentRuntime() Runtime {
	return current
}

// configPath is ConfigPath, or the default location when unset.
func (r Runtime) configPath() (string, error) {
	if r.ConfigPath != "" {
		return r.ConfigPath, nil
	}
	return config.Path()
}

func (r Runtime) load() (config.Config, error) {
	path, err := r.configPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadFrom(path)
}

// session loads settings and applies the --env override.
func (r Runtime) session(args cli.CommandArgs) (config.Config, app.Session, error) {
	cfg, err := r.load()
	if err != nil {
		return config.Config{}, app.Session{}, err
	}
	sess := app.NewSession(cfg)
	if name, ok := args.Flag("env", "e"); ok {
		var known bool
		if sess, known = sess.WithEnv(name); !known {
			return config.Config{}, app.Session{}, errors.Newf("unknown version type %q (want online or premise)", name)
		}
	}
	return cfg, sess, nil
}

// controller builds a palette over the session's catalog.
func (r Runtime) controller(sess app.Session, opener launch.Opener) *palette.Controller {
	return palette.New(sess.Records(opener))
}

func (r Runtime) table(data pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithWriter(r.Out).WithData(data).Render()
}

func (r Runtime) success(format string, a ...any) {
	pterm.Success.WithWriter(r.Out).Printfln(format, a...)
}

func (r Runtime) info(format string, a ...any) {
	pterm.Info.WithWriter(r.Out).Printfln(format, a...)
}

var envFlag = FlagDef{Name: "env", ShortName: "e", Description: "Use this version type (online or premise) instead of the detected one.", HasValue: true}
