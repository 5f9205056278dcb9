package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/Guerrilla-Interactive/sp-command-palette/app"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/cli"
	commands "github.com/Guerrilla-Interactive/sp-command-palette/app/commands/args"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/screens"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/config"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/logging"
)

// Version is set via linker flags during build.
var Version = "v0.1.0"

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M app.Model
}

func (pm ProgramModel) Init() tea.Cmd {
	return nil
}

// Update routes keys to the palette while it is visible and to the home screen
// otherwise.
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.Width = typedMsg.Width
		pm.M.Height = typedMsg.Height
		return pm, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if pm.M.Palette.Visible() {
			pm.M, cmd = screens.UpdateScreenPalette(pm.M, typedMsg)
		} else {
			pm.M, cmd = screens.UpdateScreenHome(pm.M, typedMsg)
		}
		return pm, cmd
	}

	// Cursor blink and similar messages belong to the filter box.
	if pm.M.Palette.Visible() {
		var cmd tea.Cmd
		pm.M.Input, cmd = pm.M.Input.Update(msg)
		return pm, cmd
	}
	return pm, nil
}

func (pm ProgramModel) View() string {
	if pm.M.Palette.Visible() {
		return app.DocStyle.Render(screens.ViewScreenPalette(pm.M))
	}
	return app.DocStyle.Render(screens.ViewScreenHome(pm.M))
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		logging.Logger.Errorw("exiting", "error", err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func run(rawArgs []string) error {
	parsedArgs := cli.ParseCommandLineArgs(rawArgs, commands.Registry{})
	if len(parsedArgs.Errors) > 0 {
		for _, err := range parsedArgs.Errors {
			pterm.Error.Println(err)
		}
		return errors.New("invalid arguments; run `spcp --help` for usage")
	}

	if parsedArgs.VersionRequested {
		fmt.Printf("spcp %s\n", Version)
		return nil
	}

	configPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	debug := cfg.Log.Debug || parsedArgs.Bool("debug", "")
	if err := logging.Initialize(cfg.Log.File, debug); err != nil {
		pterm.Warning.Printfln("logging disabled: %v", err)
	}
	logging.Logger.Debugw("starting", "version", Version, "args", rawArgs, "config", configPath)

	if parsedArgs.CommandName != "" {
		if parsedArgs.HelpRequested {
			displayCommandHelp(parsedArgs.CommandName)
			return nil
		}
		commands.SetRuntime(commands.Runtime{ConfigPath: configPath, Out: os.Stdout})
		return executeDirectCommand(parsedArgs)
	}

	if parsedArgs.HelpRequested {
		displayGeneralHelp()
		return nil
	}
	if len(parsedArgs.Variables) > 0 {
		return errors.Newf("unknown command %q; run `spcp --help` for usage", parsedArgs.Variables[0])
	}

	sess, err := interactiveSession(cfg, parsedArgs)
	if err != nil {
		return err
	}
	return runInteractive(cfg, sess)
}

// interactiveSession resolves the session for the TUI. Only --env and --debug
// apply without a command.
func interactiveSession(cfg config.Config, args cli.CommandArgs) (app.Session, error) {
	for name := range args.Flags {
		if name != "env" && name != "e" {
			return app.Session{}, errors.Newf("flag --%s needs a command; run `spcp --help` for usage", name)
		}
	}
	for name := range args.BoolFlags {
		if name != "debug" {
			return app.Session{}, errors.Newf("flag --%s needs a command; run `spcp --help` for usage", name)
		}
	}

	sess := app.NewSession(cfg)
	if name, ok := args.Flag("env", "e"); ok {
		var known bool
		if sess, known = sess.WithEnv(name); !known {
			return app.Session{}, errors.Newf("unknown version type %q (want online or premise)", name)
		}
	}
	return sess, nil
}

// runInteractive starts the terminal host with the palette hidden.
func runInteractive(cfg config.Config, sess app.Session) error {
	// Print mode would write into the alternate screen, so the host copies instead.
	mode := cfg.Launch.Mode
	if mode == launch.ModePrint {
		mode = launch.ModeClipboard
	}
	opener, err := launch.NewOpener(mode, io.Discard)
	if err != nil {
		return err
	}
	recorder := launch.NewRecorder(opener)

	m := app.NewModel(app.Options{
		Records:      sess.Records(recorder),
		Launches:     recorder,
		Env:          sess.Env,
		SiteType:     sess.SiteType,
		Site:         sess.Site,
		VisibleItems: cfg.UI.VisibleItems,
		Version:      Version,
	})
	// Default dimensions so the first render has a layout.
	m.Width, m.Height = 80, 24

	logging.Logger.Infow("interactive mode",
		"env", sess.Env.String(),
		"siteType", string(sess.SiteType),
		"commands", m.Palette.Len(),
	)

	p := tea.NewProgram(ProgramModel{M: m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running program")
	}
	return nil
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp() {
	fmt.Println("SharePoint command palette")
	fmt.Println("Usage: spcp [command] [variables...] [--flags...]")
	fmt.Println("Run without arguments to open the interactive palette (ctrl+p or : to show it).")

	allCmds := commands.GetAllCommands()
	fmt.Println("\nAvailable Commands:")
	for _, cmd := range allCmds {
		fmt.Printf("  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println("\nRun 'spcp [command] --help' for more information on a specific command.")
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug")
	fmt.Println("Interactive Flags: --env, -e <online|premise>")
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		pterm.Error.Printfln("Unknown command '%s'", commandName)
		displayGeneralHelp()
		return
	}

	fmt.Printf("Usage: spcp %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Printf("  %s\n", cmd.Description())

	args := cmd.ExpectedArgs()
	if len(args) > 0 {
		fmt.Println("\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	flags := cmd.ExpectedFlags()
	if len(flags) > 0 {
		fmt.Println("\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			fmt.Printf("  %-22s %s\n", flagUsage, flag.Description)
		}
	}
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug")
}

// executeDirectCommand runs a registered command.
func executeDirectCommand(args cli.CommandArgs) error {
	cmd, found := commands.GetCommand(args.CommandName)
	if !found {
		return errors.Newf("unknown command %q", args.CommandName)
	}
	logging.Logger.Debugw("executing command",
		"command", args.CommandName,
		"variables", args.Variables,
		"flags", args.Flags,
	)
	if err := cmd.Execute(args); err != nil {
		return errors.Wrapf(err, "%s", args.CommandName)
	}
	return nil
}
