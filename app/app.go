package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/catalog"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
)

// Model is the state shared by the home screen and the palette overlay.
type Model struct {
	Palette  *palette.Controller
	Viewport palette.Viewport
	Input    textinput.Model
	Keys     KeyMap
	Help     help.Model

	// Launches is the opener every catalog action goes through; it remembers the
	// last result for the status line.
	Launches *launch.Recorder

	Env      palette.Environment
	SiteType catalog.SiteType
	Site     catalog.Site
	Version  string

	Width  int
	Height int
}

// Options configure NewModel.
type Options struct {
	Records      []palette.Record
	Launches     *launch.Recorder
	Env          palette.Environment
	SiteType     catalog.SiteType
	Site         catalog.Site
	VisibleItems int
	Version      string
}

// NewModel builds the model with a hidden palette over opts.Records.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command"
	ti.Prompt = "> "
	ti.CharLimit = 256

	return Model{
		Palette:  palette.New(opts.Records),
		Viewport: palette.NewViewport(opts.VisibleItems),
		Input:    ti,
		Keys:     DefaultKeyMap(),
		Help:     help.New(),
		Launches: opts.Launches,
		Env:      opts.Env,
		SiteType: opts.SiteType,
		Site:     opts.Site,
		Version:  opts.Version,
	}
}

// Styles used across screens.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0072C6")).Padding(0, 1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0072C6"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2).Margin(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	PaletteStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#41454E")).Padding(0, 1)
)
