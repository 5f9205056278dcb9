package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/sp-command-palette/app"
	sharedScreens "github.com/Guerrilla-Interactive/sp-command-palette/app/screens/shared"
)

// UpdateScreenHome handles keys while the palette is hidden. Only the palette
// hotkey and quit are live here.
func UpdateScreenHome(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Show):
		return ShowPalette(m)
	}
	return m, nil
}

// ViewScreenHome renders the site summary and the result of the last launch.
func ViewScreenHome(m app.Model) string {
	var b strings.Builder

	b.WriteString(app.TitleStyle.Render("SharePoint command palette"))
	if m.Version != "" {
		b.WriteString(" " + app.PathStyle.Render(m.Version))
	}
	b.WriteString("\n\n")

	site := "(no site configured: spcp config set site.origin https://contoso.sharepoint.com)"
	if m.Site.Origin != "" {
		site = m.Site.PageURL("/")
	}
	b.WriteString(app.SubtitleStyle.Render("Site: ") + site + "\n")
	b.WriteString(app.SubtitleStyle.Render("Environment: ") + fmt.Sprintf("%s, %s", m.Env, m.SiteType) + "\n")
	b.WriteString(app.SubtitleStyle.Render("Commands: ") + fmt.Sprint(m.Palette.Len()) + "\n\n")

	b.WriteString(LaunchStatus(m) + "\n\n")
	b.WriteString(sharedScreens.Footer(m.Help.View(app.HomeKeys(m.Keys))))
	return b.String()
}

// LaunchStatus describes the last activation, if any.
func LaunchStatus(m app.Model) string {
	if m.Launches == nil {
		return ""
	}
	last, ok := m.Launches.Last()
	if !ok {
		return app.PathStyle.Render("Nothing opened yet.")
	}
	if last.Err != nil {
		return app.ErrorStyle.Render(fmt.Sprintf("Could not open %s: %v", last.URL, last.Err))
	}
	return app.PathStyle.Render("Opened " + last.URL)
}
