package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/sp-command-palette/app"
	sharedScreens "github.com/Guerrilla-Interactive/sp-command-palette/app/screens/shared"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/logging"
)

// ShowPalette opens the palette and focuses the filter box.
func ShowPalette(m app.Model) (app.Model, tea.Cmd) {
	m.Palette.Show()
	m.Viewport.Reset()
	return m, m.Input.Focus()
}

// HidePalette closes the palette. The controller clears its own filter; the
// input box is cleared to match.
func HidePalette(m app.Model) app.Model {
	m.Palette.Hide()
	return resetInput(m)
}

func resetInput(m app.Model) app.Model {
	m.Input.Reset()
	m.Input.Blur()
	m.Viewport.Reset()
	return m
}

// UpdateScreenPalette handles keys while the palette is visible. Navigation and
// activation keys go to the controller; everything else edits the filter.
func UpdateScreenPalette(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Hide):
		return HidePalette(m), nil

	case key.Matches(msg, m.Keys.Up):
		if hint, ok := m.Palette.MoveUp(); ok {
			m.Viewport.Apply(hint, len(m.Palette.View()))
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if hint, ok := m.Palette.MoveDown(); ok {
			m.Viewport.Apply(hint, len(m.Palette.View()))
		}
		return m, nil

	case key.Matches(msg, m.Keys.Activate):
		rec, _ := m.Palette.Highlighted()
		if !m.Palette.Activate() {
			return m, nil
		}
		logging.Logger.Debugw("activated", "command", rec.Label)
		return resetInput(m), nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if v := m.Input.Value(); v != m.Palette.Filter() {
		m.Palette.SetFilter(v)
		m.Viewport.Reset()
	}
	return m, cmd
}

// ViewScreenPalette renders the open palette: filter box, the visible slice of
// matches, and the target of the highlighted entry.
func ViewScreenPalette(m app.Model) string {
	width := sharedScreens.PaletteWidth(m.Width)
	snap := m.Palette.Snapshot()

	var b strings.Builder
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	if len(snap.View) == 0 {
		b.WriteString(app.ChoiceStyle.Render("No results"))
		b.WriteString("\n")
	} else {
		start, end := m.Viewport.Window(len(snap.View))
		for i := start; i < end; i++ {
			label := sharedScreens.Truncate(snap.View[i].Label, width-2)
			if i == snap.HighlightIndex {
				b.WriteString(app.HighlightStyle.Width(width).Render(" " + label))
			} else {
				b.WriteString(app.ChoiceStyle.Render(" " + label))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if rec, ok := m.Palette.Highlighted(); ok && rec.Detail != "" {
		b.WriteString(app.PathStyle.Render(sharedScreens.Truncate(rec.Detail, width)))
		b.WriteString("\n")
	}
	b.WriteString(sharedScreens.Footer(
		fmt.Sprintf("%d of %d", len(snap.View), m.Palette.Len()),
		m.Help.View(app.PaletteKeys(m.Keys)),
	))

	return app.PaletteStyle.Width(width).Render(b.String())
}
