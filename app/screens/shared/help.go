package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/sp-command-palette/app"
)

// Footer joins status fragments with a consistent separator and applies the
// global help style.
func Footer(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return app.HelpStyle.Render(strings.Join(kept, "  •  "))
}
