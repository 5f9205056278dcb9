package shared

// PaletteWidth returns the palette box width for a terminal width: about 70% of
// the terminal, clamped so it stays readable on very narrow or very wide screens.
func PaletteWidth(termWidth int) int {
	const (
		defaultWidth = 72
		minWidth     = 40
		maxWidth     = 100
	)
	if termWidth <= 0 {
		return defaultWidth
	}
	w := (termWidth * 7) / 10
	if w < minWidth {
		w = minWidth
	}
	if w > maxWidth {
		w = maxWidth
	}
	// Border and padding take four columns.
	if w > termWidth-4 && termWidth-4 >= 20 {
		w = termWidth - 4
	}
	return w
}
