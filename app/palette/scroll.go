package palette

// Viewport applies scroll hints to a fixed-height list, the way a browser clamps
// scrollTop against the scrollable height.
type Viewport struct {
	Rows       int // entries visible at once
	ItemHeight int // scroll units per entry
	Offset     int
}

// MinRows is the smallest viewport that keeps the highlighted entry visible
// under linear offsets, which trail the highlight by scrollLead rows.
const MinRows = scrollLead + 1

// NewViewport returns a viewport showing rows entries of ItemHeight each.
// Zero or negative rows mean ItemsPerScreen; anything below MinRows is raised
// to MinRows.
func NewViewport(rows int) Viewport {
	if rows <= 0 {
		rows = ItemsPerScreen
	}
	if rows < MinRows {
		rows = MinRows
	}
	return Viewport{Rows: rows, ItemHeight: ItemHeight}
}

// MaxOffset is the largest offset for a list of n entries.
func (v Viewport) MaxOffset(n int) int {
	max := (n - v.rows()) * v.itemHeight()
	if max < 0 {
		return 0
	}
	return max
}

// Apply moves the viewport according to hint for a list of n entries.
func (v *Viewport) Apply(hint ScrollHint, n int) {
	switch hint.Kind {
	case ScrollToTop:
		v.Offset = 0
	case ScrollToBottom:
		v.Offset = v.MaxOffset(n)
	default:
		v.Offset = hint.Offset
	}
	v.Clamp(n)
}

// Clamp keeps the offset inside [0, MaxOffset(n)].
func (v *Viewport) Clamp(n int) {
	if v.Offset < 0 {
		v.Offset = 0
	}
	if max := v.MaxOffset(n); v.Offset > max {
		v.Offset = max
	}
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() { v.Offset = 0 }

// Window returns the half-open range of entries visible for a list of n entries.
func (v Viewport) Window(n int) (start, end int) {
	start = v.Offset / v.itemHeight()
	if start > n {
		start = n
	}
	if start < 0 {
		start = 0
	}
	end = start + v.rows()
	if end > n {
		end = n
	}
	return start, end
}

func (v Viewport) rows() int {
	if v.Rows < MinRows {
		return MinRows
	}
	return v.Rows
}

func (v Viewport) itemHeight() int {
	if v.ItemHeight <= 0 {
		return ItemHeight
	}
	return v.ItemHeight
}
