// Package palette holds the command palette state machine: the sorted catalog,
// the filter text, the filtered view and the highlighted entry.
//
// Everything here is synchronous and single-owner. The terminal host drives a
// Controller from its key handler and renders from Snapshot.
package palette

import (
	"sort"
	"strings"
)

const (
	// ItemHeight is the height of one rendered entry in scroll units.
	ItemHeight = 30
	// ItemsPerScreen is how many entries fit in the list without scrolling.
	ItemsPerScreen = 8
	// scrollLead keeps the highlighted entry this many rows below the top edge.
	scrollLead = 5
)

// Environment describes the deployment a command can run against.
type Environment int

const (
	EnvironmentOnPremise Environment = iota
	EnvironmentOnline
)

func (e Environment) String() string {
	switch e {
	case EnvironmentOnline:
		return "online"
	case EnvironmentOnPremise:
		return "premise"
	default:
		return "unknown"
	}
}

// Action is the side effect bound to a Record. It is invoked at most once per activation.
type Action func()

// Record is one palette entry. An empty Applicability means the entry applies everywhere.
// Detail is optional secondary text for the renderer, such as the target URL.
type Record struct {
	Label         string
	Detail        string
	Applicability []Environment
	Action        Action
}

// AppliesTo reports whether r should be offered in env.
func (r Record) AppliesTo(env Environment) bool {
	if len(r.Applicability) == 0 {
		return true
	}
	for _, e := range r.Applicability {
		if e == env {
			return true
		}
	}
	return false
}

// ScrollKind tells the presentation layer how to move after a highlight change.
type ScrollKind int

const (
	LinearOffset ScrollKind = iota
	ScrollToTop
	ScrollToBottom
)

func (k ScrollKind) String() string {
	switch k {
	case ScrollToTop:
		return "top"
	case ScrollToBottom:
		return "bottom"
	default:
		return "offset"
	}
}

// ScrollHint is emitted by MoveUp and MoveDown. Offset is only meaningful for
// LinearOffset and may be negative; clamping is left to the Viewport.
type ScrollHint struct {
	Kind   ScrollKind
	Offset int
}

// Snapshot is the read-only state handed to the renderer.
type Snapshot struct {
	View           []Record
	HighlightIndex int
	Filter         string
	Visible        bool
}

// Controller owns the palette state. It is not safe for concurrent use.
type Controller struct {
	catalog   []Record
	filter    string
	view      []Record
	highlight int
	visible   bool
}

// New takes a snapshot of records, sorts it by label ignoring case and returns a
// hidden controller. Duplicate labels are kept in the order they were given.
func New(records []Record) *Controller {
	catalog := make([]Record, len(records))
	copy(catalog, records)
	sort.SliceStable(catalog, func(i, j int) bool {
		return strings.ToLower(catalog[i].Label) < strings.ToLower(catalog[j].Label)
	})

	c := &Controller{catalog: catalog}
	c.recompute()
	return c
}

// Len returns the size of the whole catalog.
func (c *Controller) Len() int { return len(c.catalog) }

// Catalog returns a copy of the sorted catalog.
func (c *Controller) Catalog() []Record {
	out := make([]Record, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// View returns the records matching the current filter, in catalog order.
func (c *Controller) View() []Record { return c.view }

// Filter returns the current filter text.
func (c *Controller) Filter() string { return c.filter }

// HighlightIndex returns the highlighted position in View. It is 0 when View is empty.
func (c *Controller) HighlightIndex() int { return c.highlight }

// Visible reports whether the palette is shown.
func (c *Controller) Visible() bool { return c.visible }

// Highlighted returns the highlighted record, or false if the view is empty.
func (c *Controller) Highlighted() (Record, bool) {
	if len(c.view) == 0 {
		return Record{}, false
	}
	return c.view[c.highlight], true
}

// Snapshot returns the state the renderer needs.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		View:           c.view,
		HighlightIndex: c.highlight,
		Filter:         c.filter,
		Visible:        c.visible,
	}
}

// SetFilter replaces the filter text and always moves the highlight back to the
// first entry, even when the previously highlighted record still matches.
func (c *Controller) SetFilter(text string) {
	c.filter = text
	c.recompute()
	c.highlight = 0
}

// MoveDown highlights the next entry, wrapping from the last to the first.
// It returns false and no hint when the view is empty.
func (c *Controller) MoveDown() (ScrollHint, bool) {
	n := len(c.view)
	if n == 0 {
		return ScrollHint{}, false
	}
	if c.highlight == n-1 {
		c.highlight = 0
		return ScrollHint{Kind: ScrollToTop}, true
	}
	c.highlight++
	return linearHint(c.highlight), true
}

// MoveUp highlights the previous entry, wrapping from the first to the last.
// It returns false and no hint when the view is empty.
func (c *Controller) MoveUp() (ScrollHint, bool) {
	n := len(c.view)
	if n == 0 {
		return ScrollHint{}, false
	}
	if c.highlight == 0 {
		c.highlight = n - 1
		return ScrollHint{Kind: ScrollToBottom}, true
	}
	c.highlight--
	return linearHint(c.highlight), true
}

// Activate runs the highlighted record's action and hides the palette.
// Nothing happens when the palette is hidden or the view is empty.
func (c *Controller) Activate() bool {
	if !c.visible {
		return false
	}
	rec, ok := c.Highlighted()
	if !ok {
		return false
	}
	if rec.Action != nil {
		rec.Action()
	}
	c.Hide()
	return true
}

// Show makes the palette visible. The filter and highlight are left as they are;
// Hide is what resets them.
func (c *Controller) Show() {
	c.visible = true
}

// Hide hides the palette and clears the filter and highlight.
func (c *Controller) Hide() {
	c.visible = false
	c.SetFilter("")
}

func (c *Controller) recompute() {
	if c.filter == "" {
		c.view = c.catalog
		return
	}
	needle := strings.ToLower(c.filter)
	view := make([]Record, 0, len(c.catalog))
	for _, rec := range c.catalog {
		if strings.Contains(strings.ToLower(rec.Label), needle) {
			view = append(view, rec)
		}
	}
	c.view = view
}

func linearHint(index int) ScrollHint {
	return ScrollHint{Kind: LinearOffset, Offset: (index - scrollLead) * ItemHeight}
}
