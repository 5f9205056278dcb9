package palette

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(labels ...string) []Record {
	out := make([]Record, 0, len(labels))
	for _, l := range labels {
		out = append(out, Record{Label: l})
	}
	return out
}

func labels(rs []Record) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Label)
	}
	return out
}

func numbered(n int) []Record {
	rs := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rs = append(rs, Record{Label: fmt.Sprintf("item %02d", i)})
	}
	return rs
}

func TestNewSortsCaseInsensitively(t *testing.T) {
	c := New(records("Zebra", "Apple", "apple pie"))
	assert.Equal(t, []string{"Apple", "apple pie", "Zebra"}, labels(c.View()))
	assert.False(t, c.Visible())
	assert.Equal(t, 0, c.HighlightIndex())
}

func TestNewKeepsDuplicateLabels(t *testing.T) {
	first := Record{Label: "Search: Configuration Import", Applicability: []Environment{EnvironmentOnline}}
	second := Record{Label: "Search: Configuration Import"}
	c := New([]Record{first, second, {Label: "Apps"}})

	view := c.View()
	require.Len(t, view, 3)
	assert.Equal(t, "Apps", view[0].Label)
	assert.Equal(t, first.Applicability, view[1].Applicability)
	assert.Empty(t, view[2].Applicability)
}

func TestNewCopiesInput(t *testing.T) {
	in := records("b", "a")
	c := New(in)
	in[0].Label = "changed"
	assert.Equal(t, []string{"a", "b"}, labels(c.Catalog()))
}

func TestSetFilter(t *testing.T) {
	catalog := records("Zebra", "Apple", "apple pie", "Site Settings: RSS", "SPO Admin Center: Apps")

	tests := []struct {
		filter   string
		expected []string
	}{
		{"", []string{"Apple", "apple pie", "Site Settings: RSS", "SPO Admin Center: Apps", "Zebra"}},
		{"app", []string{"Apple", "apple pie", "SPO Admin Center: Apps"}},
		{"APP", []string{"Apple", "apple pie", "SPO Admin Center: Apps"}},
		{": ", []string{"Site Settings: RSS", "SPO Admin Center: Apps"}},
		{"rss", []string{"Site Settings: RSS"}},
		{"nothing here", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			c := New(catalog)
			c.SetFilter(tt.filter)
			assert.Equal(t, tt.expected, labels(c.View()))
			assert.Equal(t, tt.filter, c.Filter())
		})
	}
}

func TestSetFilterMatchesCatalogSubsequence(t *testing.T) {
	c := New(records("Term Store", "term store manager", "Search", "Site columns", "Store", "Site Settings: Storage Metrics"))
	for _, f := range []string{"", "s", "st", "ORE", "term", "x", "Site ", "e s"} {
		c.SetFilter(f)
		var want []string
		for _, r := range c.Catalog() {
			if strings.Contains(strings.ToLower(r.Label), strings.ToLower(f)) {
				want = append(want, r.Label)
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, labels(c.View()), "filter %q", f)
	}
}

func TestSetFilterResetsHighlight(t *testing.T) {
	c := New(records("Apple", "apple pie", "Apricot"))
	c.MoveDown()
	c.MoveDown()
	require.Equal(t, 2, c.HighlightIndex())

	// "apple pie" is still in the view but the highlight goes back to the top anyway.
	c.SetFilter("ap")
	assert.Equal(t, 0, c.HighlightIndex())

	c.MoveDown()
	c.SetFilter("ap")
	assert.Equal(t, 0, c.HighlightIndex())
}

func TestMoveDownWrapsAround(t *testing.T) {
	for _, n := range []int{1, 2, 8, 13} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			c := New(numbered(n))
			c.MoveDown()
			start := c.HighlightIndex()
			for i := 0; i < n; i++ {
				_, ok := c.MoveDown()
				require.True(t, ok)
			}
			assert.Equal(t, start, c.HighlightIndex())
		})
	}
}

func TestMoveDownHints(t *testing.T) {
	c := New(numbered(10))

	hint, ok := c.MoveDown()
	require.True(t, ok)
	assert.Equal(t, ScrollHint{Kind: LinearOffset, Offset: (1 - 5) * ItemHeight}, hint)

	for i := 2; i <= 9; i++ {
		hint, _ = c.MoveDown()
		assert.Equal(t, ScrollHint{Kind: LinearOffset, Offset: (i - 5) * ItemHeight}, hint)
	}
	require.Equal(t, 9, c.HighlightIndex())

	hint, ok = c.MoveDown()
	require.True(t, ok)
	assert.Equal(t, 0, c.HighlightIndex())
	assert.Equal(t, ScrollHint{Kind: ScrollToTop}, hint)
}

func TestMoveUpHints(t *testing.T) {
	c := New(numbered(10))

	hint, ok := c.MoveUp()
	require.True(t, ok)
	assert.Equal(t, 9, c.HighlightIndex())
	assert.Equal(t, ScrollHint{Kind: ScrollToBottom}, hint)

	hint, ok = c.MoveUp()
	require.True(t, ok)
	assert.Equal(t, 8, c.HighlightIndex())
	assert.Equal(t, ScrollHint{Kind: LinearOffset, Offset: 3 * ItemHeight}, hint)
}

func TestSingleEntryWraps(t *testing.T) {
	c := New(records("only"))

	hint, ok := c.MoveDown()
	require.True(t, ok)
	assert.Equal(t, ScrollToTop, hint.Kind)
	assert.Equal(t, 0, c.HighlightIndex())

	hint, ok = c.MoveUp()
	require.True(t, ok)
	assert.Equal(t, ScrollToBottom, hint.Kind)
	assert.Equal(t, 0, c.HighlightIndex())
}

func TestMovesOnEmptyView(t *testing.T) {
	for name, c := range map[string]*Controller{
		"empty catalog": New(nil),
		"no matches":    func() *Controller { c := New(records("a", "b")); c.SetFilter("zzz"); return c }(),
	} {
		t.Run(name, func(t *testing.T) {
			c.Show()
			before := c.Snapshot()

			hint, ok := c.MoveDown()
			assert.False(t, ok)
			assert.Equal(t, ScrollHint{}, hint)

			hint, ok = c.MoveUp()
			assert.False(t, ok)
			assert.Equal(t, ScrollHint{}, hint)

			assert.False(t, c.Activate())
			assert.Equal(t, before, c.Snapshot())
		})
	}
}

func TestActivate(t *testing.T) {
	calls := 0
	c := New([]Record{{Label: "A", Action: func() { calls++ }}})
	c.Show()
	c.SetFilter("a")

	require.True(t, c.Activate())
	assert.Equal(t, 1, calls)

	snap := c.Snapshot()
	assert.False(t, snap.Visible)
	assert.Equal(t, "", snap.Filter)
	assert.Equal(t, 0, snap.HighlightIndex)
}

func TestActivateRunsHighlightedAction(t *testing.T) {
	var ran []string
	rs := []Record{}
	for _, l := range []string{"Term Store", "Search", "Apps"} {
		l := l
		rs = append(rs, Record{Label: l, Action: func() { ran = append(ran, l) }})
	}
	c := New(rs)
	c.Show()
	c.MoveDown()

	require.True(t, c.Activate())
	assert.Equal(t, []string{"Search"}, ran)
}

func TestActivateWhileHidden(t *testing.T) {
	calls := 0
	c := New([]Record{{Label: "A", Action: func() { calls++ }}})

	assert.False(t, c.Activate())
	assert.Equal(t, 0, calls)
}

func TestActivateNilAction(t *testing.T) {
	c := New(records("A"))
	c.Show()
	assert.True(t, c.Activate())
	assert.False(t, c.Visible())
}

func TestShowHide(t *testing.T) {
	c := New(records("Apple", "Banana", "Cherry"))
	c.Show()
	c.SetFilter("an")
	c.MoveDown()

	c.Hide()
	snap := c.Snapshot()
	assert.False(t, snap.Visible)
	assert.Equal(t, "", snap.Filter)
	assert.Equal(t, 0, snap.HighlightIndex)
	assert.Len(t, snap.View, 3)

	c.Show()
	assert.True(t, c.Visible())
}

func TestRecordAppliesTo(t *testing.T) {
	always := Record{Label: "always"}
	online := Record{Label: "online", Applicability: []Environment{EnvironmentOnline}}

	assert.True(t, always.AppliesTo(EnvironmentOnline))
	assert.True(t, always.AppliesTo(EnvironmentOnPremise))
	assert.True(t, online.AppliesTo(EnvironmentOnline))
	assert.False(t, online.AppliesTo(EnvironmentOnPremise))
}
