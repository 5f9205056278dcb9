package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportApply(t *testing.T) {
	tests := []struct {
		name       string
		hint       ScrollHint
		n          int
		wantOffset int
		wantStart  int
		wantEnd    int
	}{
		{"negative offset clamps to top", ScrollHint{Kind: LinearOffset, Offset: -4 * ItemHeight}, 20, 0, 0, 8},
		{"linear offset", ScrollHint{Kind: LinearOffset, Offset: 3 * ItemHeight}, 20, 3 * ItemHeight, 3, 11},
		{"linear offset past the end", ScrollHint{Kind: LinearOffset, Offset: 30 * ItemHeight}, 20, 12 * ItemHeight, 12, 20},
		{"top", ScrollHint{Kind: ScrollToTop}, 20, 0, 0, 8},
		{"bottom", ScrollHint{Kind: ScrollToBottom}, 20, 12 * ItemHeight, 12, 20},
		{"bottom of a short list", ScrollHint{Kind: ScrollToBottom}, 5, 0, 0, 5},
		{"empty list", ScrollHint{Kind: ScrollToBottom}, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(ItemsPerScreen)
			v.Offset = 7 * ItemHeight
			v.Apply(tt.hint, tt.n)
			assert.Equal(t, tt.wantOffset, v.Offset)
			start, end := v.Window(tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestViewportFollowsController(t *testing.T) {
	for _, rows := range []int{3, 5, MinRows, ItemsPerScreen, 12} {
		t.Run(fmt.Sprintf("rows=%d", rows), func(t *testing.T) {
			c := New(numbered(20))
			v := NewViewport(rows)

			inWindow := func() bool {
				start, end := v.Window(len(c.View()))
				return c.HighlightIndex() >= start && c.HighlightIndex() < end
			}

			for i := 0; i < 45; i++ {
				hint, _ := c.MoveDown()
				v.Apply(hint, len(c.View()))
				assert.True(t, inWindow(), "down step %d", i)
			}
			for i := 0; i < 45; i++ {
				hint, _ := c.MoveUp()
				v.Apply(hint, len(c.View()))
				assert.True(t, inWindow(), "up step %d", i)
			}
		})
	}
}

func TestViewportMinimumRows(t *testing.T) {
	assert.Equal(t, MinRows, NewViewport(3).Rows)
	assert.Equal(t, MinRows, NewViewport(1).Rows)
	assert.Equal(t, 7, NewViewport(7).Rows)

	// A hand-built viewport below the minimum still windows MinRows entries.
	v := Viewport{Rows: 2, ItemHeight: ItemHeight}
	start, end := v.Window(20)
	assert.Equal(t, 0, start)
	assert.Equal(t, MinRows, end)
}

func TestViewportClampAfterShrink(t *testing.T) {
	v := NewViewport(6)
	v.Apply(ScrollHint{Kind: ScrollToBottom}, 10)
	assert.Equal(t, 4*ItemHeight, v.Offset)

	v.Clamp(7)
	assert.Equal(t, ItemHeight, v.Offset)

	v.Reset()
	assert.Equal(t, 0, v.Offset)
}

func TestNewViewportDefaults(t *testing.T) {
	v := NewViewport(0)
	assert.Equal(t, ItemsPerScreen, v.Rows)
	assert.Equal(t, ItemHeight, v.ItemHeight)
}
