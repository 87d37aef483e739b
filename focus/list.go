package focus

import (
	"github.com/glintui/glint/input"
)

// ListState tracks item-index selection and row-based scroll for a list
// rendered inside a scroll region. Item heights are in rows; the state keeps
// the focused item visible within the viewport.
type ListState struct {
	itemHeights   []int
	viewportLines int
	gapLines      int
	focusedIndex  int
	scrollOffset  int
}

// NewListState creates list state from per-item row heights
func NewListState(itemHeights []int, viewportLines, gapLines int) *ListState {
	if viewportLines < 1 {
		viewportLines = 1
	}
	return &ListState{
		itemHeights:   itemHeights,
		viewportLines: viewportLines,
		gapLines:      gapLines,
	}
}

func (l *ListState) FocusedIndex() int  { return l.focusedIndex }
func (l *ListState) ScrollOffset() int  { return l.scrollOffset }
func (l *ListState) ViewportLines() int { return l.viewportLines }

func (l *ListState) ItemCount() int {
	return len(l.itemHeights)
}

// SetViewportLines updates the viewport height and re-clamps scroll
func (l *ListState) SetViewportLines(lines int) {
	if lines < 1 {
		lines = 1
	}
	l.viewportLines = lines
	l.EnsureFocusedVisible()
}

// SetItemHeights replaces item heights, clamping selection and scroll
func (l *ListState) SetItemHeights(itemHeights []int) {
	l.itemHeights = itemHeights
	if len(itemHeights) == 0 {
		l.focusedIndex = 0
		l.scrollOffset = 0
		return
	}
	if l.focusedIndex > len(itemHeights)-1 {
		l.focusedIndex = len(itemHeights) - 1
	}
	l.EnsureFocusedVisible()
}

// ContentLines returns total content height including gaps
func (l *ListState) ContentLines() int {
	lines := 0
	for i, h := range l.itemHeights {
		lines += h
		if i+1 < len(l.itemHeights) {
			lines += l.gapLines
		}
	}
	return lines
}

// MaxScrollOffset returns the largest useful scroll offset
func (l *ListState) MaxScrollOffset() int {
	m := l.ContentLines() - l.viewportLines
	if m < 0 {
		return 0
	}
	return m
}

// ItemHeight returns the height of one item, at least 1
func (l *ListState) ItemHeight(index int) int {
	if index < 0 || index >= len(l.itemHeights) {
		return 1
	}
	if l.itemHeights[index] < 1 {
		return 1
	}
	return l.itemHeights[index]
}

// ItemTopLine returns the content row where an item starts
func (l *ListState) ItemTopLine(index int) int {
	top := 0
	if index > len(l.itemHeights) {
		index = len(l.itemHeights)
	}
	for i := 0; i < index; i++ {
		top += l.ItemHeight(i) + l.gapLines
	}
	return top
}

// SetFocusedIndex selects an item and scrolls it into view
func (l *ListState) SetFocusedIndex(index int) {
	if max := l.ItemCount() - 1; index > max {
		index = max
	}
	if index < 0 {
		index = 0
	}
	l.focusedIndex = index
	l.EnsureFocusedVisible()
}

// MoveFocusBy shifts the selection by delta, clamped
func (l *ListState) MoveFocusBy(delta int) {
	l.SetFocusedIndex(l.focusedIndex + delta)
}

// EnsureFocusedVisible adjusts scroll so the focused item is in the viewport
func (l *ListState) EnsureFocusedVisible() {
	top := l.ItemTopLine(l.focusedIndex)
	height := l.ItemHeight(l.focusedIndex)
	bottom := top + height

	if top < l.scrollOffset {
		l.scrollOffset = top
	} else if bottom > l.scrollOffset+l.viewportLines {
		if height >= l.viewportLines {
			l.scrollOffset = top
		} else {
			l.scrollOffset = bottom - l.viewportLines
		}
	}

	if max := l.MaxScrollOffset(); l.scrollOffset > max {
		l.scrollOffset = max
	}
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// ListBinding maps a contiguous focus-id range onto list items, letting a
// host build arrow-key item selection on top of the generic focus state.
type ListBinding struct {
	firstID ID
}

// NewListBinding binds item index 0 to firstID, index 1 to firstID+1, and
// so on. The application must keep the range unique within the frame.
func NewListBinding(firstID ID) ListBinding {
	return ListBinding{firstID: firstID}
}

// FocusID returns the focus id of an item index
func (b ListBinding) FocusID(index int) ID {
	return b.firstID + ID(index)
}

// FocusedIndex resolves the focused id back to an item index
func (b ListBinding) FocusedIndex(s *State, itemCount int) (int, bool) {
	id, ok := s.Focused()
	if !ok {
		return 0, false
	}
	if id < b.firstID || id >= b.firstID+ID(itemCount) {
		return 0, false
	}
	return int(id - b.firstID), true
}

// SyncListFromFocus pulls the focused id into the list selection
func (b ListBinding) SyncListFromFocus(s *State, list *ListState) {
	if index, ok := b.FocusedIndex(s, list.ItemCount()); ok {
		list.SetFocusedIndex(index)
	}
}

// HandleInput applies selection movement for arrow, paging, home/end and
// scroll events while one of the bound items holds focus, then pushes the
// new selection back into the focus state. Returns false when the event is
// not a selection move or the binding is not focused.
func (b ListBinding) HandleInput(s *State, list *ListState, ev input.Event) bool {
	index, ok := b.FocusedIndex(s, list.ItemCount())
	if !ok {
		return false
	}
	list.SetFocusedIndex(index)

	handled := false
	switch ev.Kind {
	case input.EventKey:
		switch ev.Key {
		case input.KeyUp:
			list.MoveFocusBy(-1)
			handled = true
		case input.KeyDown:
			list.MoveFocusBy(1)
			handled = true
		case input.KeyPageUp:
			list.MoveFocusBy(-list.ViewportLines())
			handled = true
		case input.KeyPageDown:
			list.MoveFocusBy(list.ViewportLines())
			handled = true
		case input.KeyHome:
			list.SetFocusedIndex(0)
			handled = true
		case input.KeyEnd:
			list.SetFocusedIndex(list.ItemCount() - 1)
			handled = true
		case input.KeyTab, input.KeyShiftTab:
			list.EnsureFocusedVisible()
			handled = true
		}
	case input.EventScroll:
		if ev.Lines != 0 {
			list.MoveFocusBy(ev.Lines)
			handled = true
		}
	}

	if handled {
		s.SetFocused(b.FocusID(list.FocusedIndex()))
	}
	return handled
}
