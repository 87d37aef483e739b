package focus

import (
	"sort"
	"time"
)

// State is the process-lifetime focus tracker. It survives across frames
// while entry lists are rebuilt every frame; reconciliation happens in
// EnsureValid. Not safe for concurrent use; the render loop owns it.
type State struct {
	focused    ID
	hasFocused bool

	// Preferred over the id during reconciliation: paths stay stable when
	// ids churn (e.g. a list rebinding its id range).
	focusedPath Path

	// Last descendant path visited under a scroll region, keyed by the
	// region's path. Stale keys simply stop matching after a reshape.
	lastChildByParent map[string]Path

	quitArmed   bool
	quitArmedAt time.Time

	now func() time.Time
}

// NewState creates an empty focus state
func NewState() *State {
	return &State{
		lastChildByParent: make(map[string]Path),
		now:               time.Now,
	}
}

// SetTimeSource replaces the wall clock, for tests
func (s *State) SetTimeSource(now func() time.Time) {
	s.now = now
}

// QuitArmed reports whether a first interrupt is awaiting confirmation
// within the expiry window
func (s *State) QuitArmed() bool {
	return s.quitArmed && s.now().Sub(s.quitArmedAt) <= quitConfirmWindow
}

// Focused returns the currently focused id
func (s *State) Focused() (ID, bool) {
	return s.focused, s.hasFocused
}

// FocusedPath returns the current focus path, nil when unfocused
func (s *State) FocusedPath() Path {
	return s.focusedPath
}

// IsFocused reports whether id currently holds focus
func (s *State) IsFocused(id ID) bool {
	return s.hasFocused && s.focused == id
}

// SetFocused moves focus to id directly. The path is dropped and re-adopted
// from the entry list on the next EnsureValid.
func (s *State) SetFocused(id ID) {
	s.focused = id
	s.hasFocused = true
	s.focusedPath = nil
}

func (s *State) setFocusedEntry(e *Entry) {
	s.focused = e.ID
	s.hasFocused = true
	s.focusedPath = e.Path.Clone()
}

// ClearFocus drops all focus state including scroll-region memory
func (s *State) ClearFocus() {
	s.hasFocused = false
	s.focusedPath = nil
	s.lastChildByParent = make(map[string]Path)
	s.quitArmed = false
}

// EnsureValid reconciles remembered focus against a fresh entry list, once
// per frame before navigation. Path match wins over id match so reordering
// with stable positions keeps the position; otherwise the id re-adopts its
// new path; otherwise focus defaults to the first entry. An empty list
// clears focus.
func (s *State) EnsureValid(entries []Entry) {
	if len(entries) == 0 {
		s.hasFocused = false
		s.focusedPath = nil
		return
	}

	if s.focusedPath != nil {
		for i := range entries {
			if entries[i].Path.Equal(s.focusedPath) {
				s.focused = entries[i].ID
				s.hasFocused = true
				return
			}
		}
	}

	if s.hasFocused {
		for i := range entries {
			if entries[i].ID == s.focused {
				s.setFocusedEntry(&entries[i])
				return
			}
		}
	}

	s.setFocusedEntry(&entries[0])
}

// currentIndex locates the focused entry, path first, then id
func (s *State) currentIndex(entries []Entry) (int, bool) {
	if s.focusedPath != nil {
		for i := range entries {
			if entries[i].Path.Equal(s.focusedPath) {
				return i, true
			}
		}
	}
	if s.hasFocused {
		for i := range entries {
			if entries[i].ID == s.focused {
				return i, true
			}
		}
	}
	return 0, false
}

// FocusedEntry returns the entry currently holding focus
func (s *State) FocusedEntry(entries []Entry) (*Entry, bool) {
	idx, ok := s.currentIndex(entries)
	if !ok {
		return nil, false
	}
	return &entries[idx], true
}

// FocusNext moves to the next entry in tab order, cyclically
func (s *State) FocusNext(entries []Entry) {
	if len(entries) == 0 {
		s.ClearFocus()
		return
	}
	idx, _ := s.currentIndex(entries)
	s.setFocusedEntry(&entries[(idx+1)%len(entries)])
}

// FocusPrev moves to the previous entry in tab order, cyclically
func (s *State) FocusPrev(entries []Entry) {
	if len(entries) == 0 {
		s.ClearFocus()
		return
	}
	idx, ok := s.currentIndex(entries)
	if !ok || idx == 0 {
		idx = len(entries)
	}
	s.setFocusedEntry(&entries[idx-1])
}

// FocusNextSibling moves to the next entry sharing the same parent prefix
// and depth. Returns false when there is at most one such sibling.
func (s *State) FocusNextSibling(entries []Entry) bool {
	return s.focusSibling(entries, true)
}

// FocusPrevSibling is the reverse of FocusNextSibling
func (s *State) FocusPrevSibling(entries []Entry) bool {
	return s.focusSibling(entries, false)
}

func (s *State) focusSibling(entries []Entry, next bool) bool {
	idx, ok := s.currentIndex(entries)
	if !ok {
		return false
	}
	current := &entries[idx]
	depth := len(current.Path)
	var parent Path
	if depth > 0 {
		parent = current.Path[:depth-1]
	}

	var siblings []*Entry
	for i := range entries {
		e := &entries[i]
		if len(e.Path) != depth {
			continue
		}
		if depth > 0 && !e.Path[:depth-1].Equal(parent) {
			continue
		}
		siblings = append(siblings, e)
	}
	if len(siblings) <= 1 {
		return false
	}

	sort.Slice(siblings, func(a, b int) bool {
		return siblings[a].Path.Compare(siblings[b].Path) < 0
	})

	pos := -1
	for i, e := range siblings {
		if e.Path.Equal(current.Path) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	var target *Entry
	if next {
		target = siblings[(pos+1)%len(siblings)]
	} else {
		target = siblings[(pos+len(siblings)-1)%len(siblings)]
	}
	s.setFocusedEntry(target)
	return true
}

// FocusNextPeerBranch exits the current subtree laterally: it walks up one
// path level at a time and, at the first level offering a sibling slot in
// the wanted direction, enters the topologically first entry under it.
func (s *State) FocusNextPeerBranch(entries []Entry) bool {
	return s.focusPeerBranch(entries, true)
}

// FocusPrevPeerBranch is the reverse of FocusNextPeerBranch
func (s *State) FocusPrevPeerBranch(entries []Entry) bool {
	return s.focusPeerBranch(entries, false)
}

func (s *State) focusPeerBranch(entries []Entry, next bool) bool {
	idx, ok := s.currentIndex(entries)
	if !ok {
		return false
	}
	current := &entries[idx]
	path := current.Path

	for level := len(path) - 1; level >= 0; level-- {
		prefix := path[:level]
		currentSlot := path[level]

		// Distinct next-level slots present under this prefix
		var slots []int
		seen := make(map[int]bool)
		for i := range entries {
			e := &entries[i]
			if len(e.Path) <= level || !e.Path[:level].Equal(prefix) {
				continue
			}
			slot := e.Path[level]
			if !seen[slot] {
				seen[slot] = true
				slots = append(slots, slot)
			}
		}
		sort.Ints(slots)

		targetSlot, found := 0, false
		if next {
			for _, slot := range slots {
				if slot > currentSlot {
					targetSlot, found = slot, true
					break
				}
			}
		} else {
			for i := len(slots) - 1; i >= 0; i-- {
				if slots[i] < currentSlot {
					targetSlot, found = slots[i], true
					break
				}
			}
		}
		if !found {
			continue
		}

		if target, ok := firstUnderSlot(entries, prefix, level, targetSlot); ok {
			s.setFocusedEntry(target)
			return true
		}
	}
	return false
}

// firstUnderSlot picks the shallowest, then lexicographically smallest entry
// within the branch prefix+slot
func firstUnderSlot(entries []Entry, prefix Path, level, slot int) (*Entry, bool) {
	var best *Entry
	for i := range entries {
		e := &entries[i]
		if len(e.Path) <= level || !e.Path[:level].Equal(prefix) || e.Path[level] != slot {
			continue
		}
		if best == nil || shallowerFirst(e, best) {
			best = e
		}
	}
	return best, best != nil
}

func shallowerFirst(a, b *Entry) bool {
	if len(a.Path) != len(b.Path) {
		return len(a.Path) < len(b.Path)
	}
	return a.Path.Compare(b.Path) < 0
}

// FocusParent ascends to the nearest strict ancestor entry. When the region
// being left is a scroll region, its last-visited child is remembered so a
// later FocusFirstChild restores it.
func (s *State) FocusParent(entries []Entry) bool {
	if s.focusedPath == nil {
		return false
	}
	path := s.focusedPath.Clone()
	for depth := len(path) - 1; depth >= 1; depth-- {
		ancestor := path[:depth]
		for i := range entries {
			e := &entries[i]
			if !e.Path.Equal(ancestor) {
				continue
			}
			if e.Kind == KindScrollRegion {
				s.lastChildByParent[Path(ancestor).key()] = path
			}
			s.setFocusedEntry(e)
			return true
		}
	}
	return false
}

// FocusFirstChild descends into the focused entry's subtree. A scroll region
// restores its remembered last child when that path still exists; otherwise
// the shallowest, lexicographically first descendant is picked.
func (s *State) FocusFirstChild(entries []Entry) bool {
	idx, ok := s.currentIndex(entries)
	if !ok {
		return false
	}
	current := &entries[idx]

	if current.Kind == KindScrollRegion {
		if saved, ok := s.lastChildByParent[current.Path.key()]; ok {
			for i := range entries {
				if entries[i].Path.Equal(saved) {
					s.setFocusedEntry(&entries[i])
					return true
				}
			}
		}
	}

	var best *Entry
	for i := range entries {
		e := &entries[i]
		if len(e.Path) <= len(current.Path) || !e.Path.HasPrefix(current.Path) {
			continue
		}
		if best == nil || shallowerFirst(e, best) {
			best = e
		}
	}
	if best == nil {
		return false
	}
	s.setFocusedEntry(best)
	return true
}
