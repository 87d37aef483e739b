package focus

import (
	"testing"
)

func entry(id ID, kind Kind, path ...int) Entry {
	return Entry{ID: id, Path: Path(path), Kind: kind}
}

// TestEnsureValidPrefersPathOverID verifies reconciliation keeps the
// position when ids churn at a stable path
func TestEnsureValidPrefersPathOverID(t *testing.T) {
	s := NewState()
	e1 := []Entry{entry(1, KindGeneric, 0), entry(2, KindGeneric, 1)}
	s.SetFocused(2)
	s.EnsureValid(e1)

	// Same path, different id
	e2 := []Entry{entry(1, KindGeneric, 0), entry(9, KindGeneric, 1)}
	s.EnsureValid(e2)

	id, ok := s.Focused()
	if !ok || id != 9 {
		t.Errorf("Expected focus to follow path to id 9, got %d (%v)", id, ok)
	}
}

// TestEnsureValidReadoptsByID verifies a moved id refreshes its path
func TestEnsureValidReadoptsByID(t *testing.T) {
	s := NewState()
	e1 := []Entry{entry(1, KindGeneric, 0), entry(2, KindGeneric, 1)}
	s.SetFocused(2)
	s.EnsureValid(e1)

	e2 := []Entry{entry(2, KindGeneric, 0), entry(3, KindGeneric, 1)}
	s.EnsureValid(e2)

	id, _ := s.Focused()
	if id != 2 {
		t.Errorf("Expected id 2 to stay focused, got %d", id)
	}
	if !s.FocusedPath().Equal(Path{0}) {
		t.Errorf("Expected refreshed path [0], got %v", s.FocusedPath())
	}
}

// TestEnsureValidDefaultsAndClears verifies fallback to the first entry and
// clearing on an empty list
func TestEnsureValidDefaultsAndClears(t *testing.T) {
	s := NewState()
	s.SetFocused(42)
	entries := []Entry{entry(1, KindGeneric, 0), entry(2, KindGeneric, 1)}
	s.EnsureValid(entries)

	id, ok := s.Focused()
	if !ok || id != 1 {
		t.Errorf("Expected fallback to first entry, got %d (%v)", id, ok)
	}

	s.EnsureValid(nil)
	if _, ok := s.Focused(); ok {
		t.Error("Expected focus cleared on empty list")
	}
}

// TestFocusNextCyclic verifies advancing len(entries) times returns to the
// starting entry
func TestFocusNextCyclic(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(1, KindGeneric, 0),
		entry(2, KindGeneric, 1),
		entry(3, KindGeneric, 2),
	}
	s.EnsureValid(entries)
	start, _ := s.Focused()

	for i := 0; i < len(entries); i++ {
		s.FocusNext(entries)
	}
	if id, _ := s.Focused(); id != start {
		t.Errorf("Expected cycle back to %d, got %d", start, id)
	}

	s.FocusPrev(entries)
	if id, _ := s.Focused(); id != 3 {
		t.Errorf("Expected previous to wrap to 3, got %d", id)
	}
}

// TestSiblingMove verifies cycling among same-parent entries at equal
// depth, and failure with no siblings
func TestSiblingMove(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(1, KindGeneric, 0, 0),
		entry(2, KindGeneric, 0, 1),
		entry(3, KindGeneric, 0, 2),
		entry(4, KindGeneric, 1, 0), // different parent
	}
	s.SetFocused(2)
	s.EnsureValid(entries)

	if !s.FocusNextSibling(entries) {
		t.Fatal("Expected sibling move to succeed")
	}
	if id, _ := s.Focused(); id != 3 {
		t.Errorf("Expected focus on 3, got %d", id)
	}

	// Cycles past the end, skipping the foreign branch
	if !s.FocusNextSibling(entries) {
		t.Fatal("Expected cyclic sibling move")
	}
	if id, _ := s.Focused(); id != 1 {
		t.Errorf("Expected wrap to 1, got %d", id)
	}

	s.SetFocused(4)
	s.EnsureValid(entries)
	if s.FocusNextSibling(entries) {
		t.Error("Expected move to fail with no same-parent sibling")
	}
}

// TestPeerBranchMove verifies the upward walk into the next branch's
// shallowest entry
func TestPeerBranchMove(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(1, KindGeneric, 0),
		entry(2, KindGeneric, 0, 0),
		entry(3, KindGeneric, 1),
		entry(4, KindGeneric, 1, 0),
		entry(5, KindGeneric, 1, 1),
	}
	s.SetFocused(2)
	s.EnsureValid(entries)

	if s.FocusNextSibling(entries) {
		t.Fatal("Expected no sibling at depth 2 under [0]")
	}
	if !s.FocusNextPeerBranch(entries) {
		t.Fatal("Expected peer-branch move to succeed")
	}
	if id, _ := s.Focused(); id != 3 {
		t.Errorf("Expected shallowest entry of branch [1], got %d", id)
	}

	// And back
	if !s.FocusPrevPeerBranch(entries) {
		t.Fatal("Expected reverse peer-branch move")
	}
	if id, _ := s.Focused(); id != 1 {
		t.Errorf("Expected shallowest entry of branch [0], got %d", id)
	}
}

// TestFocusParentAscends verifies Esc-style ascent to the nearest strict
// ancestor
func TestFocusParentAscends(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(1, KindGeneric, 0),
		entry(2, KindGeneric, 0, 0),
		entry(3, KindGeneric, 0, 0, 1),
	}
	s.SetFocused(3)
	s.EnsureValid(entries)

	if !s.FocusParent(entries) {
		t.Fatal("Expected ascent to succeed")
	}
	if id, _ := s.Focused(); id != 2 {
		t.Errorf("Expected nearest ancestor 2, got %d", id)
	}

	s.FocusParent(entries)
	if id, _ := s.Focused(); id != 1 {
		t.Errorf("Expected ancestor 1, got %d", id)
	}

	if s.FocusParent(entries) {
		t.Error("Expected ascent from root entry to fail")
	}
}

// TestScrollRegionRestoresLastChild verifies leaving a scroll region
// remembers the child and a later descent restores it
func TestScrollRegionRestoresLastChild(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(10, KindScrollRegion, 0),
		entry(11, KindGeneric, 0, 0),
		entry(12, KindGeneric, 0, 1),
	}
	s.SetFocused(12)
	s.EnsureValid(entries)

	if !s.FocusParent(entries) {
		t.Fatal("Expected ascent to scroll region")
	}
	if !s.FocusFirstChild(entries) {
		t.Fatal("Expected descent to succeed")
	}
	if id, _ := s.Focused(); id != 12 {
		t.Errorf("Expected remembered child 12, got %d", id)
	}
}

// TestScrollRegionStaleMemoryFallsBack verifies a remembered path that no
// longer exists does not cause a wrong restore
func TestScrollRegionStaleMemoryFallsBack(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(10, KindScrollRegion, 0),
		entry(11, KindGeneric, 0, 0),
		entry(12, KindGeneric, 0, 1),
	}
	s.SetFocused(12)
	s.EnsureValid(entries)
	s.FocusParent(entries)

	// Tree reshaped: the remembered [0 1] is gone
	reshaped := []Entry{
		entry(10, KindScrollRegion, 0),
		entry(11, KindGeneric, 0, 0),
	}
	s.EnsureValid(reshaped)
	if !s.FocusFirstChild(reshaped) {
		t.Fatal("Expected descent to succeed")
	}
	if id, _ := s.Focused(); id != 11 {
		t.Errorf("Expected fallback to shallowest child 11, got %d", id)
	}
}

// TestFocusFirstChildPicksShallowest verifies descent prefers the
// shallowest, then lexicographically first descendant
func TestFocusFirstChildPicksShallowest(t *testing.T) {
	s := NewState()
	entries := []Entry{
		entry(1, KindGeneric, 0),
		entry(2, KindGeneric, 0, 1, 0),
		entry(3, KindGeneric, 0, 2),
	}
	s.SetFocused(1)
	s.EnsureValid(entries)

	if !s.FocusFirstChild(entries) {
		t.Fatal("Expected descent to succeed")
	}
	if id, _ := s.Focused(); id != 3 {
		t.Errorf("Expected shallowest descendant 3, got %d", id)
	}
}
