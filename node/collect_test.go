package node

import (
	"testing"

	"github.com/glintui/glint/focus"
	"github.com/glintui/glint/style"
)

// TestCollectFocusEntriesOrderAndPaths verifies depth-first order, path
// construction and per-node focus kinds for a mixed tree
func TestCollectFocusEntriesOrderAndPaths(t *testing.T) {
	tree := Stack{
		Axis: Column,
		Children: []Node{
			Container{
				FocusID:  10,
				HasFocus: true,
				Child: ScrollView{
					FocusID:  2,
					HasFocus: true,
					Child: Stack{
						Axis: Column,
						Children: []Node{
							Plain("row"),
							TextInput{FocusID: 1, HasFocus: true},
						},
					},
				},
			},
			Plain("footer"),
		},
	}

	entries := CollectFocusEntries(tree)
	if len(entries) != 3 {
		t.Fatalf("Expected 3 focus entries, got %d", len(entries))
	}

	expected := []struct {
		id   focus.ID
		kind focus.Kind
		path focus.Path
	}{
		{10, focus.KindGeneric, focus.Path{0}},
		{2, focus.KindScrollRegion, focus.Path{0, 0}},
		{1, focus.KindTextInput, focus.Path{0, 0, 0, 1}},
	}
	for i, want := range expected {
		got := entries[i]
		if got.ID != want.id {
			t.Errorf("Expected entry %d id %d, got %d", i, want.id, got.ID)
		}
		if got.Kind != want.kind {
			t.Errorf("Expected entry %d kind %d, got %d", i, want.kind, got.Kind)
		}
		if !got.Path.Equal(want.path) {
			t.Errorf("Expected entry %d path %v, got %v", i, want.path, got.Path)
		}
	}
}

// TestCollectSkipsNonFocusable verifies nodes without HasFocus contribute
// nothing, even when they carry an id
func TestCollectSkipsNonFocusable(t *testing.T) {
	tree := Stack{
		Axis: Row,
		Children: []Node{
			Container{FocusID: 5, Child: Plain("x"), Style: style.BoxStyle{}},
			Icon{Glyph: '>'},
			Empty{},
		},
	}
	if entries := CollectFocusEntries(tree); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

// TestCollectSiblingOrderFollowsStackIndex verifies sibling entries appear
// in child order with their index in the path
func TestCollectSiblingOrderFollowsStackIndex(t *testing.T) {
	tree := Stack{
		Axis: Column,
		Children: []Node{
			TextInput{FocusID: 100, HasFocus: true},
			TextInput{FocusID: 200, HasFocus: true},
			TextInput{FocusID: 300, HasFocus: true},
		},
	}
	entries := CollectFocusEntries(tree)
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, want := range []focus.ID{100, 200, 300} {
		if entries[i].ID != want {
			t.Errorf("Expected entry %d id %d, got %d", i, want, entries[i].ID)
		}
		if len(entries[i].Path) != 1 || entries[i].Path[0] != i {
			t.Errorf("Expected entry %d path [%d], got %v", i, i, entries[i].Path)
		}
	}
}
