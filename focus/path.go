// Package focus resolves keyboard focus across a node tree that is rebuilt
// every frame. Cross-frame identity is carried by application-assigned ids
// and by tree-position paths, never by node pointers.
package focus

import (
	"slices"
	"strconv"
	"strings"
)

// ID is an opaque stable focus handle chosen by the application when
// building a node. Uniqueness within a frame is the application's
// responsibility; duplicate ids resolve by first match during lookup.
type ID uint64

// Path is the sequence of child-slot indices from the root to a focusable
// node, recomputed fresh every frame. Stack children contribute their index;
// single-child wrappers contribute slot 0.
type Path []int

func (p Path) Clone() Path {
	return slices.Clone(p)
}

func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// Compare orders paths lexicographically
func (p Path) Compare(o Path) int {
	return slices.Compare(p, o)
}

// HasPrefix reports whether prefix addresses p itself or an ancestor of p
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return slices.Equal(p[:len(prefix)], prefix)
}

// key encodes the path for use as a map key
func (p Path) key() string {
	var sb strings.Builder
	for i, slot := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(slot))
	}
	return sb.String()
}

// Kind classifies how a focusable node behaves under navigation
type Kind uint8

const (
	KindGeneric Kind = iota
	KindTextInput
	KindScrollRegion
)

// Entry pairs a focus id with its tree position for one frame. The flat,
// depth-first-ordered entry list is the single source of truth for tab order.
type Entry struct {
	ID   ID
	Path Path
	Kind Kind
}
