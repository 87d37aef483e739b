// Package node defines the per-frame declarative UI tree. A tree is value-
// owned by the frame that builds it: constructed fresh, handed to layout and
// focus collection, then discarded. No node is shared or mutated after
// construction, and cross-frame identity exists only through focus ids and
// focus paths.
package node

import (
	"github.com/glintui/glint/focus"
	"github.com/glintui/glint/style"
)

// Axis selects a stack's main direction
type Axis uint8

const (
	Row Axis = iota
	Column
)

// Node is one tree element. The variant set is closed.
type Node interface {
	isNode()
}

// Empty renders nothing and occupies no space
type Empty struct{}

// TextRun is a styled span inside rich text
type TextRun struct {
	Text  string
	Style style.TextStyle
}

// RichText is a leaf of styled runs. Runs may contain newlines; layout
// word-wraps them to the available column width.
type RichText struct {
	Runs []TextRun
}

// Plain builds single-run unstyled rich text
func Plain(text string) RichText {
	return RichText{Runs: []TextRun{{Text: text}}}
}

// Icon is a single-glyph leaf with an optional color override
type Icon struct {
	Glyph rune
	Color style.RGB
	HasColor bool
}

// TextInput is a leaf-level editor surface. Layout expands it into a gutter
// plus char-wrapped content; editing mechanics live in the textinput
// package, which produces Value and Cursor.
type TextInput struct {
	Value       string
	Cursor      int // char offset into Value
	Placeholder string
	Focused     bool // show the cursor anchor
	ShowGutter  bool // line-number gutter with separator

	FocusID  focus.ID
	HasFocus bool // participates in focus order
}

// Container wraps a single child with box styling and an optional focus id
type Container struct {
	Style style.BoxStyle
	Child Node

	FocusID  focus.ID
	HasFocus bool
}

// ScrollView scrolls a single child inside a fixed- or auto-height viewport
// with overflow hidden. OffsetLines shifts content up; descendants are
// clipped to the view's own box.
type ScrollView struct {
	Child         Node
	ViewportLines int // 0 sizes to content
	OffsetLines   int

	FocusID  focus.ID
	HasFocus bool
}

// Stack lays out ordered children along an axis with a uniform gap
type Stack struct {
	Axis          Axis
	Gap           int
	JustifyCenter bool // center children along the main axis
	ItemsCenter   bool // center each child on the cross axis
	Children      []Node
}

func (Empty) isNode()      {}
func (RichText) isNode()   {}
func (Icon) isNode()       {}
func (TextInput) isNode()  {}
func (Container) isNode()  {}
func (ScrollView) isNode() {}
func (Stack) isNode()      {}
