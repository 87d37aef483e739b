package node

import (
	"github.com/glintui/glint/focus"
	"github.com/glintui/glint/style"
)

// Fluent builders for assembling node trees. Each builder is a value type;
// methods return updated copies so subtrees can be shared as templates
// before the final Node() call.

// StackBuilder assembles a Stack node
type StackBuilder struct {
	inner Stack
}

// NewRow starts a horizontal stack
func NewRow() StackBuilder {
	return StackBuilder{inner: Stack{Axis: Row}}
}

// NewColumn starts a vertical stack
func NewColumn() StackBuilder {
	return StackBuilder{inner: Stack{Axis: Column}}
}

func (b StackBuilder) Gap(gap int) StackBuilder {
	b.inner.Gap = gap
	return b
}

func (b StackBuilder) JustifyCenter() StackBuilder {
	b.inner.JustifyCenter = true
	return b
}

func (b StackBuilder) ItemsCenter() StackBuilder {
	b.inner.ItemsCenter = true
	return b
}

func (b StackBuilder) Child(children ...Node) StackBuilder {
	b.inner.Children = append(b.inner.Children[:len(b.inner.Children):len(b.inner.Children)], children...)
	return b
}

func (b StackBuilder) Node() Node {
	return b.inner
}

// TextBuilder assembles rich text run by run
type TextBuilder struct {
	inner RichText
}

// NewText starts rich text with one unstyled run
func NewText(text string) TextBuilder {
	return TextBuilder{inner: Plain(text)}
}

func (b TextBuilder) Run(text string, st style.TextStyle) TextBuilder {
	runs := b.inner.Runs[:len(b.inner.Runs):len(b.inner.Runs)]
	b.inner.Runs = append(runs, TextRun{Text: text, Style: st})
	return b
}

func (b TextBuilder) Node() Node {
	return b.inner
}

// NewContainer wraps a child in a styled box
func NewContainer(child Node) ContainerBuilder {
	return ContainerBuilder{inner: Container{Child: child}}
}

type ContainerBuilder struct {
	inner Container
}

func (b ContainerBuilder) Style(st style.BoxStyle) ContainerBuilder {
	b.inner.Style = st
	return b
}

func (b ContainerBuilder) Focus(id focus.ID) ContainerBuilder {
	b.inner.FocusID = id
	b.inner.HasFocus = true
	return b
}

func (b ContainerBuilder) Node() Node {
	return b.inner
}

// NewScrollView wraps a child in a scrollable viewport
func NewScrollView(child Node) ScrollViewBuilder {
	return ScrollViewBuilder{inner: ScrollView{Child: child}}
}

type ScrollViewBuilder struct {
	inner ScrollView
}

func (b ScrollViewBuilder) ViewportLines(lines int) ScrollViewBuilder {
	if lines < 1 {
		lines = 1
	}
	b.inner.ViewportLines = lines
	return b
}

func (b ScrollViewBuilder) OffsetLines(lines int) ScrollViewBuilder {
	if lines < 0 {
		lines = 0
	}
	b.inner.OffsetLines = lines
	return b
}

func (b ScrollViewBuilder) Focus(id focus.ID) ScrollViewBuilder {
	b.inner.FocusID = id
	b.inner.HasFocus = true
	return b
}

func (b ScrollViewBuilder) Node() Node {
	return b.inner
}

// NewIcon builds a single-glyph leaf
func NewIcon(glyph rune) Icon {
	return Icon{Glyph: glyph}
}

// Colored returns the icon with a foreground override
func (i Icon) Colored(c style.RGB) Icon {
	i.Color = c
	i.HasColor = true
	return i
}
