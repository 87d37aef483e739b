package layout

import (
	"github.com/pkg/errors"

	"github.com/glintui/glint/frame"
	"github.com/glintui/glint/node"
	"github.com/glintui/glint/style"
)

// The solver builds a flat box arena mirroring the node tree, measures
// intrinsic sizes bottom-up at the available column width, arranges
// children relative to their parent, then resolves absolute positions and
// clip rectangles on demand through the parent side table. The arena is
// rebuilt from scratch every frame, so there are no cross-frame references
// to invalidate.

type boxKind uint8

const (
	boxEmpty boxKind = iota
	boxText
	boxIcon
	boxInput
	boxContainer
	boxScroll
	boxStack
)

type box struct {
	kind   boxKind
	parent int

	children []int

	// stack
	axis          node.Axis
	gap           int
	justifyCenter bool
	itemsCenter   bool

	// container
	boxStyle style.BoxStyle

	// scroll view
	viewportLines int
	offsetLines   int

	// text leaf; runs are captured at build time together with the
	// inherited container color, wrapped during measure
	runs         []node.TextRun
	inheritFg    style.RGB
	inheritFgSet bool
	text         wrappedText

	// icon leaf
	iconRune  rune
	iconStyle frame.CellStyle
	iconWidth int

	// editor surface, lowered into gutter+content leaves during measure
	// once the available width is known
	inputNode node.TextInput

	// intrinsic size from measure
	w, h int
	// position relative to the parent's content origin
	x, y int

	// memoized absolute position and clip
	absX, absY int
	clip       Rect
	resolved   bool
}

type solver struct {
	width  int
	height int
	boxes  []box
}

// Render lays out a node tree at the given terminal size and rasterizes it
// into a fresh cell buffer. Backgrounds paint outer-to-inner before any
// glyphs so unstyled leaves show through to their surroundings. A
// malformed tree fails the whole frame; the host decides whether to retry.
func Render(root node.Node, width, height int) (*frame.CellBuffer, error) {
	buf := frame.NewCellBuffer(width, height)
	if width <= 0 || height <= 0 {
		return buf, nil
	}

	s := &solver{width: width, height: height}
	ri, err := s.build(root, -1, style.RGB{}, false)
	if err != nil {
		return nil, errors.Wrap(err, "layout failed")
	}
	s.measure(ri, width)
	s.arrange(ri, 0, 0, width, height)

	for i := range s.boxes {
		b := &s.boxes[i]
		if b.kind == boxContainer && b.boxStyle.BgSet {
			s.resolve(i)
			s.fillBackground(buf, b)
		}
	}
	for i := range s.boxes {
		b := &s.boxes[i]
		switch b.kind {
		case boxText:
			s.resolve(i)
			s.drawText(buf, b)
		case boxIcon:
			s.resolve(i)
			s.drawIcon(buf, b)
		}
	}
	return buf, nil
}

// build appends a box for n and recursively for its children, threading the
// nearest ancestor text color down in the same walk. Arena order is
// pre-order, which the background pass relies on.
func (s *solver) build(n node.Node, parent int, fg style.RGB, fgSet bool) (int, error) {
	i := len(s.boxes)
	s.boxes = append(s.boxes, box{parent: parent})

	switch v := n.(type) {
	case nil:
		return 0, errors.New("nil node")

	case node.Empty:
		s.boxes[i].kind = boxEmpty

	case node.RichText:
		b := &s.boxes[i]
		b.kind = boxText
		b.runs = v.Runs
		b.inheritFg, b.inheritFgSet = fg, fgSet

	case node.Icon:
		b := &s.boxes[i]
		b.kind = boxIcon
		b.iconRune = v.Glyph
		b.iconWidth = measureIcon(v.Glyph)
		st := frame.CellStyle{}
		switch {
		case v.HasColor:
			st.Fg, st.FgSet = v.Color, true
		case fgSet:
			st.Fg, st.FgSet = fg, true
		}
		b.iconStyle = st

	case node.TextInput:
		b := &s.boxes[i]
		b.kind = boxInput
		b.inputNode = v
		b.inheritFg, b.inheritFgSet = fg, fgSet

	case node.Container:
		b := &s.boxes[i]
		b.kind = boxContainer
		b.boxStyle = v.Style
		if v.Child == nil {
			return 0, errors.New("container has no child")
		}
		childFg, childFgSet := fg, fgSet
		if v.Style.TextColorSet {
			childFg, childFgSet = v.Style.TextColor, true
		}
		ci, err := s.build(v.Child, i, childFg, childFgSet)
		if err != nil {
			return 0, err
		}
		s.boxes[i].children = append(s.boxes[i].children, ci)

	case node.ScrollView:
		b := &s.boxes[i]
		b.kind = boxScroll
		b.viewportLines = v.ViewportLines
		b.offsetLines = v.OffsetLines
		if v.Child == nil {
			return 0, errors.New("scroll view has no child")
		}
		ci, err := s.build(v.Child, i, fg, fgSet)
		if err != nil {
			return 0, err
		}
		s.boxes[i].children = append(s.boxes[i].children, ci)

	case node.Stack:
		b := &s.boxes[i]
		b.kind = boxStack
		b.axis = v.Axis
		b.gap = v.Gap
		b.justifyCenter = v.JustifyCenter
		b.itemsCenter = v.ItemsCenter
		for _, child := range v.Children {
			ci, err := s.build(child, i, fg, fgSet)
			if err != nil {
				return 0, err
			}
			s.boxes[i].children = append(s.boxes[i].children, ci)
		}

	default:
		return 0, errors.Errorf("unknown node type %T", n)
	}
	return i, nil
}

// measure computes intrinsic sizes at the available column width. Row
// stacks shrink the width left for later children as earlier ones claim
// columns; column stacks offer the full width to every child.
func (s *solver) measure(i, availW int) (int, int) {
	if availW < 0 {
		availW = 0
	}
	b := &s.boxes[i]

	switch b.kind {
	case boxEmpty:
		b.w, b.h = 0, 0

	case boxText:
		b.text = wrapRuns(b.runs, availW, b.inheritFg, b.inheritFgSet)
		b.w, b.h = b.text.width, b.text.height

	case boxIcon:
		b.w, b.h = b.iconWidth, 1

	case boxInput:
		// Lowering happens here rather than in build so the wrap column
		// reflects the width this node was actually offered
		li, err := s.build(lowerTextInput(b.inputNode, availW), i, b.inheritFg, b.inheritFgSet)
		if err != nil {
			// Lowered subtrees contain no nil children; unreachable
			s.boxes[i].w, s.boxes[i].h = 0, 0
			break
		}
		s.boxes[i].children = append(s.boxes[i].children, li)
		cw, ch := s.measure(li, availW)
		b = &s.boxes[i]
		b.w, b.h = cw, ch

	case boxContainer:
		cw, ch := s.measure(b.children[0], availW)
		b = &s.boxes[i]
		b.w, b.h = cw, ch

	case boxScroll:
		cw, ch := s.measure(b.children[0], availW)
		b = &s.boxes[i]
		b.w = cw
		if b.viewportLines > 0 {
			b.h = b.viewportLines
		} else {
			b.h = ch
		}

	case boxStack:
		if b.axis == node.Row {
			rem := availW
			totalW, maxH := 0, 0
			for n, ci := range b.children {
				if n > 0 {
					rem -= s.boxes[i].gap
					totalW += s.boxes[i].gap
				}
				cw, ch := s.measure(ci, rem)
				rem -= cw
				totalW += cw
				if ch > maxH {
					maxH = ch
				}
			}
			b = &s.boxes[i]
			b.w, b.h = totalW, maxH
		} else {
			maxW, totalH := 0, 0
			for n, ci := range b.children {
				if n > 0 {
					totalH += s.boxes[i].gap
				}
				cw, ch := s.measure(ci, availW)
				if cw > maxW {
					maxW = cw
				}
				totalH += ch
			}
			b = &s.boxes[i]
			b.w, b.h = maxW, totalH
		}
	}
	return s.boxes[i].w, s.boxes[i].h
}

// arrange assigns the box its final size and parent-relative position, then
// places children. Children keep their intrinsic sizes; centering
// distributes any surplus.
func (s *solver) arrange(i, x, y, w, h int) {
	b := &s.boxes[i]
	b.x, b.y = x, y
	b.w, b.h = w, h

	switch b.kind {
	case boxContainer, boxInput:
		ci := b.children[0]
		c := &s.boxes[ci]
		s.arrange(ci, 0, 0, c.w, c.h)

	case boxScroll:
		ci := b.children[0]
		c := &s.boxes[ci]
		s.arrange(ci, 0, 0, c.w, c.h)

	case boxStack:
		if b.axis == node.Row {
			contentW := 0
			for n, ci := range b.children {
				if n > 0 {
					contentW += b.gap
				}
				contentW += s.boxes[ci].w
			}
			cx := 0
			if b.justifyCenter && w > contentW {
				cx = (w - contentW) / 2
			}
			gap := b.gap
			items := b.itemsCenter
			for n, ci := range b.children {
				if n > 0 {
					cx += gap
				}
				c := &s.boxes[ci]
				cw, ch := c.w, c.h
				cy := 0
				if items && h > ch {
					cy = (h - ch) / 2
				}
				s.arrange(ci, cx, cy, cw, ch)
				cx += cw
			}
		} else {
			contentH := 0
			for n, ci := range b.children {
				if n > 0 {
					contentH += b.gap
				}
				contentH += s.boxes[ci].h
			}
			cy := 0
			if b.justifyCenter && h > contentH {
				cy = (h - contentH) / 2
			}
			gap := b.gap
			items := b.itemsCenter
			for n, ci := range b.children {
				if n > 0 {
					cy += gap
				}
				c := &s.boxes[ci]
				cw, ch := c.w, c.h
				cx := 0
				if items && w > cw {
					cx = (w - cw) / 2
				}
				s.arrange(ci, cx, cy, cw, ch)
				cy += ch
			}
		}
	}
}

// resolve memoizes a box's absolute position and effective clip by walking
// the parent table once. A scroll ancestor shifts descendants up by its
// offset and intersects the clip with its own absolute viewport box.
func (s *solver) resolve(i int) {
	b := &s.boxes[i]
	if b.resolved {
		return
	}
	if b.parent < 0 {
		b.absX, b.absY = b.x, b.y
		b.clip = RectOf(0, 0, s.width, s.height)
		b.resolved = true
		return
	}
	s.resolve(b.parent)
	p := &s.boxes[b.parent]
	b.absX = p.absX + b.x
	b.absY = p.absY + b.y
	b.clip = p.clip
	if p.kind == boxScroll {
		b.absY -= p.offsetLines
		// The root box is force-sized to the terminal, so the viewport
		// line count wins over the arranged height
		vh := p.h
		if p.viewportLines > 0 && p.viewportLines < vh {
			vh = p.viewportLines
		}
		b.clip = b.clip.Intersect(RectOf(p.absX, p.absY, p.w, vh))
	}
	b.resolved = true
}

func (s *solver) fillBackground(buf *frame.CellBuffer, b *box) {
	area := b.clip.Intersect(RectOf(b.absX, b.absY, b.w, b.h))
	if area.Empty() {
		return
	}
	for y := area.Top; y < area.Bottom; y++ {
		for x := area.Left; x < area.Right; x++ {
			buf.SetBg(x, y, b.boxStyle.Bg)
		}
	}
}

func (s *solver) drawText(buf *frame.CellBuffer, b *box) {
	if b.clip.Empty() {
		return
	}
	for row, line := range b.text.lines {
		y := b.absY + row
		if y < b.clip.Top || y >= b.clip.Bottom {
			continue
		}
		x := b.absX
		for _, g := range line.glyphs {
			// A glyph clipped on either edge is dropped whole so a
			// wide head never appears without its tail
			if x >= b.clip.Left && x+g.width <= b.clip.Right {
				putGlyph(buf, x, y, g)
			}
			x += g.width
		}
	}
}

func (s *solver) drawIcon(buf *frame.CellBuffer, b *box) {
	if b.clip.Empty() || !b.clip.Contains(b.absX, b.absY) {
		return
	}
	if b.iconWidth > 1 && b.absX+b.iconWidth > b.clip.Right {
		return
	}
	buf.PutChar(b.absX, b.absY, b.iconRune, b.iconStyle)
}

// putGlyph writes one grapheme cluster. The grid stores one rune per head
// cell, so a cluster is reduced to its base rune.
func putGlyph(buf *frame.CellBuffer, x, y int, g glyphCell) {
	buf.PutChar(x, y, g.runes[0], g.style)
}
