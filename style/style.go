package style

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrItalic        Attr = 1 << 1
	AttrUnderline     Attr = 1 << 2
	AttrStrikethrough Attr = 1 << 3
)

// TextStyle is the per-run styling of rich text. Optional colors carry an
// explicit Set flag so styles stay comparable with ==.
type TextStyle struct {
	Attrs Attr

	Fg    RGB
	FgSet bool
	Bg    RGB
	BgSet bool

	// CursorAnchor marks the glyph carrying this frame's visual cursor.
	// CursorAfter places the cursor after the glyph instead of on it,
	// for end-of-line placement.
	CursorAnchor bool
	CursorAfter  bool
}

func (s TextStyle) Bold() TextStyle {
	s.Attrs |= AttrBold
	return s
}

func (s TextStyle) Italic() TextStyle {
	s.Attrs |= AttrItalic
	return s
}

func (s TextStyle) Underline() TextStyle {
	s.Attrs |= AttrUnderline
	return s
}

func (s TextStyle) Strikethrough() TextStyle {
	s.Attrs |= AttrStrikethrough
	return s
}

func (s TextStyle) Color(c RGB) TextStyle {
	s.Fg = c
	s.FgSet = true
	return s
}

func (s TextStyle) Background(c RGB) TextStyle {
	s.Bg = c
	s.BgSet = true
	return s
}

// BoxStyle is the styling of a container box. TextColor is inherited by
// descendant text leaves that do not set their own foreground.
type BoxStyle struct {
	Bg           RGB
	BgSet        bool
	TextColor    RGB
	TextColorSet bool
}

func (s BoxStyle) Background(c RGB) BoxStyle {
	s.Bg = c
	s.BgSet = true
	return s
}

func (s BoxStyle) Text(c RGB) BoxStyle {
	s.TextColor = c
	s.TextColorSet = true
	return s
}
