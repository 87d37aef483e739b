package style

import (
	"testing"
)

func TestHexUnpacksChannels(t *testing.T) {
	c := Hex(0x58a6ff)
	if c.R != 0x58 || c.G != 0xa6 || c.B != 0xff {
		t.Errorf("Expected (58, a6, ff), got (%x, %x, %x)", c.R, c.G, c.B)
	}
}

func TestLightenDarkenClamp(t *testing.T) {
	if got := White.Lighten(0.5); got != White {
		t.Errorf("Expected white to stay white, got %v", got)
	}
	if got := Black.Darken(0.5); got != Black {
		t.Errorf("Expected black to stay black, got %v", got)
	}

	mid := Hex(0x808080)
	if got := mid.Lighten(1); got != White {
		t.Errorf("Expected full lighten to reach white, got %v", got)
	}
	if got := mid.Darken(1); got != Black {
		t.Errorf("Expected full darken to reach black, got %v", got)
	}
}

func TestMixEndpoints(t *testing.T) {
	if got := Mix(Red, Blue, 0); got != Red {
		t.Errorf("Expected t=0 to yield the first color, got %v", got)
	}
	if got := Mix(Red, Blue, 1); got != Blue {
		t.Errorf("Expected t=1 to yield the second color, got %v", got)
	}

	// A midpoint blend lands strictly between the endpoints
	got := Mix(Black, White, 0.5)
	if got == Black || got == White {
		t.Errorf("Expected a gray midpoint, got %v", got)
	}
}

func TestStyleBuildersCompose(t *testing.T) {
	s := TextStyle{}.Bold().Italic().Color(Red).Background(Black)
	if s.Attrs != AttrBold|AttrItalic {
		t.Errorf("Expected bold italic attrs, got %b", s.Attrs)
	}
	if !s.FgSet || s.Fg != Red {
		t.Errorf("Expected red foreground, got %v set=%v", s.Fg, s.FgSet)
	}
	if !s.BgSet || s.Bg != Black {
		t.Errorf("Expected black background, got %v set=%v", s.Bg, s.BgSet)
	}
}
