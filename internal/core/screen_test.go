package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)
	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell at (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)
	want := Cell{Rune: '█', Color: ColorTeal, Attr: AttrFaint}
	s.SetCell(3, 4, want)
	if got := s.GetCell(3, 4); got != want {
		t.Errorf("GetCell(3, 4) = %+v, expected %+v", got, want)
	}
	if s.Get(3, 4) != '█' {
		t.Errorf("Get(3, 4) = %q, expected '█'", s.Get(3, 4))
	}

	// Out of bounds is silent.
	s.SetCell(-1, 0, want)
	s.SetCell(10, 0, want)
	s.SetCell(0, 10, want)
	if s.GetCell(-1, 0) != blank || s.GetCell(100, 100) != blank {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(0, 0, 5, 5), Cell{Rune: 'X', Color: ColorRed})
	s.Clear()
	for y := range 5 {
		if row := s.Row(y); row != "     " {
			t.Errorf("Row(%d) = %q after Clear", y, row)
		}
	}
}

func TestDrawTextStyled(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextStyled(1, 0, "Hi█", ColorLime, AttrBold)
	if s.Row(0) != " Hi█      " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	c := s.GetCell(3, 0)
	if c.Rune != '█' || c.Color != ColorLime || !c.Attr.Has(AttrBold) {
		t.Errorf("GetCell(3, 0) = %+v", c)
	}

	// Clipped at the right edge.
	s.DrawText(8, 1, "abcdef")
	if s.Row(1) != "        ab" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorWhite)
	if s.Row(0) != "    abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorWhite {
		t.Error("centered text should carry its color")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)
	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nexpected\n%s", got, want)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box border should carry its color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should clear content")
	}
}

func TestAttrHas(t *testing.T) {
	a := AttrBold | AttrReverse
	if !a.Has(AttrBold) || !a.Has(AttrReverse) || a.Has(AttrFaint) {
		t.Errorf("Attr %b flags wrong", a)
	}
	if !a.Has(AttrNone) {
		t.Error("every attr has AttrNone")
	}
}
