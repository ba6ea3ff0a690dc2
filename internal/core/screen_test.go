package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell at (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}
	s.Set(4, 4, 'Y')
	if s.Get(4, 4) != 'Y' || s.GetCell(4, 4).Color != ColorDefault {
		t.Error("Set should write an uncolored rune")
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(NewRect(0, 0, 4, 2), '#', ColorGreen)
	s.Clear()
	if got := s.String(); got != "    \n    " {
		t.Errorf("after Clear String() = %q", got)
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(8, 1, "Hello", ColorYellow)

	if s.Row(1) != "        He" {
		t.Errorf("Row(1) = %q, expected clipped text", s.Row(1))
	}
	if s.GetCell(9, 1).Color != ColorYellow {
		t.Error("text color not applied")
	}
}

func TestScreenDrawTextCenteredRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "★★★", ColorDefault)

	if s.Get(4, 0) != '★' || s.Get(6, 0) != '★' {
		t.Errorf("Row(0) = %q, expected centered stars", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box color not applied")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || len(s.Row(7)) != 15 {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("out of bounds row = %q, expected spaces", got)
	}
}

func TestScreenResizeTruncates(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(0, 2, "Garden")

	s.Resize(3, 3)
	if got := s.Row(2); got != "Gar" {
		t.Errorf("row 2 after shrinking = %q, expected %q", got, "Gar")
	}

	s.Resize(3, 2)
	if s.Height() != 2 || s.Row(1) != "   " {
		t.Errorf("dropped rows should not leak, row 1 = %q", s.Row(1))
	}

	s.Resize(3, 2)
	if s.Width() != 3 {
		t.Errorf("same-size resize changed width to %d", s.Width())
	}
}
