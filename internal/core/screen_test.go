package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	if got := s.Bounds(); got != NewRect(0, 0, 12, 4) {
		t.Errorf("Bounds() = %+v", got)
	}
	if strings.Trim(s.String(), " \n") != "" {
		t.Errorf("new screen is not blank: %q", s.String())
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(5, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 1},
		{"right", 5, 1},
		{"above", 2, -1},
		{"below", 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetColored(tc.x, tc.y, '▲', ColorYellow)
			if got := s.GetCell(tc.x, tc.y); got != blankCell {
				t.Errorf("GetCell(%d,%d) = %+v, expected blank", tc.x, tc.y, got)
			}
		})
	}

	if strings.ContainsRune(s.String(), '▲') {
		t.Error("clipped writes leaked into the buffer")
	}
}

func TestScreenKeepsColors(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(2, 1, "Hi", ColorRed)
	s.Set(0, 0, '#')

	tests := []struct {
		x, y  int
		rune  rune
		color Color
	}{
		{2, 1, 'H', ColorRed},
		{3, 1, 'i', ColorRed},
		{0, 0, '#', ColorDefault},
		{4, 1, ' ', ColorDefault},
	}
	for _, tc := range tests {
		c := s.GetCell(tc.x, tc.y)
		if c.Rune != tc.rune || c.Color != tc.color {
			t.Errorf("cell (%d,%d) = %+v, expected %q/%v", tc.x, tc.y, c, tc.rune, tc.color)
		}
	}

	s.Clear()
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("Clear() left %+v", c)
	}
}

func TestScreenTextIsRuneAware(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "▲✶▲")

	if got := s.Row(0); got != "   ▲✶▲   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Get(4, 0); got != '✶' {
		t.Errorf("Get(4,0) = %q, expected '✶'", got)
	}

	s.DrawText(7, 0, "abc")
	if got := s.Row(0); got != "   ▲✶▲ ab" {
		t.Errorf("text past the edge should clip, got %q", got)
	}
}

func TestScreenBoxAndRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '.')
	s.DrawBoxColored(NewRect(0, 0, 6, 4), ColorGray)

	expected := strings.Join([]string{
		"┌────┐",
		"│....│",
		"│....│",
		"└────┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("got\n%s\nexpected\n%s", got, expected)
	}
	if c := s.GetCell(5, 3); c.Color != ColorGray {
		t.Errorf("corner color = %v, expected gray", c.Color)
	}

	// A box needs at least two cells each way
	tiny := NewScreen(3, 3)
	tiny.DrawBoxColored(NewRect(1, 1, 1, 2), ColorGray)
	if strings.Trim(tiny.String(), " \n") != "" {
		t.Errorf("degenerate box was drawn: %q", tiny.String())
	}
}

func TestScreenResize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		keepAt [2]int
	}{
		{"grow", 8, 6, [2]int{1, 1}},
		{"shrink", 2, 2, [2]int{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 4)
			s.SetColored(1, 1, '▲', ColorBrightYellow)
			s.SetColored(3, 3, '✶', ColorMagenta)

			s.Resize(tc.w, tc.h)
			if s.Width() != tc.w || s.Height() != tc.h {
				t.Fatalf("size = %dx%d", s.Width(), s.Height())
			}
			if c := s.GetCell(tc.keepAt[0], tc.keepAt[1]); c.Rune != '▲' || c.Color != ColorBrightYellow {
				t.Errorf("content lost on resize: %+v", c)
			}
			if len([]rune(s.Row(0))) != tc.w {
				t.Errorf("row width = %d, expected %d", len([]rune(s.Row(0))), tc.w)
			}
		})
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
