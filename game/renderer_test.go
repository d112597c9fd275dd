package game

import (
	"strconv"
	"testing"

	"github.com/dimaq12/minefield/models"
)

type fakeScreen map[rune]bool

func (s fakeScreen) CanDisplay(r rune, _ bool) bool {
	return s[r]
}

func TestPickGlyphs(t *testing.T) {
	all := fakeScreen{}
	for _, r := range UnicodeGlyphs.runes() {
		all[r] = true
	}
	noFlag := fakeScreen{}
	for r := range all {
		noFlag[r] = r != UnicodeGlyphs.Flag
	}

	testCases := []struct {
		name       string
		screen     displayer
		forceASCII bool
		want       Glyphs
		degraded   bool
	}{
		{"unicode", all, false, UnicodeGlyphs, false},
		{"forced ascii", all, true, ASCIIGlyphs, false},
		{"missing rune", noFlag, false, ASCIIGlyphs, true},
		{"no screen", nil, false, ASCIIGlyphs, true},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			got, degraded := PickGlyphs(test.screen, test.forceASCII)
			if got != test.want || degraded != test.degraded {
				t.Errorf("have %+v (degraded %t), want %+v (degraded %t)",
					got, degraded, test.want, test.degraded)
			}
		})
	}
}

func TestRenderMatchesBoard(t *testing.T) {
	s, board, r := newTestService(t, 5, 1, 9)
	if err := board.PlantMines(models.Coord{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	zero := models.None
	for y := 0; y < 5 && zero == models.None; y++ {
		for x := 0; x < 5; x++ {
			c := models.Coord{X: x, Y: y}
			if cell, _ := board.CellAt(c); !cell.Mined && cell.AdjacentMines == 0 {
				zero = c
				break
			}
		}
	}
	if got := s.Dispatch(NewAction(PrimaryAction, zero)); got == models.Loss {
		t.Fatalf("reveal %v lost", zero)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := models.Coord{X: x, Y: y}
			cell, _ := board.CellAt(c)
			want := "#"
			switch {
			case cell.Discovered && cell.AdjacentMines > 0:
				want = strconv.Itoa(cell.AdjacentMines)
			case cell.Discovered:
				want = ""
			}
			if text := cellText(r, c); text != want {
				t.Errorf("cell %v drawn as %q, want %q", c, text, want)
			}
		}
	}
}

func TestRenderPadding(t *testing.T) {
	_, _, r := newTestService(t, 2, 1, 1)

	if text := r.Table().GetCell(0, 0).Text; text != " # " {
		t.Errorf("cell text %q, want %q", text, " # ")
	}
}

func TestSetGlyphs(t *testing.T) {
	_, board, r := newTestService(t, 2, 1, 1)
	r.SetGlyphs(UnicodeGlyphs)
	r.DrawBoard(board)

	if text := cellText(r, models.Coord{X: 1, Y: 1}); text != string(UnicodeGlyphs.Hidden) {
		t.Errorf("hidden cell drawn as %q", text)
	}
}
