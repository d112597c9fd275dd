package game

// Glyphs are the runes a cell can be drawn with. Numbers are always drawn
// as digits.
type Glyphs struct {
	Hidden rune
	Empty  rune
	Flag   rune
	Mine   rune
}

var (
	UnicodeGlyphs = Glyphs{Hidden: '■', Empty: '·', Flag: '⚑', Mine: '✹'}
	ASCIIGlyphs   = Glyphs{Hidden: '#', Empty: ' ', Flag: 'F', Mine: 'B'}
)

func (g Glyphs) runes() []rune {
	return []rune{g.Hidden, g.Empty, g.Flag, g.Mine}
}

// displayer is the part of tcell.Screen needed to choose glyphs.
type displayer interface {
	CanDisplay(r rune, checkFallbacks bool) bool
}

// PickGlyphs returns the Unicode set when the screen can draw all of it and
// the ASCII set otherwise. degraded reports a fallback the user did not ask
// for.
func PickGlyphs(screen displayer, forceASCII bool) (glyphs Glyphs, degraded bool) {
	if forceASCII {
		return ASCIIGlyphs, false
	}
	if screen == nil {
		return ASCIIGlyphs, true
	}
	for _, r := range UnicodeGlyphs.runes() {
		if !screen.CanDisplay(r, false) {
			return ASCIIGlyphs, true
		}
	}
	return UnicodeGlyphs, false
}
