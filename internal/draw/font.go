package draw

import "github.com/gbeane/retro-game/internal/object"

// Font maps characters to fixed bitmap glyphs.
type Font map[rune]object.Pixmap

// unknownGlyph stands in for characters a font has no bitmap for.
var unknownGlyph = glyph(
	"XXX",
	"X.X",
	"X.X",
	"X.X",
	"XXX",
)

// Glyph returns the bitmap for ch, or a placeholder box for characters the
// font does not cover.
func (f Font) Glyph(ch rune) object.Pixmap {
	if pm, ok := f[ch]; ok {
		return pm
	}
	return unknownGlyph
}

// glyph parses a visual bitmap: 'X' marks set pixels, anything else is empty.
func glyph(rows ...string) object.Pixmap {
	pm := make(object.Pixmap, len(rows))
	for i, r := range rows {
		row := make([]uint8, len(r))
		for j, c := range r {
			if c == 'X' {
				row[j] = 1
			}
		}
		pm[i] = row
	}
	return pm
}

// TextFont is a 3×5 font covering A-Z, 0-9 and space, used for overlay text.
var TextFont = Font{
	' ': glyph("...", "...", "...", "...", "..."),
	'A': glyph(".X.", "X.X", "XXX", "X.X", "X.X"),
	'B': glyph("XX.", "X.X", "XX.", "X.X", "XX."),
	'C': glyph(".XX", "X..", "X..", "X..", ".XX"),
	'D': glyph("XX.", "X.X", "X.X", "X.X", "XX."),
	'E': glyph("XXX", "X..", "XX.", "X..", "XXX"),
	'F': glyph("XXX", "X..", "XX.", "X..", "X.."),
	'G': glyph(".XX", "X..", "X.X", "X.X", ".XX"),
	'H': glyph("X.X", "X.X", "XXX", "X.X", "X.X"),
	'I': glyph("XXX", ".X.", ".X.", ".X.", "XXX"),
	'J': glyph("..X", "..X", "..X", "X.X", ".X."),
	'K': glyph("X.X", "XX.", "X..", "XX.", "X.X"),
	'L': glyph("X..", "X..", "X..", "X..", "XXX"),
	'M': glyph("X.X", "XXX", "XXX", "X.X", "X.X"),
	'N': glyph("XX.", "X.X", "X.X", "X.X", "X.X"),
	'O': glyph("XXX", "X.X", "X.X", "X.X", "XXX"),
	'P': glyph("XX.", "X.X", "XX.", "X..", "X.."),
	'Q': glyph("XXX", "X.X", "X.X", "XXX", "..X"),
	'R': glyph("XX.", "X.X", "XX.", "X.X", "X.X"),
	'S': glyph(".XX", "X..", ".X.", "..X", "XX."),
	'T': glyph("XXX", ".X.", ".X.", ".X.", ".X."),
	'U': glyph("X.X", "X.X", "X.X", "X.X", "XXX"),
	'V': glyph("X.X", "X.X", "X.X", "X.X", ".X."),
	'W': glyph("X.X", "X.X", "XXX", "XXX", "X.X"),
	'X': glyph("X.X", "X.X", ".X.", "X.X", "X.X"),
	'Y': glyph("X.X", "X.X", ".X.", ".X.", ".X."),
	'Z': glyph("XXX", "..X", ".X.", "X..", "XXX"),
	'0': glyph("XXX", "X.X", "X.X", "X.X", "XXX"),
	'1': glyph(".X.", "XX.", ".X.", ".X.", "XXX"),
	'2': glyph("XXX", "..X", "XXX", "X..", "XXX"),
	'3': glyph("XXX", "..X", ".XX", "..X", "XXX"),
	'4': glyph("X.X", "X.X", "XXX", "..X", "..X"),
	'5': glyph("XXX", "X..", "XXX", "..X", "XXX"),
	'6': glyph("XXX", "X..", "XXX", "X.X", "XXX"),
	'7': glyph("XXX", "..X", "..X", ".X.", ".X."),
	'8': glyph("XXX", "X.X", "XXX", "X.X", "XXX"),
	'9': glyph("XXX", "X.X", "XXX", "..X", "XXX"),
}

// ScoreFont is a taller 4×7 digit font used for the score and lives HUD.
var ScoreFont = Font{
	'0': glyph(".XX.", "X..X", "X..X", "X..X", "X..X", "X..X", ".XX."),
	'1': glyph("..X.", ".XX.", "..X.", "..X.", "..X.", "..X.", ".XXX"),
	'2': glyph(".XX.", "X..X", "...X", "..X.", ".X..", "X...", "XXXX"),
	'3': glyph("XXX.", "...X", "..X.", ".XX.", "...X", "X..X", ".XX."),
	'4': glyph("..XX", ".X.X", "X..X", "XXXX", "...X", "...X", "...X"),
	'5': glyph("XXXX", "X...", "XXX.", "...X", "...X", "X..X", ".XX."),
	'6': glyph(".XX.", "X...", "X...", "XXX.", "X..X", "X..X", ".XX."),
	'7': glyph("XXXX", "...X", "..X.", "..X.", ".X..", ".X..", ".X.."),
	'8': glyph(".XX.", "X..X", "X..X", ".XX.", "X..X", "X..X", ".XX."),
	'9': glyph(".XX.", "X..X", "X..X", ".XXX", "...X", "...X", ".XX."),
}
