package puzzle

import (
	"strings"
)

/*

Textual board format

Boards travel as ".sdk" text: nine lines of nine characters, one
character per cell in reading order.  Digits 1 through 9 are
assigned cells; '0' and '.' both mean an empty cell.  FormatBoard
always writes '0' for empty cells, ParseBoard accepts either.

*/

// ParseBoard parses .sdk text into a Board.  Any deviation from
// the format - wrong line count, wrong line length, or a
// character that isn't a digit or '.' - gives an Error satisfying
// IsParseError that names the offending line and position.  A
// single trailing newline is allowed, and Windows line endings
// are tolerated.
func ParseBoard(text string) (Board, error) {
	var b Board
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != SideLength {
		return b, Error{
			Scope:     FormatScope,
			Condition: WrongLineCountCondition,
			Values:    ErrorData{SideLength, len(lines)},
		}
	}
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != SideLength {
			return Board{}, lineError(r+1, WrongLineLengthCondition, SideLength, len(line))
		}
		for c := 0; c < SideLength; c++ {
			switch ch := line[c]; {
			case ch >= '1' && ch <= '9':
				b[r][c] = int(ch - '0')
			case ch == '0' || ch == '.':
				b[r][c] = 0
			default:
				return Board{}, lineError(r+1, BadCharacterCondition, string(ch), c+1)
			}
		}
	}
	return b, nil
}

// FormatBoard renders a Board as .sdk text, the inverse of
// ParseBoard: nine newline-terminated lines of nine characters,
// with '0' for empty cells.
func FormatBoard(b Board) string {
	var sb strings.Builder
	sb.Grow(CellCount + SideLength)
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			sb.WriteByte(byte('0' + b[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

/*

Pretty-printed boards in strings, for terminals and debugging.

*/

// glyphs for cell values in pretty-printed boards; empty cells
// print as a dot.
var cellGlyphs = []string{".", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

func glyph(v int) string {
	if v < 0 || v >= len(cellGlyphs) {
		return "?"
	}
	return cellGlyphs[v]
}

// box-drawing segments for the pretty printer
const (
	boxSegment = "───────────"
	boxTop     = "┌" + boxSegment + "┬" + boxSegment + "┬" + boxSegment + "┐"
	boxMiddle  = "├" + boxSegment + "┼" + boxSegment + "┼" + boxSegment + "┤"
	boxBottom  = "└" + boxSegment + "┴" + boxSegment + "┴" + boxSegment + "┘"
)

// String gives a pretty-printed view of a board: a box-drawn
// grid with the nine 3x3 boxes outlined.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(boxTop)
	sb.WriteByte('\n')
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			if c%BoxSize == 0 {
				sb.WriteString("│")
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString(" " + glyph(b[r][c]) + " ")
		}
		sb.WriteString("│\n")
		switch r {
		case 2, 5:
			sb.WriteString(boxMiddle)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(boxBottom)
	sb.WriteByte('\n')
	return sb.String()
}
