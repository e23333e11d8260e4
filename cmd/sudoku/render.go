package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/black-fractal/sudoku/puzzle"
)

/*

Board rendering

Boards print as box-drawn grids with the nine 3x3 boxes outlined.
When a solution is shown next to the puzzle it came from, the
cells the solver filled in are colored, so the givens stand out
from the deductions - but only when writing to a terminal, so
redirected output stays plain text.

*/

// box-drawing rows
const (
	segment    = "───────────"
	gridTop    = "┌" + segment + "┬" + segment + "┬" + segment + "┐"
	gridMiddle = "├" + segment + "┼" + segment + "┼" + segment + "┤"
	gridBottom = "└" + segment + "┴" + segment + "┴" + segment + "┘"
)

// terminal reports whether a writer or reader is attached to a
// character device.
// (see http://stackoverflow.com/questions/22744443/ for source)
func terminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) != 0
}

// renderGrid draws the grid, asking the cell function for the
// print form of each cell.  Cell strings may carry ANSI color
// codes; they must render one glyph wide.
func renderGrid(w io.Writer, cell func(row, col int) string) {
	fmt.Fprintln(w, gridTop)
	for r := 0; r < puzzle.SideLength; r++ {
		var row strings.Builder
		for c := 0; c < puzzle.SideLength; c++ {
			if c%puzzle.BoxSize == 0 {
				row.WriteString("│")
			} else {
				row.WriteByte(' ')
			}
			row.WriteString(" " + cell(r, c) + " ")
		}
		row.WriteString("│")
		fmt.Fprintln(w, row.String())
		if r == 2 || r == 5 {
			fmt.Fprintln(w, gridMiddle)
		}
	}
	fmt.Fprintln(w, gridBottom)
}

func cellGlyph(v int) string {
	if v == 0 {
		return "."
	}
	return fmt.Sprint(v)
}

// renderPuzzle draws a board, blanks as dots.
func renderPuzzle(w io.Writer, b puzzle.Board) {
	renderGrid(w, func(r, c int) string {
		return cellGlyph(b[r][c])
	})
}

// renderSolution draws a solved board, coloring the cells that
// were blank in the puzzle it was solved from.
func renderSolution(w io.Writer, given, solved puzzle.Board) {
	au := aurora.NewAurora(terminal(w))
	renderGrid(w, func(r, c int) string {
		if given[r][c] == 0 {
			return au.Green(cellGlyph(solved[r][c])).String()
		}
		return cellGlyph(solved[r][c])
	})
}
