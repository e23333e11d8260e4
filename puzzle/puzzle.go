// Package puzzle provides a model for standard 9x9 Sudoku puzzles
// and operations on them: consistency checking, solving, and
// puzzle generation.
//
// In this package, a puzzle is a Board of cells which are either
// empty (represented with a 0 value) or hold a digit between 1
// and 9 (inclusive).  Cells are designated by 0-based row and
// column coordinates, rows running top to bottom and columns left
// to right.
//
// Every cell belongs to three groups of cells that together must
// contain one of each digit: its row, its column, and its 3x3
// box.  A board is consistent when no group contains a duplicate
// digit.  For each empty cell the package can compute the set of
// candidate digits the cell can hold without conflicting with its
// groups; candidates are derived from the current cell values on
// demand and never cached, so they are always current.
//
// Boards are plain values.  Assigning a Board copies it, and no
// operation in this package retains a caller's Board between
// calls.
package puzzle

/*

Boards

*/

// Dimensions of the boards this package works with.
const (
	SideLength = 9                       // cells per row, column, and box
	BoxSize    = 3                       // side length of a box
	CellCount  = SideLength * SideLength // cells per board
)

// A Board is a 9x9 grid of cells.  A cell value of 0 means the
// cell is empty; values 1 through 9 are assigned digits.  The
// zero Board is a valid, fully empty board.
//
// Board is an array type, so in-package code and trusting callers
// can index cells directly.  The accessor methods add the bounds
// and value checking that external callers need.
type Board [SideLength][SideLength]int

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Get returns the value of the cell at the given coordinates: 0
// for an empty cell, otherwise the assigned digit.  Coordinates
// outside [0,9) give an argument Error.
func (b *Board) Get(row, col int) (int, error) {
	if err := checkCoords(row, col); err != nil {
		return 0, err
	}
	return b[row][col], nil
}

// Set assigns a value to the cell at the given coordinates; a
// value of 0 empties the cell.  Coordinates outside [0,9) or
// values outside [0,9] give an argument Error.  Set does not
// check the assignment against the cell's groups: callers may
// legitimately place a conflicting digit and then probe it with
// Consistent.
func (b *Board) Set(row, col, val int) error {
	if err := checkCoords(row, col); err != nil {
		return err
	}
	if val < 0 || val > SideLength {
		return rangeError(ValueAttribute, val, 0, SideLength)
	}
	b[row][col] = val
	return nil
}

// Consistent reports whether the digit at the given coordinates,
// if any, duplicates no other digit in its row, column, or box.
// Empty cells are always consistent.  Coordinates outside [0,9)
// give an argument Error.
func (b *Board) Consistent(row, col int) (bool, error) {
	if err := checkCoords(row, col); err != nil {
		return false, err
	}
	return b.consistentAt(row, col), nil
}

// Complete reports whether every cell holds a digit and the whole
// board is consistent.
func (b *Board) Complete() bool {
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			if b[r][c] == 0 {
				return false
			}
		}
	}
	return b.consistent()
}

// Candidates returns the digits that can be placed at the given
// coordinates without duplicating a digit in the cell's row,
// column, or box.  The result is in ascending order and shares no
// storage with the board.  A filled cell has no candidates.
// Coordinates outside [0,9) give an argument Error.
func (b *Board) Candidates(row, col int) ([]int, error) {
	if err := checkCoords(row, col); err != nil {
		return nil, err
	}
	return b.candidatesAt(row, col), nil
}

/*

Unchecked internals.  Callers guarantee coordinates are in range.

*/

// consistentAt: does the digit at (row, col), if present, avoid
// duplicating any peer in its row, column, or box?
func (b *Board) consistentAt(row, col int) bool {
	v := b[row][col]
	if v == 0 {
		return true
	}
	for i := 0; i < SideLength; i++ {
		if i != col && b[row][i] == v {
			return false
		}
		if i != row && b[i][col] == v {
			return false
		}
	}
	br, bc := row/BoxSize*BoxSize, col/BoxSize*BoxSize
	for r := br; r < br+BoxSize; r++ {
		for c := bc; c < bc+BoxSize; c++ {
			if (r != row || c != col) && b[r][c] == v {
				return false
			}
		}
	}
	return true
}

// consistent: is every filled cell of the board consistent?
func (b *Board) consistent() bool {
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			if !b.consistentAt(r, c) {
				return false
			}
		}
	}
	return true
}

// candidatesAt computes the candidate set for a cell: the digits
// absent from the union of the cell's row, column, and box.
// Filled cells have an empty candidate set.
func (b *Board) candidatesAt(row, col int) intset {
	if b[row][col] != 0 {
		return intset{}
	}
	cands := newIntsetRange(SideLength)
	for i := 0; i < SideLength; i++ {
		cands.remove(b[row][i])
		cands.remove(b[i][col])
	}
	br, bc := row/BoxSize*BoxSize, col/BoxSize*BoxSize
	for r := br; r < br+BoxSize; r++ {
		for c := bc; c < bc+BoxSize; c++ {
			cands.remove(b[r][c])
		}
	}
	return cands
}

// checkCoords validates a cell coordinate pair.
func checkCoords(row, col int) error {
	if row < 0 || row >= SideLength {
		return rangeError(RowAttribute, row, 0, SideLength-1)
	}
	if col < 0 || col >= SideLength {
		return rangeError(ColumnAttribute, col, 0, SideLength-1)
	}
	return nil
}

/*

Integer sets

*/

// An intset is a set of small integers, represented as a sorted
// slice.  We use intsets to represent candidate digit sets.
type intset []int

// newIntsetRange: make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
