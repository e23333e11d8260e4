package puzzle

import (
	"math/rand"
	"time"
)

/*

Sudoku puzzle generator

A puzzle is generated backwards: first a complete solved board is
built by running the solver on an empty grid with a randomized
candidate order, then cells are carved out of it one at a time.
Each removal must leave the puzzle with exactly one solution; a
removal that doesn't is put back and another cell is tried.  The
difficulty preset decides how many cells the generator tries to
blank.

*/

// A Difficulty selects how many cells the generator blanks.  The
// recognized presets are Easy, Medium, and Hard.
type Difficulty string

// The recognized difficulty presets.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// blankTargets maps each preset to the number of cells the
// generator tries to remove from the solved grid.
var blankTargets = map[Difficulty]int{
	Easy:   36,
	Medium: 46,
	Hard:   54,
}

// Difficulties returns the recognized presets, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// A Generated is the result of generating a puzzle: the puzzle
// itself, the solved grid it was carved from (which callers need
// for hints and for revealing the solution), and the number of
// cells actually blanked.
//
// Removed can fall short of the difficulty's target: at high
// targets there may be no cell left whose removal keeps the
// solution unique, and the generator then returns the best
// achievable puzzle rather than failing.  Callers that care
// should compare Removed against the target they asked for.
type Generated struct {
	Puzzle   Board `json:"puzzle"`
	Solution Board `json:"solution"`
	Removed  int   `json:"removed"`
}

// Generate produces a puzzle at the requested difficulty.  The
// puzzle is guaranteed to have exactly one solution, namely the
// returned Solution board.  An unrecognized difficulty gives an
// Error satisfying IsUnknownDifficulty.
//
// Randomness comes from the given source, so a fixed seed
// reproduces the same puzzle.  A nil source gets seeded from the
// clock.
func Generate(d Difficulty, rnd *rand.Rand) (*Generated, error) {
	target, ok := blankTargets[d]
	if !ok {
		return nil, difficultyError(d)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// A full random solution.  An empty grid always solves, so a
	// failure here is a solver bug, not an expected outcome.
	var solution Board
	if err := SolveRandom(&solution, rnd); err != nil {
		return nil, err
	}

	// Carve cells out of a copy in one shuffled pass, keeping
	// each removal only if the puzzle still has exactly one
	// completion.  Visiting every cell at most once bounds the
	// work: once a removal is rejected it would be rejected again
	// later, with fewer givens, too.
	gen := &Generated{Puzzle: solution, Solution: solution}
	for _, pos := range rnd.Perm(CellCount) {
		if gen.Removed >= target {
			break
		}
		row, col := pos/SideLength, pos%SideLength
		digit := gen.Puzzle[row][col]
		gen.Puzzle[row][col] = 0
		if CountSolutions(&gen.Puzzle, 2) != 1 {
			gen.Puzzle[row][col] = digit
			continue
		}
		gen.Removed++
	}
	return gen, nil
}
