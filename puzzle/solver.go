package puzzle

import (
	"math/rand"
	"time"
)

/*

Sudoku puzzle solver

The solver is a depth-first backtracking search over the empty
cells of a board:

1. If the board has a filled cell that conflicts with one of its
groups, the board cannot be solved.  Stop.

2. Pick the empty cell with the fewest candidate digits.  Any
order of choosing works; to keep solving deterministic this
implementation breaks ties in reading order.  If there are no
empty cells, the board is solved.  Stop.

3. If the chosen cell has no candidates, this branch of the
search cannot lead to a solution.  Backtrack.

4. Place each candidate in the chosen cell in turn and recurse on
the remaining empty cells.  If the recursion fails, empty the
cell again before trying the next candidate.

Choosing the most constrained cell first keeps the search tree
small: a cell with one candidate costs nothing to try, and a cell
with none prunes the branch immediately.

The same search counts solutions instead of stopping at the first
one: when a solution is found, record it and backtrack as if the
branch had failed.  Counting stops early once the caller's limit
is reached, so a limit of 2 is enough to separate uniquely
solvable boards from ambiguous ones.

*/

// Solve completes a board in place, or proves that no completion
// exists.  On success the board holds a full, consistent
// solution; on failure the board is exactly as it was passed in
// (every speculative placement rolled back) and the returned
// Error satisfies IsUnsolvable.  An unsolvable board is an
// expected outcome, not a fault.
//
// Solving an already complete, consistent board succeeds and
// leaves it unchanged.  Solve is deterministic: the same board
// always yields the same solution.
func Solve(b *Board) error {
	return solveOrdered(b, nil)
}

// SolveRandom is Solve with the candidate order at every cell
// shuffled by the given random source, so that solving an empty
// (or sparse) board yields a different solution per source state.
// The generator uses this to build fresh solved grids.  A nil
// source gets seeded from the clock; pass an explicit source for
// reproducible results.
func SolveRandom(b *Board, rnd *rand.Rand) error {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return solveOrdered(b, func(cands intset) {
		rnd.Shuffle(len(cands), func(i, j int) {
			cands[i], cands[j] = cands[j], cands[i]
		})
	})
}

// CountSolutions counts the distinct completions of a board,
// stopping early once limit is reached, so the return value is
// min(limit, actual count).  The board is left as it was passed
// in.  An inconsistent or non-positive-limit call counts zero
// solutions.
func CountSolutions(b *Board, limit int) int {
	if limit <= 0 || !b.consistent() {
		return 0
	}
	return countCompletions(b, limit)
}

// solveOrdered runs the search with an optional candidate
// reordering hook, after rejecting boards that are inconsistent
// before the search even starts.
func solveOrdered(b *Board, order func(intset)) error {
	if !b.consistent() {
		return unsolvableError()
	}
	if !complete(b, order) {
		return unsolvableError()
	}
	return nil
}

// complete recursively fills the empty cells of a consistent
// board, returning whether it succeeded.  On failure the board is
// restored to its state at entry.
func complete(b *Board, order func(intset)) bool {
	row, col, cands, empty := mostConstrained(b)
	if !empty {
		return true
	}
	if order != nil {
		order(cands)
	}
	for _, v := range cands {
		b[row][col] = v
		if complete(b, order) {
			return true
		}
		b[row][col] = 0
	}
	return false
}

// countCompletions is the counting variant of complete: it keeps
// searching past each solution found, up to limit.  The board is
// restored to its state at entry.
func countCompletions(b *Board, limit int) int {
	row, col, cands, empty := mostConstrained(b)
	if !empty {
		return 1
	}
	count := 0
	for _, v := range cands {
		b[row][col] = v
		count += countCompletions(b, limit-count)
		b[row][col] = 0
		if count >= limit {
			break
		}
	}
	return count
}

// mostConstrained finds the empty cell with the fewest candidate
// digits, ties broken in reading order, and returns the cell, its
// candidates, and whether an empty cell exists at all.  A cell
// with a single candidate is returned immediately, since nothing
// can beat it; a cell with none is returned immediately too,
// because the caller must prune this branch.
func mostConstrained(b *Board) (row, col int, cands intset, empty bool) {
	best := SideLength + 1
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			if b[r][c] != 0 {
				continue
			}
			cs := b.candidatesAt(r, c)
			if len(cs) < best {
				row, col, cands, empty = r, c, cs, true
				best = len(cs)
				if best <= 1 {
					return
				}
			}
		}
	}
	return
}
