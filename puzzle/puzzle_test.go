package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*

Test Values

*/

// The classic Wikipedia example puzzle and its (unique) solution.
var (
	wikiStart = Board{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	wikiSolution = Board{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	// 5 appears twice in the top row
	duplicateRowValues = Board{
		{5, 3, 0, 0, 7, 0, 0, 5, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
)

func TestGetSet(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Set(0, 0, 5))
	v, err := b.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	// a 0 value empties the cell again
	require.NoError(t, b.Set(0, 0, 0))
	v, err = b.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestGetSetOutOfRange(t *testing.T) {
	b := NewBoard()
	for _, coords := range [][2]int{
		{-1, 0}, {9, 0}, {0, -1}, {0, 9}, {42, 42},
	} {
		_, err := b.Get(coords[0], coords[1])
		assert.True(t, IsOutOfRange(err), "Get(%d, %d): %v", coords[0], coords[1], err)
		err = b.Set(coords[0], coords[1], 1)
		assert.True(t, IsOutOfRange(err), "Set(%d, %d): %v", coords[0], coords[1], err)
	}
	assert.True(t, IsOutOfRange(b.Set(0, 0, 10)))
	assert.True(t, IsOutOfRange(b.Set(0, 0, -1)))
	assert.Equal(t, NewBoard(), b, "failed sets must not modify the board")
}

func TestSetAllowsConflicts(t *testing.T) {
	// Set does not enforce consistency: callers probe conflicts
	// by placing them and asking.
	b := NewBoard()
	require.NoError(t, b.Set(0, 0, 5))
	require.NoError(t, b.Set(0, 8, 5))
	ok, err := b.Consistent(0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = b.Consistent(0, 8)
	require.NoError(t, err)
	assert.False(t, ok)
	// an uninvolved cell is still consistent
	ok, err = b.Consistent(4, 4)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsistent(t *testing.T) {
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			ok, err := wikiSolution.Consistent(r, c)
			require.NoError(t, err)
			assert.True(t, ok, "cell (%d, %d) of a solved board", r, c)
		}
	}
	ok, err := duplicateRowValues.Consistent(0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = wikiSolution.Consistent(9, 0)
	assert.True(t, IsOutOfRange(err))
}

func TestComplete(t *testing.T) {
	assert.True(t, wikiSolution.Complete())
	assert.False(t, wikiStart.Complete(), "board with empty cells")
	empty := NewBoard()
	assert.False(t, empty.Complete())

	// fully filled but inconsistent is not complete
	bad := wikiSolution
	bad[0][0] = bad[0][1]
	assert.False(t, bad.Complete())
}

func TestCandidates(t *testing.T) {
	b := NewBoard()
	cands, err := b.Candidates(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, cands)

	// row has {5 3 7}, column has {8}, box has {5 3 6 9 8}
	cands, err = wikiStart.Candidates(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, cands)

	// a filled cell has no candidates
	cands, err = wikiStart.Candidates(0, 0)
	require.NoError(t, err)
	assert.Empty(t, cands)

	_, err = b.Candidates(0, 9)
	assert.True(t, IsOutOfRange(err))
}

func TestCandidatesAreRowColBoxComplement(t *testing.T) {
	// Candidates must equal {1..9} minus every digit visible from
	// the cell, for every empty cell of a partial board.
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			if wikiStart[r][c] != 0 {
				continue
			}
			seen := make(map[int]bool)
			for i := 0; i < SideLength; i++ {
				seen[wikiStart[r][i]] = true
				seen[wikiStart[i][c]] = true
			}
			br, bc := r/BoxSize*BoxSize, c/BoxSize*BoxSize
			for rr := br; rr < br+BoxSize; rr++ {
				for cc := bc; cc < bc+BoxSize; cc++ {
					seen[wikiStart[rr][cc]] = true
				}
			}
			var want []int
			for v := 1; v <= SideLength; v++ {
				if !seen[v] {
					want = append(want, v)
				}
			}
			cands, err := wikiStart.Candidates(r, c)
			require.NoError(t, err)
			assert.Equal(t, want, cands, "cell (%d, %d)", r, c)
		}
	}
}

func TestBoardsAreValues(t *testing.T) {
	a := wikiStart
	b := a
	require.NoError(t, b.Set(0, 2, 4))
	assert.Equal(t, 0, a[0][2], "assignment must copy the board")
}
