package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/black-fractal/sudoku/puzzle"
)

const exampleText = "530070000\n" +
	"600195000\n" +
	"098000060\n" +
	"800060003\n" +
	"400803001\n" +
	"700020006\n" +
	"060000280\n" +
	"000419005\n" +
	"000080079\n"

// run executes the CLI with the given arguments and input,
// returning its combined output.
func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "", "generate", "medium", "--seed", "1", "--sdk")
	require.NoError(t, err)

	// the emitted text is a well-formed, uniquely solvable puzzle
	b, err := puzzle.ParseBoard(out)
	require.NoError(t, err)
	assert.Equal(t, 1, puzzle.CountSolutions(&b, 2))

	// same seed, same puzzle
	again, err := run(t, "", "generate", "medium", "--seed", "1", "--sdk")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateCommandPretty(t *testing.T) {
	out, err := run(t, "", "generate", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated (easy)")
	assert.Contains(t, out, "cells blank")
	assert.Contains(t, out, "┌")
}

func TestGenerateCommandBadDifficulty(t *testing.T) {
	out, err := run(t, "", "generate", "fiendish")
	require.Error(t, err)
	assert.True(t, puzzle.IsUnknownDifficulty(err))
	assert.Contains(t, out, "fiendish")
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, exampleText, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "Input:")
	assert.Contains(t, out, "Solved:")
	assert.NotContains(t, out, "\x1b[", "no color codes off-terminal")
}

func TestSolveCommandUnsolvable(t *testing.T) {
	// two 5s in the top row; an expected outcome, not an error exit
	text := strings.Replace(exampleText, "530070000", "530070050", 1)
	out, err := run(t, text, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "No solution exists")
}

func TestSolveCommandParseError(t *testing.T) {
	_, err := run(t, "too\nshort\n", "solve")
	require.Error(t, err)
	assert.True(t, puzzle.IsParseError(err))
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "", "demo", "hard", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo puzzle (hard)")
	assert.Contains(t, out, "Solution:")
	assert.NotContains(t, out, "\x1b[")
}
