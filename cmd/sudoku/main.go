// Command-line client for sudoku puzzle generation and solving.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/black-fractal/sudoku/puzzle"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Generate and solve Sudoku puzzles",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newSolveCommand())
	root.AddCommand(newDemoCommand())
	return root
}

// difficultyArg reads the optional positional difficulty,
// defaulting to easy.  Unrecognized labels are rejected by the
// generator itself.
func difficultyArg(args []string) puzzle.Difficulty {
	if len(args) > 0 {
		return puzzle.Difficulty(strings.ToLower(args[0]))
	}
	return puzzle.Easy
}

// newRand builds the random source for a generation command.  An
// explicit --seed makes the output reproducible; otherwise the
// clock seeds it.
func newRand(cmd *cobra.Command, seed int64) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newGenerateCommand() *cobra.Command {
	var seed int64
	var sdk bool
	cmd := &cobra.Command{
		Use:   "generate [difficulty]",
		Short: "Generate a new puzzle",
		Long: "Generate a new puzzle at the given difficulty (easy, medium, or hard;\n" +
			"default easy).  The puzzle is guaranteed to have exactly one solution.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := difficultyArg(args)
			gen, err := puzzle.Generate(d, newRand(cmd, seed))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sdk {
				fmt.Fprint(out, puzzle.FormatBoard(gen.Puzzle))
				return nil
			}
			fmt.Fprintf(out, "Generated (%s), %d cells blank:\n", d, gen.Removed)
			renderPuzzle(out, gen.Puzzle)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output (default: clock)")
	cmd.Flags().BoolVar(&sdk, "sdk", false, "emit the puzzle as .sdk text instead of a drawn grid")
	return cmd
}

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or standard input",
		Long: "Solve a puzzle in .sdk form: nine lines of nine characters, digits\n" +
			"for givens and '0' or '.' for blanks.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoard(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Input:")
			renderPuzzle(out, board)
			solved := board
			switch err := puzzle.Solve(&solved); {
			case err == nil:
				fmt.Fprintln(out, "\nSolved:")
				renderSolution(out, board, solved)
			case puzzle.IsUnsolvable(err):
				// an ordinary outcome, not a command failure
				fmt.Fprintln(out, "\nNo solution exists")
			default:
				return err
			}
			return nil
		},
	}
	return cmd
}

func newDemoCommand() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "demo [difficulty]",
		Short: "Generate a puzzle and show its solution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := difficultyArg(args)
			gen, err := puzzle.Generate(d, newRand(cmd, seed))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Demo puzzle (%s), %d cells blank:\n", d, gen.Removed)
			renderPuzzle(out, gen.Puzzle)
			fmt.Fprintln(out, "\nSolution:")
			renderSolution(out, gen.Puzzle, gen.Solution)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output (default: clock)")
	return cmd
}

// readBoard loads the .sdk text for the solve command, from the
// named file if there is one, otherwise from standard input.
func readBoard(cmd *cobra.Command, args []string) (puzzle.Board, error) {
	if len(args) > 0 {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return puzzle.Board{}, err
		}
		return puzzle.ParseBoard(string(text))
	}
	if terminal(cmd.InOrStdin()) {
		fmt.Fprintln(cmd.OutOrStdout(), "Enter 9 lines, each 9 characters (digits, with 0 or . for blanks):")
	}
	return puzzle.ParseBoard(readLines(cmd.InOrStdin()))
}

// readLines collects up to nine non-blank input lines; shape
// problems are left for ParseBoard to report.
func readLines(in io.Reader) string {
	var lines []string
	scanner := bufio.NewScanner(in)
	for len(lines) < puzzle.SideLength && scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
