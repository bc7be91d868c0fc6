package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/cube2x2/internal/board"
	"github.com/ehrlich-b/cube2x2/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled 2x2x2 cube",
	Long: `Solve runs a bidirectional breadth-first search from a starting cube
state to a solved state, either matching colors only or requiring full
orientation.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		mode, _ := cmd.Flags().GetBool("full-orientation")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		headless, _ := cmd.Flags().GetBool("headless")
		useBoardOutput, _ := cmd.Flags().GetBool("board")
		startBoard, _ := cmd.Flags().GetString("start")

		searchMode := cube.ColorOnly
		if mode {
			searchMode = cube.FullyOriented
		}
		if maxDepth <= 0 {
			if searchMode == cube.ColorOnly {
				maxDepth = cube.DefaultMaxDepthColorOnly
			} else {
				maxDepth = cube.DefaultMaxDepthFullyOriented
			}
		}

		var c cube.State
		if startBoard != "" {
			parsed, err := board.Parse(startBoard)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting board: %v\n", err)
				}
				os.Exit(1)
			}
			c = parsed
		} else {
			c = cube.Solved()
		}

		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			c = cube.ApplyMoves(c, moves)
		}

		if !headless {
			fmt.Printf("Solving 2x2x2 cube (max depth %d, full-orientation=%v)\n", maxDepth, mode)
			fmt.Printf("\nCube state before solving:\n%s\n", board.Format(c))
		}

		start := time.Now()
		result := cube.Solve(c, maxDepth, searchMode)
		elapsed := time.Since(start)

		if !result.Found {
			if !headless {
				fmt.Printf("No solution found within %d moves\n", maxDepth)
			}
			os.Exit(1)
		}

		solutionStr := cube.FormatMoves(result.Moves)
		final := cube.ApplyMoves(c, result.Moves)

		if useBoardOutput {
			fmt.Print(board.Format(final))
		} else if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Moves: %d\n", len(result.Moves))
			fmt.Printf("Time: %v\n", elapsed)
		}
	},
}

func init() {
	solveCmd.Flags().Bool("full-orientation", false, "Require sticker orientation to match a solved state, not just color")
	solveCmd.Flags().Int("max-depth", 0, "Maximum search depth (default: 11 color-only, 14 full-orientation)")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("board", false, "Output final cube state in board format instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state in board format (default: solved)")
}
