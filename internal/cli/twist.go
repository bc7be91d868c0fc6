package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube2x2/internal/board"
	"github.com/ehrlich-b/cube2x2/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result.

Examples:
  cube2x2 twist "R U R' U'"
  cube2x2 twist "F R U' R' F'" --board`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useBoardOutput, _ := cmd.Flags().GetBool("board")
		startBoard, _ := cmd.Flags().GetString("start")
		recoverOrientation, _ := cmd.Flags().GetBool("recover-orientation")

		var c cube.State
		if startBoard != "" {
			parsed, err := board.Parse(startBoard)
			if err != nil {
				fmt.Printf("Error parsing starting board: %v\n", err)
				os.Exit(1)
			}
			c = parsed
		} else {
			c = cube.Solved()
		}

		if !useBoardOutput {
			fmt.Printf("Applying moves: %s\n", moves)
		}

		parsedMoves, err := cube.ParseScramble(moves)
		if err != nil {
			if !useBoardOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		c = cube.ApplyMoves(c, parsedMoves)

		if recoverOrientation {
			solution := cube.Solve(c, cube.DefaultMaxDepthColorOnly, cube.ColorOnly)
			if !solution.Found {
				fmt.Println("Could not recover orientation: no color-only solution found")
				os.Exit(1)
			}
			recovered, err := c.ApplyOrientationSolution(solution)
			if err != nil {
				fmt.Printf("Error recovering orientation: %v\n", err)
				os.Exit(1)
			}
			c = recovered
		}

		if useBoardOutput {
			fmt.Print(board.Format(c))
			return
		}

		fmt.Printf("\nCube state after applying moves:\n%s\n", board.Format(c))
		fmt.Printf("Moves applied: %d\n", len(parsedMoves))

		if c.IsFullyOriented() {
			fmt.Println("Status: SOLVED (fully oriented)")
		} else if c.IsColorSolved() {
			fmt.Println("Status: color-solved, orientation scrambled")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().Bool("board", false, "Output final cube state in board format")
	twistCmd.Flags().String("start", "", "Starting cube state in board format (default: solved)")
	twistCmd.Flags().Bool("recover-orientation", false, "Recover full orientation from a color-only solve")
}
