package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube2x2/internal/board"
	"github.com/ehrlich-b/cube2x2/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state after an optional scramble",
	Long: `Show displays the board-format state of a cube, optionally after
applying a scramble.

Examples:
  cube2x2 show
  cube2x2 show "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		c := cube.Solved()

		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				return
			}
			c = cube.ApplyMoves(c, moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		fmt.Print(board.Format(c))
	},
}
