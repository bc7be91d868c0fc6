package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube2x2/internal/board"
	"github.com/ehrlich-b/cube2x2/internal/cube"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble and show the resulting state",
	Long: `Scramble applies n uniformly random quarter-turn moves to a solved
cube and prints both the move sequence and the resulting board state.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("moves")
		useBoardOutput, _ := cmd.Flags().GetBool("board")

		result, moves := cube.Scramble(cube.Solved(), n)

		if useBoardOutput {
			fmt.Print(board.Format(result))
			return
		}

		fmt.Printf("Scramble: %s\n\n", cube.FormatMoves(moves))
		fmt.Print(board.Format(result))
	},
}

func init() {
	scrambleCmd.Flags().IntP("moves", "n", 20, "Number of random quarter-turn moves to apply")
	scrambleCmd.Flags().Bool("board", false, "Output only the resulting board state")
}
