package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube2x2/internal/board"
	"github.com/ehrlich-b/cube2x2/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms a start state into a target state",
	Long: `Verify applies a move sequence to a start board state and checks whether
the result matches a target board state. Both states default to solved.

Examples:
  cube2x2 verify "R U R' U'" --start "$(cube2x2 scramble --board)"
  cube2x2 verify "R U R' U' U R U' R'"  # no-op check against solved`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]

		startRaw, _ := cmd.Flags().GetString("start")
		targetRaw, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")

		var start, target cube.State
		var err error

		if startRaw == "" {
			start = cube.Solved()
		} else if start, err = board.Parse(startRaw); err != nil {
			if !headless {
				fmt.Printf("Error parsing start board: %v\n", err)
			}
			os.Exit(1)
		}

		if targetRaw == "" {
			target = cube.Solved()
		} else if target, err = board.Parse(targetRaw); err != nil {
			if !headless {
				fmt.Printf("Error parsing target board: %v\n", err)
			}
			os.Exit(1)
		}

		if verbose && !headless {
			fmt.Printf("Start state:\n%s\n", board.Format(start))
		}

		moves, err := cube.ParseScramble(algorithm)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing algorithm: %v\n", err)
			}
			os.Exit(1)
		}

		result := cube.ApplyMoves(start, moves)

		if verbose && !headless {
			fmt.Printf("\nAfter algorithm (%s):\n%s\n", algorithm, board.Format(result))
		}

		if result.Colors() == target.Colors() {
			if !headless {
				fmt.Printf("PASS: algorithm transforms start into target state\n")
				fmt.Printf("Algorithm: %s\n", algorithm)
				fmt.Printf("Move count: %d\n", len(moves))
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Printf("FAIL: algorithm does not reach target state\n")
			fmt.Printf("Algorithm: %s\n", algorithm)
			if verbose {
				fmt.Printf("Actual:\n%s\n", board.Format(result))
				fmt.Printf("Target:\n%s\n", board.Format(target))
			}
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting board state (defaults to solved)")
	verifyCmd.Flags().String("target", "", "Target board state (defaults to solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states and transformations")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
