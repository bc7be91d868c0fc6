package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube2x2",
	Short: "A 2x2x2 Rubik's cube solver",
	Long: `cube2x2 applies and solves moves on a 2x2x2 Rubik's cube using a
bidirectional breadth-first search over the sticker/permutation model.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
