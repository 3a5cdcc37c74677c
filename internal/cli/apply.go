package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmolinar/cubesim"
)

var applyCmd = &cobra.Command{
	Use:   "apply \"SEQUENCE\"",
	Short: "Apply a move sequence to a solved cube and show the result",
	Long: `Apply a move sequence in standard notation to a freshly solved cube and
print the resulting state as a colored net.

Example:
  cubesim apply "R U R' U'"`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cube := cubesim.NewCube()
	if err := cube.ApplyNotation(args[0]); err != nil {
		return err
	}

	fmt.Print(renderNet(cube))
	fmt.Println()
	fmt.Println("Solved:", cube.IsSolved())
	return nil
}
