package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmolinar/cubesim"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleShow  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble sequence",
	Long: `Generate a random scramble: outer-face moves only, never repeating the
same face twice in a row. Use --seed for a reproducible sequence.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 25, "Number of moves to generate")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Seed for reproducible scrambles (0 = random)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Show the scrambled cube")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	var opts []cubesim.ScrambleOption
	if scrambleSeed != 0 {
		opts = append(opts, cubesim.WithSeed(scrambleSeed))
	}

	moves, err := cubesim.GenerateScramble(scrambleMoves, opts...)
	if err != nil {
		return err
	}

	fmt.Println(cubesim.FormatMoves(moves))

	if scrambleShow {
		cube := cubesim.NewCube()
		cube.Apply(moves...)
		fmt.Println()
		fmt.Print(renderNet(cube))
	}

	return nil
}
