package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmolinar/cubesim"
	"github.com/jmolinar/cubesim/internal/storage"
)

var (
	solveMaxDepth int
	solveTimeout  time.Duration
	solveRecord   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve \"SCRAMBLE\"",
	Short: "Search for a solution to a scrambled cube",
	Long: `Apply the given scramble to a solved cube, then search for a solving
sequence with iterative deepening up to --max-depth.

The search is brute force: it handles short scrambles well but cost grows
geometrically with depth. Depths beyond 8 or so can take a long time; use
--timeout to bound the wait.

Example:
  cubesim solve "R U R' U'" --max-depth 6`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 7, "Maximum search depth")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this long (0 = no timeout)")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record the attempt in the session database")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := args[0]

	cube := cubesim.NewCube()
	if err := cube.ApplyNotation(scramble); err != nil {
		return err
	}

	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	start := time.Now()
	task := cubesim.NewSolveTask(cube, solveMaxDepth)
	task.Run(ctx)

	for depth := range task.Depths() {
		fmt.Printf("Searching depth %d...\n", depth)
	}
	res := <-task.Result()
	elapsed := time.Since(start)

	outcome := storage.OutcomeSolved
	switch {
	case errors.Is(res.Err, cubesim.ErrNoSolution):
		outcome = storage.OutcomeNotFound
		fmt.Printf("No solution within depth %d (%s)\n", solveMaxDepth, elapsed.Round(time.Millisecond))
	case errors.Is(res.Err, cubesim.ErrSolveCancelled):
		outcome = storage.OutcomeCancelled
		fmt.Printf("Search cancelled after %s\n", elapsed.Round(time.Millisecond))
	case res.Err != nil:
		outcome = storage.OutcomeError
		fmt.Printf("Search failed: %v\n", res.Err)
	default:
		check := cube.Clone()
		check.Apply(res.Solution...)
		fmt.Printf("Solution (%d moves, %s): %s\n",
			len(res.Solution), elapsed.Round(time.Millisecond), cubesim.FormatMoves(res.Solution))
		fmt.Println("Verified:", check.IsSolved())
	}

	if solveRecord {
		if err := recordSession(scramble, res, outcome, elapsed); err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}
	}

	if res.Err != nil && outcome == storage.OutcomeError {
		return res.Err
	}
	return nil
}

func recordSession(scramble string, res cubesim.SolveResult, outcome string, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session := storage.Session{
		ScrambleText: scramble,
		MaxDepth:     solveMaxDepth,
		Outcome:      outcome,
	}
	durationMs := elapsed.Milliseconds()
	session.DurationMs = &durationMs

	if outcome == storage.OutcomeSolved {
		text := cubesim.FormatMoves(res.Solution)
		depth := len(res.Solution)
		session.SolutionText = &text
		session.SolutionDepth = &depth
	}

	id, err := storage.NewSessionRepository(db).Create(session)
	if err != nil {
		return err
	}
	fmt.Println("Recorded session:", id)
	return nil
}
