package cubesim

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidMove = errors.New("cubesim: invalid move notation")

	// Scramble errors
	ErrInvalidScrambleLength = errors.New("cubesim: scramble length must be positive")

	// Solver errors
	ErrInvalidDepth   = errors.New("cubesim: max depth must be positive")
	ErrNoSolution     = errors.New("cubesim: no solution within depth limit")
	ErrSolveCancelled = errors.New("cubesim: solve cancelled")
	ErrSolverInternal = errors.New("cubesim: solver internal failure")
)

// invalidMoveError wraps ErrInvalidMove with the offending token.
func invalidMoveError(token string) error {
	return fmt.Errorf("%w: %q", ErrInvalidMove, token)
}
