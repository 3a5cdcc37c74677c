package cubesim

import (
	"context"
	"fmt"
)

// SolveResult carries the outcome of an asynchronous solve.
// Exactly one of Solution or Err is meaningful: on success Solution holds
// the move sequence (empty for an already-solved cube), otherwise Err is
// ErrNoSolution, ErrSolveCancelled, or wraps ErrSolverInternal.
type SolveResult struct {
	Solution []Move
	Err      error
}

// SolveTask runs a solve on its own goroutine. It owns a deep copy of the
// cube taken at construction, so the caller's cube may keep mutating while
// the search runs.
//
// Cancellation is cooperative through the context passed to Run: the search
// polls it and stops within one recursive step of it being done.
type SolveTask struct {
	cube     *Cube
	maxDepth int
	depths   chan int
	result   chan SolveResult
}

// NewSolveTask prepares a solve of a snapshot of c up to maxDepth.
func NewSolveTask(c *Cube, maxDepth int) *SolveTask {
	return &SolveTask{
		cube:     c.Clone(),
		maxDepth: maxDepth,
		depths:   make(chan int, 1),
		result:   make(chan SolveResult, 1),
	}
}

// Depths streams the depth limit currently being attempted, one value per
// iterative-deepening iteration. Progress is best-effort: if the receiver
// lags, intermediate depths are dropped rather than stalling the search.
// The channel is closed when the task finishes.
func (t *SolveTask) Depths() <-chan int {
	return t.depths
}

// Result delivers exactly one SolveResult when the search ends. The channel
// is buffered, so the task never blocks on an absent receiver.
func (t *SolveTask) Result() <-chan SolveResult {
	return t.result
}

// Run starts the search goroutine. It must be called at most once.
func (t *SolveTask) Run(ctx context.Context) {
	go func() {
		res := t.search(ctx)
		close(t.depths)
		t.result <- res
	}()
}

// search runs the solve and converts any panic into a SolveResult error,
// so a failing search always reports back instead of killing the goroutine
// silently.
func (t *SolveTask) search(ctx context.Context) (res SolveResult) {
	defer func() {
		if r := recover(); r != nil {
			res = SolveResult{Err: fmt.Errorf("%w: %v", ErrSolverInternal, r)}
		}
	}()

	solution, err := Solve(t.cube, t.maxDepth,
		WithDepthCallback(func(depth int) {
			select {
			case t.depths <- depth:
			default:
			}
		}),
		WithCancel(func() bool {
			return ctx.Err() != nil
		}),
	)
	return SolveResult{Solution: solution, Err: err}
}
