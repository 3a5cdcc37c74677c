package cubesim

// The solver is iterative-deepening depth-first search over the 18 outer
// face moves. It is a brute-force bounded search for lightly scrambled
// states, not a general solving algorithm: cost grows roughly geometrically
// with depth, so keep maxDepth small (6-10 is practical).

// solveAlphabet is the fixed move alphabet the solver searches over.
// Slice moves are excluded; any slice effect is expressible with outer
// face moves plus a whole-cube reorientation, which the search ignores.
var solveAlphabet = [18]Move{
	U, UPrime, U2,
	D, DPrime, D2,
	L, LPrime, L2,
	R, RPrime, R2,
	F, FPrime, F2,
	B, BPrime, B2,
}

// Solve searches for a move sequence that solves the cube, trying depth
// limits from 1 up to maxDepth. The cube itself is never mutated; the
// search works on clones.
//
// An already-solved cube yields an empty, non-nil sequence. A search that
// exhausts maxDepth returns ErrNoSolution; a cancelled one returns
// ErrSolveCancelled (a normal termination, distinguishable from not-found).
//
// The returned sequence is the shortest found under the search's pruning
// rules: no two consecutive moves of the same face, and never the exact
// inverse of the previous move. Both prunings are safe: any sequence using
// a pruned branch reduces to a shorter or equal one without it, so the
// minimal depth is still reachable.
func Solve(c *Cube, maxDepth int, opts ...SolveOption) ([]Move, error) {
	if maxDepth <= 0 {
		return nil, ErrInvalidDepth
	}

	var cfg solveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if c.IsSolved() {
		return []Move{}, nil
	}

	start := c.Clone()
	startSnapshot := start.Snapshot()

	for depthLimit := 1; depthLimit <= maxDepth; depthLimit++ {
		if cfg.cancelled() {
			return nil, ErrSolveCancelled
		}
		if cfg.onDepth != nil {
			cfg.onDepth(depthLimit)
		}

		path := make([]Move, 0, depthLimit)
		seenOnPath := map[Snapshot]struct{}{startSnapshot: {}}

		solution, err := dfs(start, depthLimit, &path, seenOnPath, nil, &cfg)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}
	}

	return nil, ErrNoSolution
}

// dfs runs a depth-bounded search from the given state. It returns the
// solving path if one exists within the remaining depth, nil if not, and
// ErrSolveCancelled if the cancel predicate fired. On return, path and
// seenOnPath are exactly as they were on entry.
func dfs(c *Cube, remaining int, path *[]Move, seenOnPath map[Snapshot]struct{}, last *Move, cfg *solveConfig) ([]Move, error) {
	if cfg.cancelled() {
		return nil, ErrSolveCancelled
	}

	if c.IsSolved() {
		solution := make([]Move, len(*path))
		copy(solution, *path)
		return solution, nil
	}

	if remaining == 0 {
		return nil, nil
	}

	for _, mv := range solveAlphabet {
		// Prune 1: never repeat the previous move's face (U then U/U'/U2
		// always collapses to a single U-face move).
		if last != nil && mv.Face == last.Face {
			continue
		}
		// Prune 2: never immediately undo the previous move. Subsumed by
		// prune 1 on this alphabet, kept as an explicit guard.
		if last != nil && last.Inverse() == mv {
			continue
		}

		child := c.Clone()
		child.ApplyMove(mv)
		snap := child.Snapshot()

		// Cycle avoidance within the current branch only: states reachable
		// again via a different branch stay searchable.
		if _, seen := seenOnPath[snap]; seen {
			continue
		}

		*path = append(*path, mv)
		seenOnPath[snap] = struct{}{}

		solution, err := dfs(child, remaining-1, path, seenOnPath, &mv, cfg)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}

		// Backtrack
		delete(seenOnPath, snap)
		*path = (*path)[:len(*path)-1]
	}

	return nil, nil
}
