package cubesim

import (
	"errors"
	"testing"
)

func TestSolveAlreadySolved(t *testing.T) {
	c := NewCube()
	solution, err := Solve(c, 6)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution == nil {
		t.Fatal("solved cube should yield an empty, non-nil solution")
	}
	if len(solution) != 0 {
		t.Errorf("solved cube should need 0 moves, got %v", solution)
	}
}

func TestSolveSingleMove(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)

	solution, err := Solve(c, 3)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(solution) != 1 {
		t.Fatalf("R scramble should solve in 1 move, got %v", solution)
	}
	if solution[0] != RPrime {
		t.Errorf("expected R', got %v", solution[0])
	}
}

func TestSolveSexyScramble(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}

	solution, err := Solve(c, 6)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// Soundness: the returned sequence must actually solve the cube, and
	// the caller's state must not have been touched by the search.
	if c.IsSolved() {
		t.Fatal("Solve must not mutate the input cube")
	}
	c.Apply(solution...)
	if !c.IsSolved() {
		t.Errorf("solution %v does not solve the scramble", solution)
		t.Log(c.String())
	}
}

func TestSolveFindsMinimalDepthFirst(t *testing.T) {
	c := NewCube()
	c.ApplyMove(F2)

	solution, err := Solve(c, 6)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(solution) != 1 {
		t.Errorf("F2 should solve in 1 move (F2), got %v", solution)
	}
}

func TestSolveNoSolutionWithinDepth(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}
	_, err := Solve(c, 1)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("want ErrNoSolution at depth 1, got %v", err)
	}
}

func TestSolveInvalidDepth(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)
	for _, depth := range []int{0, -3} {
		if _, err := Solve(c, depth); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("Solve(depth=%d): want ErrInvalidDepth, got %v", depth, err)
		}
	}
}

func TestSolveDepthCallbackCountsUp(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}

	var depths []int
	_, err := Solve(c, 4, WithDepthCallback(func(d int) {
		depths = append(depths, d)
	}))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(depths) == 0 || depths[0] != 1 {
		t.Fatalf("depth reporting should start at 1, got %v", depths)
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] != depths[i-1]+1 {
			t.Fatalf("depths should increase by 1, got %v", depths)
		}
	}
	if depths[len(depths)-1] != 2 {
		t.Errorf("a 2-move scramble should be found at depth 2, reported %v", depths)
	}
}

func TestSolveImmediateCancel(t *testing.T) {
	c := NewCube()
	c.ApplyNotation("R U R' U'")

	_, err := Solve(c, 10, WithCancel(func() bool { return true }))
	if !errors.Is(err, ErrSolveCancelled) {
		t.Errorf("want ErrSolveCancelled, got %v", err)
	}
}

func TestSolveCancelMidSearch(t *testing.T) {
	c := NewCube()
	scramble, _ := GenerateScramble(12, WithSeed(99))
	c.Apply(scramble...)

	// Cancel after a handful of cancellation polls.
	polls := 0
	_, err := Solve(c, 10, WithCancel(func() bool {
		polls++
		return polls > 50
	}))
	if !errors.Is(err, ErrSolveCancelled) {
		t.Errorf("want ErrSolveCancelled, got %v", err)
	}
}

func TestSolvePruningStillFindsKnownSolutions(t *testing.T) {
	// Scrambles whose shortest inverses touch the pruned patterns' faces;
	// pruning must not lose the minimal depth.
	cases := []struct {
		scramble string
		depth    int
	}{
		{"R2", 1},
		{"R U", 2},
		{"F D'", 2},
		{"L2 B", 2},
		{"R U F", 3},
	}
	for _, tc := range cases {
		c := NewCube()
		if err := c.ApplyNotation(tc.scramble); err != nil {
			t.Fatalf("scramble %q failed: %v", tc.scramble, err)
		}
		solution, err := Solve(c, tc.depth)
		if err != nil {
			t.Errorf("scramble %q: Solve failed at depth %d: %v", tc.scramble, tc.depth, err)
			continue
		}
		check := c.Clone()
		check.Apply(solution...)
		if !check.IsSolved() {
			t.Errorf("scramble %q: solution %v does not solve", tc.scramble, solution)
		}
	}
}
