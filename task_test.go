package cubesim

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSolveTaskSolvesScramble(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}

	task := NewSolveTask(c, 6)
	task.Run(context.Background())

	var depths []int
	for d := range task.Depths() {
		depths = append(depths, d)
	}
	res := <-task.Result()

	if res.Err != nil {
		t.Fatalf("task failed: %v", res.Err)
	}
	if len(depths) == 0 {
		t.Error("task should have reported at least one depth")
	}

	c.Apply(res.Solution...)
	if !c.IsSolved() {
		t.Errorf("task solution %v does not solve the scramble", res.Solution)
	}
}

func TestSolveTaskOwnsItsCopy(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)

	task := NewSolveTask(c, 3)

	// Mutate the caller's cube after the snapshot was taken; the task must
	// still solve the state it copied.
	c.ApplyNotation("U F2 D' L B2")

	task.Run(context.Background())
	res := <-task.Result()
	if res.Err != nil {
		t.Fatalf("task failed: %v", res.Err)
	}
	if len(res.Solution) != 1 || res.Solution[0] != RPrime {
		t.Errorf("expected [R'] for the snapshotted state, got %v", res.Solution)
	}
}

func TestSolveTaskCancellation(t *testing.T) {
	c := NewCube()
	scramble, _ := GenerateScramble(14, WithSeed(5))
	c.Apply(scramble...)

	ctx, cancel := context.WithCancel(context.Background())
	task := NewSolveTask(c, 10)
	task.Run(ctx)
	cancel()

	select {
	case res := <-task.Result():
		if !errors.Is(res.Err, ErrSolveCancelled) {
			t.Errorf("want ErrSolveCancelled, got %v", res.Err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("cancelled task did not finish in time")
	}
}

func TestSolveTaskReportsNotFound(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U F"); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}

	task := NewSolveTask(c, 1)
	task.Run(context.Background())
	res := <-task.Result()
	if !errors.Is(res.Err, ErrNoSolution) {
		t.Errorf("want ErrNoSolution, got %v", res.Err)
	}
}

func TestSolveTaskInvalidDepthSurfacesError(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)

	task := NewSolveTask(c, 0)
	task.Run(context.Background())
	res := <-task.Result()
	if !errors.Is(res.Err, ErrInvalidDepth) {
		t.Errorf("want ErrInvalidDepth, got %v", res.Err)
	}
}
