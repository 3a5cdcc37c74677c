// Package cubesim provides a 3x3 Rubik's cube simulator: a geometric
// facelet model of cube state, standard move notation, scramble
// generation, and an iterative-deepening solver for lightly scrambled
// states.
//
// # Quick Start
//
// Create a cube, scramble it, and solve it:
//
//	cube := cubesim.NewCube()
//
//	scramble, _ := cubesim.GenerateScramble(5, cubesim.WithSeed(42))
//	cube.Apply(scramble...)
//
//	solution, err := cubesim.Solve(cube, 6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube.Apply(solution...)
//	fmt.Println("Solved:", cube.IsSolved()) // true
//
// # Moves
//
// Moves use standard cube notation. Apply them from predefined constants:
//
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
// Or parse them from text:
//
//	cube.ApplyNotation("F B2 L' D M E2 S'")
//
// The alphabet covers the six outer faces (U D L R F B) and the three
// middle slices (E M S), each with the ', 2 and plain suffixes.
//
// # Solving in the background
//
// A search can take a while, so SolveTask runs it on its own goroutine
// against a private copy of the state, with progress and cancellation:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	task := cubesim.NewSolveTask(cube, 7)
//	task.Run(ctx)
//
//	for depth := range task.Depths() {
//	    fmt.Println("searching depth", depth)
//	}
//	res := <-task.Result()
//
// The solver is a bounded brute-force search with light pruning. It finds
// short solutions for short scrambles and legitimately gives up
// (ErrNoSolution) beyond its depth limit; it is not a Kociemba-style
// two-phase solver.
package cubesim
