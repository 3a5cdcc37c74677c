package cubesim

import (
	"errors"
	"testing"
)

func TestScrambleLength(t *testing.T) {
	moves, err := GenerateScramble(25)
	if err != nil {
		t.Fatalf("GenerateScramble failed: %v", err)
	}
	if len(moves) != 25 {
		t.Errorf("got %d moves, want 25", len(moves))
	}
}

func TestScrambleRejectsNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1, -25} {
		if _, err := GenerateScramble(n); !errors.Is(err, ErrInvalidScrambleLength) {
			t.Errorf("GenerateScramble(%d): want ErrInvalidScrambleLength, got %v", n, err)
		}
	}
}

func TestScrambleNeverRepeatsFace(t *testing.T) {
	moves, err := GenerateScramble(200, WithSeed(1))
	if err != nil {
		t.Fatalf("GenerateScramble failed: %v", err)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("moves %d and %d repeat face %s", i-1, i, moves[i].Face)
		}
	}
}

func TestScrambleUsesOuterFacesOnly(t *testing.T) {
	moves, err := GenerateScramble(100, WithSeed(3))
	if err != nil {
		t.Fatalf("GenerateScramble failed: %v", err)
	}
	for _, m := range moves {
		if m.Face.IsSlice() {
			t.Fatalf("scramble contains slice move %s", m)
		}
	}
}

func TestScrambleSeedReproducible(t *testing.T) {
	a, err := GenerateScrambleText(25, WithSeed(42))
	if err != nil {
		t.Fatalf("GenerateScrambleText failed: %v", err)
	}
	b, err := GenerateScrambleText(25, WithSeed(42))
	if err != nil {
		t.Fatalf("GenerateScrambleText failed: %v", err)
	}
	if a != b {
		t.Errorf("seeded scrambles differ:\n%s\n%s", a, b)
	}
}

func TestScrambleUnseededVaries(t *testing.T) {
	a, _ := GenerateScrambleText(30)
	b, _ := GenerateScrambleText(30)
	if a == b {
		t.Error("two unseeded 30-move scrambles should not match")
	}
}
