package cubesim

import (
	"errors"
	"testing"
)

func TestParseMoveBasics(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u", U},
		{" F' ", FPrime},
		{"M", M},
		{"e2", E2},
		{"S'", SPrime},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.input)
		if err != nil {
			t.Errorf("ParseMove(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseMoveTypographicApostrophes(t *testing.T) {
	for _, input := range []string{"R’", "R′", "R`"} {
		got, err := ParseMove(input)
		if err != nil {
			t.Errorf("ParseMove(%q) failed: %v", input, err)
			continue
		}
		if got != RPrime {
			t.Errorf("ParseMove(%q) = %v, want R'", input, got)
		}
	}
}

func TestParseMoveCollapsesDoublePrime(t *testing.T) {
	got, err := ParseMove("D2'")
	if err != nil {
		t.Fatalf("ParseMove(D2') failed: %v", err)
	}
	if got != D2 {
		t.Errorf("ParseMove(D2') = %v, want D2", got)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, input := range []string{"", "Q", "R3", "R''", "X2", "2R"} {
		if _, err := ParseMove(input); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q): want ErrInvalidMove, got %v", input, err)
		}
	}
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("R U2 F'")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	want := []Move{R, U2, FPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesFailFast(t *testing.T) {
	moves, err := ParseMoves("R U Q F")
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("want ErrInvalidMove, got %v", err)
	}
	if moves != nil {
		t.Errorf("no moves should be returned on a bad sequence, got %v", moves)
	}
}

func TestMoveInverse(t *testing.T) {
	tests := []struct {
		move Move
		want Move
	}{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{E, EPrime},
		{M2, M2},
	}
	for _, tt := range tests {
		if got := tt.move.Inverse(); got != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.move, got, tt.want)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	moves := []Move{U, UPrime, U2, RPrime, F2, E, MPrime, S2}
	text := FormatMoves(moves)
	parsed, err := ParseMoves(text)
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if FormatMoves(parsed) != text {
		t.Errorf("round trip mismatch: %q vs %q", FormatMoves(parsed), text)
	}
}

func TestFormatMovesEmpty(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}
