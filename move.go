package cubesim

import "strings"

// Face represents a move target in standard notation: one of the six outer
// faces or one of the three middle slices.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	// Middle-slice moves. They rotate the layer between two opposite outer
	// faces and are valid in notation but excluded from scrambles and from
	// the solver's search alphabet.
	FaceE Face = "E" // Equator slice (between U and D)
	FaceM Face = "M" // Middle slice (between L and R)
	FaceS Face = "S" // Standing slice (between F and B)
)

// IsSlice reports whether the face is a middle-slice letter.
func (f Face) IsSlice() bool {
	return f == FaceE || f == FaceM || f == FaceS
}

// Turn represents the direction and magnitude of a layer turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move.
type Move struct {
	Face Face // Which layer to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, M, E'
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// quarterTurns returns how many clockwise quarter turns this move applies,
// normalized to 1..3.
func (m Move) quarterTurns() int {
	return (int(m.Turn)%4 + 4) % 4
}

// apostropheReplacer maps typographic apostrophe variants to the canonical
// ASCII apostrophe.
var apostropheReplacer = strings.NewReplacer("’", "'", "′", "'", "`", "'")

// ParseMove parses a standard notation token into a Move.
// Examples: R, R', R2, u, M', E2
//
// Typographic apostrophes are accepted and normalized, and the malformed
// suffix "2'" collapses to "2". Returns ErrInvalidMove for anything else.
func ParseMove(s string) (Move, error) {
	s = apostropheReplacer.Replace(strings.TrimSpace(s))
	if len(s) == 0 {
		return Move{}, ErrInvalidMove
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'E', 'e':
		face = FaceE
	case 'M', 'm':
		face = FaceM
	case 'S', 's':
		face = FaceS
	default:
		return Move{}, invalidMoveError(s)
	}

	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		case "2'":
			turn = Double // Same as 180
		default:
			return Move{}, invalidMoveError(s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
//
// Parsing is all-or-nothing: the first invalid token fails the whole
// sequence and no moves are returned.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// InverseMoves returns the sequence that undoes moves: each move inverted,
// in reverse order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
