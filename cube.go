package cubesim

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace represents a cube face for the cube model.
// This is distinct from Face which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
//
// A Cube is not safe for concurrent use: one instance belongs to one
// goroutine at a time. The solver takes its own Clone, so the caller's
// cube may keep mutating while a search is in flight.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// Snapshot is a comparable copy of the full cube state, usable as a map key
// for visited-set tracking and state equality checks.
type Snapshot [6][9]Color

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return White
	}
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{Facelets: c.Facelets}
	return clone
}

// Snapshot returns a comparable value representing the full state.
func (c *Cube) Snapshot() Snapshot {
	return Snapshot(c.Facelets)
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for face := CubeFace(0); face < 6; face++ {
		expectedColor := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != expectedColor {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many times each color appears on the cube.
// On any reachable state every color appears exactly 9 times; moves permute
// stickers, they never recolor them.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			counts[c.Facelets[f][i]]++
		}
	}
	return counts
}

// ApplyMove applies a single move to the cube.
func (c *Cube) ApplyMove(m Move) {
	for t := m.quarterTurns(); t > 0; t-- {
		c.applyBaseMove(m.Face)
	}
}

// Apply applies a sequence of moves to the cube.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyNotation parses a whitespace-separated move sequence and applies it.
// The whole sequence is validated before any move is applied: on an invalid
// token the cube is left untouched and the parse error is returned.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
