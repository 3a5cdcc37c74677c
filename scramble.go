package cubesim

import "math/rand"

// scrambleFaces is the outer-face alphabet scrambles draw from. Slice moves
// are excluded so a scramble can always be undone with the solver's own
// move alphabet.
var scrambleFaces = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

var scrambleTurns = [3]Turn{CW, CCW, Double}

// GenerateScramble produces n random moves, never picking the same face as
// the immediately preceding move (so no trivially canceling pairs like
// "U U'"). Returns ErrInvalidScrambleLength for n <= 0.
func GenerateScramble(n int, opts ...ScrambleOption) ([]Move, error) {
	if n <= 0 {
		return nil, ErrInvalidScrambleLength
	}

	var cfg scrambleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	seed := cfg.seed
	if !cfg.hasSeed {
		// The global source is seeded by the runtime, so consecutive
		// unseeded scrambles differ.
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := make([]Move, 0, n)
	var lastFace Face

	for i := 0; i < n; i++ {
		candidates := make([]Face, 0, len(scrambleFaces))
		for _, f := range scrambleFaces {
			if f != lastFace {
				candidates = append(candidates, f)
			}
		}
		face := candidates[rng.Intn(len(candidates))]
		lastFace = face

		moves = append(moves, Move{
			Face: face,
			Turn: scrambleTurns[rng.Intn(len(scrambleTurns))],
		})
	}

	return moves, nil
}

// GenerateScrambleText is GenerateScramble formatted as a notation string.
func GenerateScrambleText(n int, opts ...ScrambleOption) (string, error) {
	moves, err := GenerateScramble(n, opts...)
	if err != nil {
		return "", err
	}
	return FormatMoves(moves), nil
}
