package cubesim

// ScrambleOption configures scramble generation.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	seed    int64
	hasSeed bool
}

// WithSeed makes the scramble reproducible: the same seed and length always
// produce the same sequence. Without it, every call draws from a fresh
// random source.
func WithSeed(seed int64) ScrambleOption {
	return func(c *scrambleConfig) {
		c.seed = seed
		c.hasSeed = true
	}
}

// SolveOption configures a Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	onDepth      func(depth int)
	shouldCancel func() bool
}

// WithDepthCallback registers a progress callback invoked once per
// iterative-deepening iteration with the depth about to be searched.
// The callback runs on the searching goroutine and should return quickly.
func WithDepthCallback(fn func(depth int)) SolveOption {
	return func(c *solveConfig) {
		c.onDepth = fn
	}
}

// WithCancel registers a cancellation predicate. It is polled at the start
// of every depth iteration and every recursive search step; once it returns
// true the search stops and Solve returns ErrSolveCancelled.
func WithCancel(fn func() bool) SolveOption {
	return func(c *solveConfig) {
		c.shouldCancel = fn
	}
}

func (c *solveConfig) cancelled() bool {
	return c.shouldCancel != nil && c.shouldCancel()
}
