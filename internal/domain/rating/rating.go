// Package rating implements the Elo update rule used by the ledger's
// replay walk. The calculator is pure: it holds configuration only and
// never touches player state.
package rating

import "math"

// Default rating constants.
const (
	// DefaultKFactor bounds the rating swing of a single game.
	DefaultKFactor = 32.0
	// DefaultBaseline is the rating assigned to a player with no games.
	DefaultBaseline = 1500.0
	// spread is the Elo logistic scale: a gap of one spread means the
	// stronger side is expected to score ~10x as often.
	spread = 400.0
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithKFactor overrides the K-factor. Non-positive values are ignored.
func WithKFactor(k float64) Option {
	return func(c *Calculator) {
		if k > 0 {
			c.k = k
		}
	}
}

// Calculator computes Elo deltas for one game outcome.
type Calculator struct {
	k float64
}

// New constructs a Calculator with default configuration.
func New(opts ...Option) *Calculator {
	c := &Calculator{k: DefaultKFactor}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KFactor returns the configured K-factor.
func (c *Calculator) KFactor() float64 {
	return c.k
}

// Expected returns the expected score of side A against side B.
func Expected(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/spread))
}

// TeamRating reduces member ratings to one effective side rating using
// the arithmetic mean. An empty side falls back to the baseline.
func TeamRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return DefaultBaseline
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}

// Update returns the signed rating deltas for both sides of a game.
// scoreA and scoreB are the raw match scores; only their comparison
// matters (win, draw, loss). Deltas are antisymmetric: deltaA == -deltaB.
func (c *Calculator) Update(ratingA, ratingB float64, scoreA, scoreB int) (deltaA, deltaB float64) {
	expectedA := Expected(ratingA, ratingB)
	actualA := outcome(scoreA, scoreB)
	deltaA = c.k * (actualA - expectedA)
	return deltaA, -deltaA
}

// outcome maps a score comparison to the Elo actual score for side A.
func outcome(scoreA, scoreB int) float64 {
	switch {
	case scoreA > scoreB:
		return 1.0
	case scoreA < scoreB:
		return 0.0
	default:
		return 0.5
	}
}
