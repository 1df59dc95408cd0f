package ledger

import (
	"github.com/okian/volley/internal/domain/rating"
	"github.com/okian/volley/pkg/logger"
)

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithCalculator sets the rating calculator used by the replay walk.
func WithCalculator(c *rating.Calculator) Option {
	return func(l *Ledger) {
		if c != nil {
			l.calc = c
		}
	}
}

// WithBaselineRating sets the rating seeded for players with no games.
func WithBaselineRating(baseline float64) Option {
	return func(l *Ledger) {
		if baseline > 0 {
			l.baseline = baseline
		}
	}
}

// WithLogger sets a custom logger for the ledger.
func WithLogger(log logger.Logger) Option {
	return func(l *Ledger) {
		if log != nil {
			l.log = log
		}
	}
}
