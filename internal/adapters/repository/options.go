package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithBaselineRating sets the rating assigned to newly registered
// players. Non-positive values are ignored.
func WithBaselineRating(baseline float64) Option {
	return func(s *MemoryStore) {
		if baseline > 0 {
			s.baseline = baseline
		}
	}
}
