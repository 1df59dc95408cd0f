// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers an optional YAML file and env vars on top.
// - External errors are wrapped via this package's error kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// KFactor bounds the rating swing of a single game.
	KFactor float64 `koanf:"k_factor"`

	// BaselineRating is assigned to players with no games.
	BaselineRating float64 `koanf:"baseline_rating"`

	// MaxListLimit caps the limit parameter of list endpoints.
	MaxListLimit int `koanf:"max_list_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		KFactor:        32,
		BaselineRating: 1500,
		MaxListLimit:   100,
	}
}
