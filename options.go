package skipset

import (
	randv2 "math/rand/v2"
)

// Config holds the construction-time parameters of a SkipSet.
type Config struct {
	skipFactor uint64
	seed       uint64
	seeded     bool
	src        randv2.Source
}

// Option mutates a Config before the set is built.
type Option func(*Config)

func defaultConfig() Config {
	return Config{skipFactor: DefaultSkipFactor}
}

// WithSkipFactor sets the promotion denominator: a tower extends one more
// layer with probability 1/factor. Values below 2 are ignored and the
// default is kept.
func WithSkipFactor(factor int) Option {
	return func(c *Config) {
		if factor >= 2 {
			c.skipFactor = uint64(factor)
		}
	}
}

// WithSeed seeds the instance's random generator deterministically, making
// the physical layering reproducible across runs.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithRandSource injects the randomness source the set draws promotion
// flips from, overriding any seed. Intended for tests that need to shape
// tower heights.
func WithRandSource(src randv2.Source) Option {
	return func(c *Config) {
		c.src = src
	}
}
