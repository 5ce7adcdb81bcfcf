// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts caps the number of endpoint draws the rejection sampler may
// make. 0 restores the default (no cap). Panics if k < 0.
func WithMaxAttempts(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithMaxAttempts(k<0)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = k
	}
}

// WithDenseSampling sets the density M/(N(N-1)/2) above which the builder
// switches from rejection sampling to sampling the complement directly.
// A threshold of 1 keeps rejection sampling for every target.
// Panics unless 0 < threshold ≤ 1.
func WithDenseSampling(threshold float64) BuilderOption {
	if threshold <= 0 || threshold > 1 {
		panic("builder: WithDenseSampling(threshold not in (0,1])")
	}
	return func(c *builderConfig) {
		c.denseThreshold = threshold
	}
}

// WithLogger routes warnings (truncated generation) and debug output to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l logrus.FieldLogger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
