// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// config.go - internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng            = time-seeded  (resolved when no WithSeed/WithRand is given)
//   • maxAttempts    = 0            (unlimited draws)
//   • denseThreshold = 0.5          (complement sampling above half density)
//   • logger         = discard

package builder

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for endpoint draws; never nil after resolution.
	rng *rand.Rand
	// Maximum number of vertex-pair draws; 0 means no cap.
	maxAttempts int
	// Requested density (M / maxEdges) above which complement sampling is used.
	denseThreshold float64
	// Destination for warnings and debug output.
	logger logrus.FieldLogger
}

const (
	defaultMaxAttempts    = 0
	defaultDenseThreshold = 0.5
	minVertices           = 1
)

// newBuilderConfig constructs a config with defaults and applies all options
// in order. A missing RNG is resolved to a time-seeded source.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		maxAttempts:    defaultMaxAttempts,
		denseThreshold: defaultDenseThreshold,
		logger:         nil,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	return cfg
}

// discardLogger returns a logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}
