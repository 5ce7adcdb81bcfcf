// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphbench/graph"
)

// TestDefaults verifies the resolved defaults when no option is given.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.NotNil(t, cfg.rng, "rng must be resolved to a time-seeded source")
	require.NotNil(t, cfg.logger)
	assert.Equal(t, defaultMaxAttempts, cfg.maxAttempts)
	assert.Equal(t, defaultDenseThreshold, cfg.denseThreshold)
}

// TestRNGOptions verifies reproducibility with WithSeed and identity with WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Int63(), b.Int63())

	// later options win
	last := rand.New(rand.NewSource(7))
	assert.Same(t, last, newBuilderConfig(WithSeed(1), WithRand(last)).rng)
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithMaxAttempts(-1) })
	assert.Panics(t, func() { WithDenseSampling(0) })
	assert.Panics(t, func() { WithDenseSampling(1.5) })
	assert.NotPanics(t, func() { WithDenseSampling(1) })
}

// TestLoggerOption verifies WithLogger, including the nil no-op.
func TestLoggerOption(t *testing.T) {
	t.Parallel()

	l := logrus.New()
	assert.Same(t, l, newBuilderConfig(WithLogger(l)).logger)
	assert.NotNil(t, newBuilderConfig(WithLogger(nil)).logger)
}

// TestValidateCounts walks the validation priority order.
func TestValidateCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n, m      int
		connected bool
		want      error
	}{
		{"n zero", 0, 0, false, ErrTooFewVertices},
		{"n zero beats negative m", 0, -1, true, ErrTooFewVertices},
		{"n above max", graph.MaxVertices + 1, 0, false, ErrTooManyVertices},
		{"n overflow beats negative m", math.MaxInt, -1, false, ErrTooManyVertices},
		{"negative m", 3, -1, false, ErrNegativeEdges},
		{"single vertex with edge", 1, 1, false, ErrSingleVertexEdges},
		{"connected too few", 5, 3, true, ErrTooFewEdges},
		{"general too many", 4, 7, false, ErrTooManyEdges},
		{"connected too many", 4, 7, true, ErrTooManyEdges},
		{"single vertex ok", 1, 0, true, nil},
		{"general sparse ok", 5, 0, false, nil},
		{"complete ok", 4, 6, true, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateCounts("Test", tc.n, tc.m, tc.connected)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
