package bench

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Option customizes RunPlan and Measure.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
	now    func() time.Time
}

func newOptions(opts ...Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		o.logger = discard
	}
	return o
}

// WithLogger sets the logger for progress and skip messages.
// A nil logger keeps the default, which discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now for elapsed-time measurement.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock(nil)")
	}
	return func(o *options) {
		o.now = now
	}
}
