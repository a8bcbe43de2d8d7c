package priority

import (
	"io"

	"github.com/sirupsen/logrus"
)

// options defines all configuration options for a queue.
type options struct {
	capacity int                // Slots to reserve up front
	logger   logrus.FieldLogger // Receives growth and shrink events
	shrink   bool               // Release memory after a burst is drained
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithCapacity reserves room for n entries so the first n calls to Put do
// not reallocate.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for store growth and shrink events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithShrink toggles releasing memory when occupancy drops below a quarter
// of a large buffer. Enabled by default.
func WithShrink(enabled bool) Option {
	return func(o *options) {
		o.shrink = enabled
	}
}

var discardLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
		logger:   discardLogger,
		shrink:   true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}
	return o
}
