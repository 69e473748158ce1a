package huffpack

import (
	"go.uber.org/zap"
)

type options struct {
	// logger receives debug-level events; never nil.
	logger *zap.Logger
	// metrics is optional.
	metrics *Metrics
}

// Option configures a Compressor or Decompressor.
type Option func(opts *options)

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for debug output.  A nil logger disables
// logging.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		opts.logger = logger
	}
}

// WithMetrics sets the Prometheus counters updated by each operation.
func WithMetrics(m *Metrics) Option {
	return func(opts *options) {
		opts.metrics = m
	}
}

// resolved fills in defaults for a zero-value Compressor or Decompressor.
func (o options) resolved() options {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
