package cevtib

type options struct {
	initialBlocks int
	capacityHint  int
	shrinkOnPop   bool
	logger        *Logger
}

// Option configures Vector construction behavior.
//
// Options exist to avoid exploding the constructor surface; a Vector built
// with no options reserves DefaultInitialBlocks blocks and stays silent.
type Option func(*options)

// WithInitialBlocks sets the number of blocks reserved up front. Values
// below one are raised to one; a Vector always owns at least one block.
//
// WithCapacityHint takes precedence when both are given.
func WithInitialBlocks(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.initialBlocks = n
	}
}

// WithCapacityHint requests room for at least the given number of bits. The
// reservation is rounded up to whole blocks. Non-positive hints are ignored.
func WithCapacityHint(bits int) Option {
	return func(o *options) {
		o.capacityHint = bits
	}
}

// WithShrinkOnPop enables block-granular shrinking after Pop: once at least
// two whole blocks fall completely unused, the reservation is cut back to
// one spare block. Shrinking always happens by whole blocks.
func WithShrinkOnPop() Option {
	return func(o *options) {
		o.shrinkOnPop = true
	}
}

// WithLogger sets the logger used for storage lifecycle events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
