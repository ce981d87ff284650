package obj

// DefaultMaxLineSize is the longest line a Loader accepts unless
// WithMaxLineSize says otherwise.
const DefaultMaxLineSize = 1 << 20

type options struct {
	logger      *Logger
	maxLineSize int
}

// Option configures a Loader.
type Option func(*options)

// WithLogger sets the logger used to report parse outcomes.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMaxLineSize limits the length of a single input line in bytes.
// Values below 1 restore DefaultMaxLineSize.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultMaxLineSize
		}
		o.maxLineSize = n
	}
}
