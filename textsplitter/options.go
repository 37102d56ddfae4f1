package textsplitter

import "log/slog"

// options holds configuration settings for a splitter. Values are applied
// unchecked here; validation happens once, at construction.
type options struct {
	chunkSize       int
	chunkOverlap    int
	separators      []string
	keepSeparator   KeepSeparator
	lenFunc         LenFunc
	addStartIndex   bool
	stripWhitespace bool
	logger          *slog.Logger
}

// Option is a function type for configuring a splitter.
type Option func(*options)

func defaultLogger() *slog.Logger {
	return slog.Default()
}

// WithChunkSize sets the target chunk size, in LenFunc units.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithChunkOverlap sets how much trailing text of one chunk is repeated
// at the start of the next. Must stay below the chunk size.
func WithChunkOverlap(overlap int) Option {
	return func(o *options) {
		o.chunkOverlap = overlap
	}
}

// WithSeparators replaces the separator hierarchy, coarsest first. Append
// an empty string as the last entry to allow per-character fallback.
func WithSeparators(separators []string) Option {
	return func(o *options) {
		o.separators = separators
	}
}

// WithKeepSeparator controls separator retention during splitting.
func WithKeepSeparator(keep KeepSeparator) Option {
	return func(o *options) {
		o.keepSeparator = keep
	}
}

// WithLenFunc swaps the length measure used for both splitting and merging.
func WithLenFunc(f LenFunc) Option {
	return func(o *options) {
		o.lenFunc = f
	}
}

// WithAddStartIndex records each chunk's byte offset within the source
// text under the start_index metadata key.
func WithAddStartIndex(add bool) Option {
	return func(o *options) {
		o.addStartIndex = add
	}
}

// WithStripWhitespace controls whether chunk boundaries are trimmed.
// Enabled by default; disable it to make concatenating chunks reproduce
// the input byte for byte.
func WithStripWhitespace(strip bool) Option {
	return func(o *options) {
		o.stripWhitespace = strip
	}
}

// WithLogger sets the logger used for splitter diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
