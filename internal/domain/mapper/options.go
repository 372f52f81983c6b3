package mapper

import (
	"github.com/okian/tidemark/pkg/logger"
)

// Option applies a configuration option to the Mapper.
type Option func(*Mapper)

// WithTruncation sets the truncation limit and surviving prefix length for
// event labels.
func WithTruncation(limit, prefix int) Option {
	return func(m *Mapper) {
		if limit > 0 && prefix > 0 && prefix <= limit {
			m.truncateLimit = limit
			m.truncatePrefix = prefix
		}
	}
}

// WithEllipsis sets the marker appended to truncated event labels.
func WithEllipsis(ellipsis string) Option {
	return func(m *Mapper) {
		if ellipsis != "" {
			m.ellipsis = ellipsis
		}
	}
}

// WithDisplayLayout sets the time layout used for the date display field.
func WithDisplayLayout(layout string) Option {
	return func(m *Mapper) {
		if layout != "" {
			m.displayLayout = layout
		}
	}
}

// WithLogger sets a custom logger for the mapper.
func WithLogger(l logger.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}
