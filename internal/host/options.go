package host

import (
	"github.com/okian/tidemark/internal/domain/encoding"
	"github.com/okian/tidemark/internal/domain/mapper"
	"github.com/okian/tidemark/internal/render"
	"github.com/okian/tidemark/internal/render/svg"
	"github.com/okian/tidemark/pkg/logger"
)

// Option applies a configuration option to the Visual.
type Option func(*Visual)

// WithLogger sets a custom logger for the visual.
func WithLogger(l logger.Logger) Option {
	return func(v *Visual) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithSettings sets the initial formatting settings.
func WithSettings(s Settings) Option {
	return func(v *Visual) {
		v.settings = s
	}
}

// WithEncodingState sets the encoding state carried across updates.
func WithEncodingState(st *encoding.State) Option {
	return func(v *Visual) {
		if st != nil {
			v.state = st
		}
	}
}

// WithMapper sets a custom data mapper.
func WithMapper(m *mapper.Mapper) Option {
	return func(v *Visual) {
		if m != nil {
			v.mapper = m
		}
	}
}

// WithRenderer sets a custom renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(v *Visual) {
		if r != nil {
			v.renderer = r
		}
	}
}

// WithEncoder sets a custom SVG encoder.
func WithEncoder(e *svg.Encoder) Option {
	return func(v *Visual) {
		if e != nil {
			v.encoder = e
		}
	}
}
