package render

import (
	"time"

	"github.com/okian/tidemark/pkg/logger"
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithAxisInset sets the horizontal inset of the baseline from each edge.
func WithAxisInset(inset float64) Option {
	return func(r *Renderer) {
		if inset > 0 {
			r.inset = inset
		}
	}
}

// WithMarkerStyle sets the resting marker style.
func WithMarkerStyle(radius, strokeWidth float64, color string) Option {
	return func(r *Renderer) {
		if radius > 0 {
			r.resting.Radius = radius
		}
		if strokeWidth > 0 {
			r.resting.StrokeWidth = strokeWidth
		}
		if color != "" {
			r.resting.Fill = color
			r.resting.Stroke = color
			r.hovered.Fill = color
		}
	}
}

// WithHoverStyle sets the hovered marker style.
func WithHoverStyle(radius, strokeWidth float64, highlight string) Option {
	return func(r *Renderer) {
		if radius > 0 {
			r.hovered.Radius = radius
		}
		if strokeWidth > 0 {
			r.hovered.StrokeWidth = strokeWidth
		}
		if highlight != "" {
			r.hovered.Stroke = highlight
		}
	}
}

// WithTransition sets the hover transition duration.
func WithTransition(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.transition = d
		}
	}
}

// WithTooltipOffset sets the pointer-to-tooltip offset.
func WithTooltipOffset(offset float64) Option {
	return func(r *Renderer) {
		if offset > 0 {
			r.tooltipOffset = offset
		}
	}
}

// WithLogger sets a custom logger for the renderer.
func WithLogger(l logger.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}
