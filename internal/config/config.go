// Package config defines visual configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Width and Height are the default viewport dimensions in length units.
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`

	// AxisInset is the horizontal baseline inset from each viewport edge.
	AxisInset float64 `koanf:"axis_inset"`

	// MarkerRadius and MarkerStrokeWidth style resting markers.
	MarkerRadius      float64 `koanf:"marker_radius"`
	MarkerStrokeWidth float64 `koanf:"marker_stroke_width"`

	// MarkerColor is the resting fill and stroke color.
	MarkerColor string `koanf:"marker_color"`

	// HoverRadius, HoverStrokeWidth and HighlightColor style hovered markers.
	HoverRadius      float64 `koanf:"hover_radius"`
	HoverStrokeWidth float64 `koanf:"hover_stroke_width"`
	HighlightColor   string  `koanf:"highlight_color"`

	// TransitionMS is the hover transition duration in milliseconds.
	TransitionMS int `koanf:"transition_ms"`

	// TooltipOffset keeps the tooltip right of and below the pointer.
	TooltipOffset float64 `koanf:"tooltip_offset"`

	// TruncateLimit and TruncatePrefix control event label truncation.
	TruncateLimit  int `koanf:"truncate_limit"`
	TruncatePrefix int `koanf:"truncate_prefix"`

	// DateLayout is the Go time layout for the date display field.
	DateLayout string `koanf:"date_layout"`

	// Background is the SVG document background color.
	Background string `koanf:"background"`
}

// New creates a Config populated with the rendering defaults.
func New() *Config {
	c := &Config{
		LogLevel:          "info",
		Width:             1000,
		Height:            400,
		AxisInset:         50,
		MarkerRadius:      5,
		MarkerStrokeWidth: 2,
		MarkerColor:       "#000000",
		HoverRadius:       8,
		HoverStrokeWidth:  3,
		HighlightColor:    "#ff0000",
		TransitionMS:      200,
		TooltipOffset:     15,
		TruncateLimit:     10,
		TruncatePrefix:    8,
		DateLayout:        "02/01/2006",
		Background:        "#ffffff",
	}
	return c
}
