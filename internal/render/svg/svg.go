// Package svg turns a rendered scene into an SVG document.
package svg

import (
	"fmt"
	"strings"

	"github.com/okian/tidemark/internal/render"
)

// Document layout constants.
const (
	defaultBackground = "#ffffff"
	defaultFontFamily = "Arial, sans-serif"
	defaultFontSize   = 12

	tooltipPadding    = 6.0
	tooltipLineHeight = 16.0
	tooltipCharWidth  = 7.0
	tooltipFill       = "#ffffff"
	tooltipStroke     = "#333333"
)

// Encoder writes scenes as SVG documents.
type Encoder struct {
	background string
	fontFamily string
	fontSize   int
}

// Option applies a configuration option to the Encoder.
type Option func(*Encoder)

// WithBackground sets the document background color.
func WithBackground(color string) Option {
	return func(e *Encoder) {
		if color != "" {
			e.background = color
		}
	}
}

// WithFont sets the font family and size for tooltip text.
func WithFont(family string, size int) Option {
	return func(e *Encoder) {
		if family != "" {
			e.fontFamily = family
		}
		if size > 0 {
			e.fontSize = size
		}
	}
}

// NewEncoder constructs an Encoder with default configuration.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		background: defaultBackground,
		fontFamily: defaultFontFamily,
		fontSize:   defaultFontSize,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encode renders the scene in its current interaction state: baseline,
// markers at their present styles, and the tooltip when visible. Each call
// produces a complete document; nothing is retained between calls.
func (e *Encoder) Encode(scene *render.Scene) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, scene.Viewport.Width, scene.Viewport.Height, e.background))

	e.writeBaseline(&b, scene.Baseline)
	for _, m := range scene.Markers {
		e.writeMarker(&b, m)
	}
	if scene.Tooltip.Visible {
		e.writeTooltip(&b, scene.Tooltip)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func (e *Encoder) writeBaseline(b *strings.Builder, l render.Line) {
	b.WriteString(fmt.Sprintf(
		"<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"%g\"/>\n",
		l.X1, l.Y1, l.X2, l.Y2, l.Stroke, l.Width))
}

func (e *Encoder) writeMarker(b *strings.Builder, m *render.Marker) {
	b.WriteString(fmt.Sprintf(
		"<circle id=\"%s\" cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\"/>\n",
		escape(m.ID), m.X, m.Y, m.Style.Radius, m.Style.Fill, m.Style.Stroke, m.Style.StrokeWidth))
}

func (e *Encoder) writeTooltip(b *strings.Builder, t render.Tooltip) {
	lines := strings.Split(t.Text, "\n")

	// Size the panel from a rough character-width estimate.
	width := 0.0
	for _, line := range lines {
		if w := float64(len(line)) * tooltipCharWidth; w > width {
			width = w
		}
	}
	width += 2 * tooltipPadding
	height := float64(len(lines))*tooltipLineHeight + 2*tooltipPadding

	b.WriteString(fmt.Sprintf("<g class=\"tooltip\" transform=\"translate(%g,%g)\">\n", t.X, t.Y))
	b.WriteString(fmt.Sprintf(
		"<rect width=\"%g\" height=\"%g\" fill=\"%s\" stroke=\"%s\"/>\n",
		width, height, tooltipFill, tooltipStroke))
	b.WriteString(fmt.Sprintf(
		"<text x=\"%g\" y=\"%g\" font-family=\"%s\" font-size=\"%d\">\n",
		tooltipPadding, tooltipPadding+tooltipLineHeight/2, e.fontFamily, e.fontSize))
	for i, line := range lines {
		b.WriteString(fmt.Sprintf("<tspan x=\"%g\" dy=\"%g\">%s</tspan>\n",
			tooltipPadding, dy(i), escape(line)))
	}
	b.WriteString("</text>\n</g>\n")
}

// dy returns the vertical advance for tooltip line i.
func dy(i int) float64 {
	if i == 0 {
		return 0
	}
	return tooltipLineHeight
}

// escape sanitizes text content for SVG.
func escape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
