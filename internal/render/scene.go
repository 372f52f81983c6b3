package render

import (
	"time"

	"github.com/okian/tidemark/internal/domain/model"
)

// Style is the visual styling of a marker glyph.
type Style struct {
	Radius      float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Line is a straight stroke on the drawing surface.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
}

// Marker is the interactive glyph for one distinct date. All records
// sharing the marker's raw date value are grouped under it, in encounter
// order.
type Marker struct {
	ID      string
	Date    string    // raw date value, the grouping key
	When    time.Time // parsed date used for positioning
	X, Y    float64
	Style   Style
	Records []model.Record
}

// Tooltip is the floating panel revealed while a marker is hovered.
type Tooltip struct {
	Visible bool
	X, Y    float64
	Text    string
}

// PointerEvent names the pointer interactions a marker reacts to.
type PointerEvent string

// Pointer event kinds.
const (
	PointerEnter PointerEvent = "enter"
	PointerMove  PointerEvent = "move"
	PointerLeave PointerEvent = "leave"
)

// Intent declares how a marker reacts to one pointer event. Intents are
// data, not callbacks: a thin adapter (the Interpreter here, the host DOM
// bridge in production) applies them.
type Intent struct {
	MarkerID string
	Event    PointerEvent

	// Style is the target style to transition to, for enter and leave.
	Style    *Style
	Duration time.Duration

	// Tooltip behavior.
	ShowTooltip bool
	HideTooltip bool
	TooltipText string
	OffsetX     float64
	OffsetY     float64
}

// MarkerIntents groups the three pointer intents of one marker.
type MarkerIntents struct {
	OnEnter Intent
	OnMove  Intent
	OnLeave Intent
}

// Scene is the complete declarative output of one render: everything a
// backend needs to draw the timeline and wire its interactions.
type Scene struct {
	Viewport model.Viewport
	Baseline Line
	Markers  []*Marker
	Tooltip  Tooltip
	Intents  map[string]MarkerIntents
}

// Marker returns the marker with the given id, or nil.
func (s *Scene) Marker(id string) *Marker {
	for _, m := range s.Markers {
		if m.ID == id {
			return m
		}
	}
	return nil
}
