// Package render derives a drawable timeline scene from display records.
//
// Render is a pure function of its inputs: it holds no state across calls
// and produces declarative draw commands plus per-marker interaction
// intents, so the scene can be tested without a host or a DOM.
package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/tidemark/internal/domain/model"
	"github.com/okian/tidemark/internal/render/scale"
	"github.com/okian/tidemark/pkg/logger"
	"github.com/okian/tidemark/pkg/metrics"
)

// Default rendering constants.
const (
	// defaultAxisInset is the horizontal inset of the baseline from each
	// viewport edge.
	defaultAxisInset = 50.0

	// Resting marker style.
	defaultMarkerRadius = 5.0
	defaultMarkerColor  = "#000000"
	defaultStrokeWidth  = 2.0

	// Hovered marker style.
	defaultHoverRadius      = 8.0
	defaultHighlightColor   = "#ff0000"
	defaultHoverStrokeWidth = 3.0

	// defaultTransition is the duration of the hover transition, both ways.
	defaultTransition = 200 * time.Millisecond

	// defaultTooltipOffset keeps the tooltip right of and below the pointer.
	defaultTooltipOffset = 15.0
)

// Renderer draws timeline scenes.
type Renderer struct {
	inset         float64
	resting       Style
	hovered       Style
	transition    time.Duration
	tooltipOffset float64
	logger        logger.Logger
}

// New constructs a Renderer with default configuration.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		inset: defaultAxisInset,
		resting: Style{
			Radius:      defaultMarkerRadius,
			Fill:        defaultMarkerColor,
			Stroke:      defaultMarkerColor,
			StrokeWidth: defaultStrokeWidth,
		},
		hovered: Style{
			Radius:      defaultHoverRadius,
			Fill:        defaultMarkerColor,
			Stroke:      defaultHighlightColor,
			StrokeWidth: defaultHoverStrokeWidth,
		},
		transition:    defaultTransition,
		tooltipOffset: defaultTooltipOffset,
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render derives the scene for the given records and viewport: a baseline
// centered vertically and inset horizontally, plus one marker per distinct
// raw date. Records whose raw date cannot be parsed never produce a marker.
// An empty record set yields a baseline-only scene.
func (r *Renderer) Render(ctx context.Context, records []model.Record, vp model.Viewport) (*Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderAborted, err)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, vp.Width, vp.Height)
	}

	baselineY := vp.Height / 2
	scene := &Scene{
		Viewport: vp,
		Baseline: Line{
			X1:     r.inset,
			Y1:     baselineY,
			X2:     vp.Width - r.inset,
			Y2:     baselineY,
			Stroke: r.resting.Stroke,
			Width:  r.resting.StrokeWidth,
		},
		Intents: make(map[string]MarkerIntents),
	}

	groups := groupByDate(records)

	dates := make([]time.Time, 0, len(groups))
	for _, g := range groups {
		if g.ok {
			dates = append(dates, g.when)
		}
	}
	axis := scale.Fit(dates, r.inset, vp.Width-r.inset)

	for _, g := range groups {
		if !g.ok {
			// Unparseable dates have no defined position on the axis.
			if r.logger != nil {
				r.logger.Warn(ctx, "skipping marker with unparseable date",
					logger.String("date", g.raw),
					logger.Int("records", len(g.records)),
				)
			}
			continue
		}
		id := fmt.Sprintf("marker-%d", len(scene.Markers))
		m := &Marker{
			ID:      id,
			Date:    g.raw,
			When:    g.when,
			X:       axis.Pos(g.when),
			Y:       baselineY,
			Style:   r.resting,
			Records: g.records,
		}
		scene.Markers = append(scene.Markers, m)
		scene.Intents[id] = r.intentsFor(m)
	}

	metrics.UpdateMarkerCount(len(scene.Markers))

	return scene, nil
}

// intentsFor builds the declarative pointer reactions for one marker.
func (r *Renderer) intentsFor(m *Marker) MarkerIntents {
	hovered := r.hovered
	resting := r.resting
	return MarkerIntents{
		OnEnter: Intent{
			MarkerID:    m.ID,
			Event:       PointerEnter,
			Style:       &hovered,
			Duration:    r.transition,
			ShowTooltip: true,
			TooltipText: TooltipText(m.Records),
			OffsetX:     r.tooltipOffset,
			OffsetY:     r.tooltipOffset,
		},
		OnMove: Intent{
			MarkerID: m.ID,
			Event:    PointerMove,
			OffsetX:  r.tooltipOffset,
			OffsetY:  r.tooltipOffset,
		},
		OnLeave: Intent{
			MarkerID:    m.ID,
			Event:       PointerLeave,
			Style:       &resting,
			Duration:    r.transition,
			HideTooltip: true,
		},
	}
}

// TooltipText renders the tooltip body for a group of records: display
// date, display event, and full description per record, records separated
// by a blank line, in encounter order.
func TooltipText(records []model.Record) string {
	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		blocks = append(blocks, rec.DateDisplay+"\n"+rec.EventDisplay+"\n"+rec.Description)
	}
	return strings.Join(blocks, "\n\n")
}

// group is one distinct raw date value with its records.
type group struct {
	raw     string
	when    time.Time
	ok      bool
	records []model.Record
}

// groupByDate collapses records sharing a raw date value into one group,
// preserving first-encounter order of both groups and members.
func groupByDate(records []model.Record) []*group {
	var groups []*group
	index := make(map[string]*group)
	for _, rec := range records {
		g, seen := index[rec.Date]
		if !seen {
			when, ok := model.ParseDate(rec.Date)
			g = &group{raw: rec.Date, when: when, ok: ok}
			index[rec.Date] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, rec)
	}
	return groups
}
