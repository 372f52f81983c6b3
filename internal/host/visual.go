// Package host adapts the pure transform/render core to the plugin
// lifecycle a dashboard host drives: construct once, call Update per data
// or viewport change, destroy on unload.
package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/tidemark/internal/domain/encoding"
	"github.com/okian/tidemark/internal/domain/mapper"
	"github.com/okian/tidemark/internal/domain/model"
	"github.com/okian/tidemark/internal/render"
	"github.com/okian/tidemark/internal/render/svg"
	"github.com/okian/tidemark/pkg/logger"
	"github.com/okian/tidemark/pkg/metrics"
)

// UpdateRequest is the host-supplied payload for one update cycle.
type UpdateRequest struct {
	Table    model.Table
	Viewport model.Viewport
}

// UpdateResult is everything one update cycle produced. The scene replaces
// all prior output; the host draws it and routes pointer events through the
// interpreter.
type UpdateResult struct {
	UpdateID    string
	Records     []model.Record
	Scene       *render.Scene
	Interpreter *render.Interpreter
	SVG         string
}

// Visual is the plugin object the host drives. The host guarantees
// serialized Update invocation; the mutex only protects against misuse.
//
// Only the settings and the encoding state survive across updates;
// everything else is rebuilt from scratch each cycle.
type Visual struct {
	mu sync.Mutex

	sessionID string
	settings  Settings
	state     *encoding.State
	mapper    *mapper.Mapper
	renderer  *render.Renderer
	encoder   *svg.Encoder

	// Last-computed output, discarded at the start of each update.
	last *UpdateResult

	updates int
	logger  logger.Logger
}

// New constructs a Visual with default configuration.
func New(opts ...Option) *Visual {
	v := &Visual{
		sessionID: uuid.New().String(),
		settings:  DefaultSettings(),
		state:     encoding.NewState(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(v)
	}

	if v.logger == nil {
		v.logger = logger.Get()
	}
	if v.mapper == nil {
		v.mapper = mapper.New(mapper.WithLogger(v.logger))
	}
	if v.renderer == nil {
		v.renderer = render.New(render.WithLogger(v.logger))
	}
	if v.encoder == nil {
		v.encoder = svg.NewEncoder()
	}

	return v
}

// SessionID returns the id of this visual instance's session.
func (v *Visual) SessionID() string {
	return v.sessionID
}

// Update runs one full cycle: tear down prior output, transform the table,
// render the scene, and encode the SVG. A transform or render failure
// aborts only this cycle; the prior drawing stays cleared so the host can
// simply re-invoke on the next update.
func (v *Visual) Update(ctx context.Context, req UpdateRequest) (*UpdateResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	updateID := uuid.New().String()
	v.updates++
	v.last = nil // full teardown before redrawing

	v.logger.Debug(ctx, "update cycle started",
		logger.String("updateID", updateID),
		logger.Int("rows", len(req.Table.Rows)),
		logger.Float64("width", req.Viewport.Width),
		logger.Float64("height", req.Viewport.Height),
	)

	start := time.Now()
	records, err := v.mapper.Transform(ctx, req.Table, v.state)
	if err != nil {
		metrics.RecordUpdateFailure()
		return nil, fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	metrics.RecordTransformDuration(float64(time.Since(start).Microseconds()) / 1e3)

	start = time.Now()
	scene, err := v.renderer.Render(ctx, records, req.Viewport)
	if err != nil {
		metrics.RecordUpdateFailure()
		return nil, fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	metrics.RecordRenderDuration(float64(time.Since(start).Microseconds()) / 1e3)

	v.last = &UpdateResult{
		UpdateID:    updateID,
		Records:     records,
		Scene:       scene,
		Interpreter: render.NewInterpreter(scene),
		SVG:         v.encoder.Encode(scene),
	}
	metrics.RecordUpdate(time.Now().Unix())

	v.logger.Info(ctx, "update cycle completed",
		logger.String("updateID", updateID),
		logger.Int("records", len(records)),
		logger.Int("markers", len(scene.Markers)),
	)

	return v.last, nil
}

// Last returns the result of the most recent successful update, or nil.
func (v *Visual) Last() *UpdateResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

// Updates returns the number of update cycles attempted so far.
func (v *Visual) Updates() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.updates
}

// ResetEncoding clears the session's label assignments so the next update
// reassigns palette slots from scratch.
func (v *Visual) ResetEncoding() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Reset()
}

// Destroy releases the visual's retained output. The host calls this when
// the plugin is unloaded.
func (v *Visual) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.last = nil
	v.logger.Info(context.Background(), "visual destroyed",
		logger.String("sessionID", v.sessionID),
		logger.Int("updates", v.updates),
	)
}
