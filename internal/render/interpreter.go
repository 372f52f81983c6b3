package render

import (
	"fmt"

	"github.com/okian/tidemark/pkg/metrics"
)

// Interpreter applies pointer events to a scene by executing the scene's
// declarative intents. It is the headless counterpart of the host's DOM
// bridge: markers move between resting and hovered, and the tooltip follows
// the pointer.
//
// Transitions are applied at their end state; the Duration on each intent
// is metadata for animating backends.
type Interpreter struct {
	scene   *Scene
	hovered string
}

// NewInterpreter creates an interpreter over a rendered scene.
func NewInterpreter(scene *Scene) *Interpreter {
	return &Interpreter{scene: scene}
}

// Hovered returns the id of the currently hovered marker, or "".
func (it *Interpreter) Hovered() string {
	return it.hovered
}

// PointerEnter transitions a marker to its hovered style and reveals the
// tooltip at the pointer position plus the configured offset. Entering a
// marker while another is hovered implicitly leaves the previous one.
func (it *Interpreter) PointerEnter(id string, x, y float64) error {
	intents, ok := it.scene.Intents[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMarker, id)
	}
	if it.hovered != "" && it.hovered != id {
		if err := it.PointerLeave(it.hovered); err != nil {
			return err
		}
	}

	in := intents.OnEnter
	if in.Style != nil {
		it.scene.Marker(id).Style = *in.Style
	}
	if in.ShowTooltip {
		it.scene.Tooltip = Tooltip{
			Visible: true,
			X:       x + in.OffsetX,
			Y:       y + in.OffsetY,
			Text:    in.TooltipText,
		}
	}
	it.hovered = id
	metrics.RecordHoverEnter()
	return nil
}

// PointerMove repositions the tooltip to track the pointer. Moves over a
// marker that is not hovered are ignored.
func (it *Interpreter) PointerMove(id string, x, y float64) error {
	intents, ok := it.scene.Intents[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMarker, id)
	}
	if it.hovered != id {
		return nil
	}

	in := intents.OnMove
	it.scene.Tooltip.X = x + in.OffsetX
	it.scene.Tooltip.Y = y + in.OffsetY
	return nil
}

// PointerLeave transitions a marker back to its resting style and hides the
// tooltip.
func (it *Interpreter) PointerLeave(id string) error {
	intents, ok := it.scene.Intents[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMarker, id)
	}

	in := intents.OnLeave
	if in.Style != nil {
		it.scene.Marker(id).Style = *in.Style
	}
	if in.HideTooltip {
		it.scene.Tooltip = Tooltip{}
	}
	if it.hovered == id {
		it.hovered = ""
	}
	metrics.RecordHoverLeave()
	return nil
}
