// Package encoding provides deterministic label-to-visual ordinal scales.
//
// A scale hands out palette slots in first-seen order: the first label it
// sees gets slot 0, the next new label slot 1, and so on, wrapping when the
// palette is exhausted. Repeated labels always resolve to the same value.
// Assignment accumulates for the lifetime of the State, so a label keeps its
// color and symbol across update cycles within one session.
package encoding

// Color is a visual color value, e.g. "#1f77b4".
type Color string

// Symbol is a visual shape name.
type Symbol string

// Neutral defaults used when a role is unresolved.
const (
	NeutralColor  Color  = "#000000"
	NeutralSymbol Symbol = SymbolCircle
)

// Recognized symbol shapes, in palette order.
const (
	SymbolCircle   Symbol = "circle"
	SymbolSquare   Symbol = "square"
	SymbolTriangle Symbol = "triangle"
	SymbolDiamond  Symbol = "diamond"
	SymbolCross    Symbol = "cross"
	SymbolStar     Symbol = "star"
	SymbolWye      Symbol = "wye"
)

// DefaultPalette is the 10-entry categorical color palette.
func DefaultPalette() []Color {
	return []Color{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}
}

// DefaultSymbolSet is the 7-entry shape set.
func DefaultSymbolSet() []Symbol {
	return []Symbol{
		SymbolCircle, SymbolSquare, SymbolTriangle, SymbolDiamond,
		SymbolCross, SymbolStar, SymbolWye,
	}
}

// ColorScale assigns palette colors to labels in first-seen order.
type ColorScale struct {
	palette []Color
	slots   map[string]int
	order   []string
}

// NewColorScale creates a color scale over the given palette.
// An empty palette falls back to the default one.
func NewColorScale(palette []Color) *ColorScale {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &ColorScale{
		palette: palette,
		slots:   make(map[string]int),
	}
}

// Resolve returns the color for a label, assigning the next unused palette
// slot to a newly seen label.
func (s *ColorScale) Resolve(label string) Color {
	slot, ok := s.slots[label]
	if !ok {
		slot = len(s.order)
		s.slots[label] = slot
		s.order = append(s.order, label)
	}
	return s.palette[slot%len(s.palette)]
}

// Len returns the number of distinct labels seen so far.
func (s *ColorScale) Len() int {
	return len(s.order)
}

// Reset forgets all label assignments.
func (s *ColorScale) Reset() {
	s.slots = make(map[string]int)
	s.order = nil
}

// SymbolScale assigns shapes to labels in first-seen order.
type SymbolScale struct {
	shapes []Symbol
	slots  map[string]int
	order  []string
}

// NewSymbolScale creates a symbol scale over the given shape set.
// An empty set falls back to the default one.
func NewSymbolScale(shapes []Symbol) *SymbolScale {
	if len(shapes) == 0 {
		shapes = DefaultSymbolSet()
	}
	return &SymbolScale{
		shapes: shapes,
		slots:  make(map[string]int),
	}
}

// Resolve returns the shape for a label, assigning the next unused slot to a
// newly seen label.
func (s *SymbolScale) Resolve(label string) Symbol {
	slot, ok := s.slots[label]
	if !ok {
		slot = len(s.order)
		s.slots[label] = slot
		s.order = append(s.order, label)
	}
	return s.shapes[slot%len(s.shapes)]
}

// Len returns the number of distinct labels seen so far.
func (s *SymbolScale) Len() int {
	return len(s.order)
}

// Reset forgets all label assignments.
func (s *SymbolScale) Reset() {
	s.slots = make(map[string]int)
	s.order = nil
}

// State bundles the two scales that survive across update cycles. It is
// held by the caller and threaded through the data mapper explicitly so
// assignment determinism is observable in tests.
type State struct {
	Colors  *ColorScale
	Symbols *SymbolScale
}

// NewState creates encoding state with configuration options.
func NewState(opts ...Option) *State {
	st := &State{}

	// Apply all options
	for _, opt := range opts {
		opt(st)
	}

	if st.Colors == nil {
		st.Colors = NewColorScale(nil)
	}
	if st.Symbols == nil {
		st.Symbols = NewSymbolScale(nil)
	}
	return st
}

// Reset clears both scales, forgetting all label assignments.
func (st *State) Reset() {
	st.Colors.Reset()
	st.Symbols.Reset()
}
