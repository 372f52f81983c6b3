package encoding

// Option applies a configuration option to the State.
type Option func(*State)

// WithPalette sets the color palette used for new label assignments.
func WithPalette(palette []Color) Option {
	return func(st *State) {
		if len(palette) > 0 {
			st.Colors = NewColorScale(palette)
		}
	}
}

// WithSymbolSet sets the shape set used for new label assignments.
func WithSymbolSet(shapes []Symbol) Option {
	return func(st *State) {
		if len(shapes) > 0 {
			st.Symbols = NewSymbolScale(shapes)
		}
	}
}
