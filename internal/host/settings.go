package host

// Settings is the user-configurable formatting model for the visual. The
// host owns the schema; the core only carries the values and reports them
// back through EnumerateObjects.
type Settings struct {
	Marker  MarkerSettings
	Tooltip TooltipSettings
}

// MarkerSettings styles the date markers.
type MarkerSettings struct {
	Radius         float64
	Color          string
	HighlightColor string
}

// TooltipSettings controls the hover tooltip.
type TooltipSettings struct {
	Show bool
}

// DefaultSettings returns the formatting defaults.
func DefaultSettings() Settings {
	return Settings{
		Marker: MarkerSettings{
			Radius:         5,
			Color:          "#000000",
			HighlightColor: "#ff0000",
		},
		Tooltip: TooltipSettings{
			Show: true,
		},
	}
}

// ObjectInstance is one entry of the formatting-model descriptor consumed
// by the host. The property bag is opaque pass-through.
type ObjectInstance struct {
	ObjectName string
	Properties map[string]any
}

// Settings returns the current formatting settings.
func (v *Visual) Settings() Settings {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.settings
}

// ApplySettings replaces the formatting settings reported back through
// EnumerateObjects. Rendering style is fixed at construction via renderer
// options; settings are the host-facing descriptor values only.
func (v *Visual) ApplySettings(s Settings) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settings = s
}

// EnumerateObjects describes the current settings in the host's
// formatting-model shape.
func (v *Visual) EnumerateObjects() []ObjectInstance {
	v.mu.Lock()
	defer v.mu.Unlock()
	return []ObjectInstance{
		{
			ObjectName: "marker",
			Properties: map[string]any{
				"radius":         v.settings.Marker.Radius,
				"color":          v.settings.Marker.Color,
				"highlightColor": v.settings.Marker.HighlightColor,
			},
		},
		{
			ObjectName: "tooltip",
			Properties: map[string]any{
				"show": v.settings.Tooltip.Show,
			},
		},
	}
}
