package render

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrRenderAborted   = errors.New("render aborted")
	ErrInvalidViewport = errors.New("invalid viewport")
	ErrUnknownMarker   = errors.New("unknown marker")
)
