package mapper

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrTransformAborted = errors.New("transform aborted")
	ErrNilEncodingState = errors.New("nil encoding state")
)
