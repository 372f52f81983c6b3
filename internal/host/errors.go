package host

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUpdateFailed = errors.New("update cycle failed")
)
