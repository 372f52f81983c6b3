package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrLoadConfig wraps failures reading or unmarshaling configuration.
	ErrLoadConfig = errors.New("load config failed")

	// ErrInvalidConfig wraps values that fail post-load validation.
	ErrInvalidConfig = errors.New("invalid config")
)
