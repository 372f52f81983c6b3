package tablefile

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnsupportedFormat = errors.New("unsupported table format")
	ErrReadFile          = errors.New("read table file failed")
	ErrParseTable        = errors.New("parse table failed")
)
