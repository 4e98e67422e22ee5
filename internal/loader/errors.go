package loader

import "errors"

var (
	// ErrEmpty is returned for ROM files without content.
	ErrEmpty = errors.New("empty rom")
	// ErrTooLarge is returned for ROM files that do not fit into memory.
	ErrTooLarge = errors.New("rom too large")
)
