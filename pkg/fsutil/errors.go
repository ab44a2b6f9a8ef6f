package fsutil

import "errors"

// ErrEmptyOutputPath is returned when a write is requested with an empty
// output path.
var ErrEmptyOutputPath = errors.New("output path must not be empty")
