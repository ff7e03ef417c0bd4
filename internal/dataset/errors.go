package dataset

import "errors"

// ErrDataUnavailable means the source is missing, unreadable, malformed or empty.
var ErrDataUnavailable = errors.New("data unavailable")
