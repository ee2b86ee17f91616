package index

import "errors"

// ErrNotFound reports that no index document exists at the canonical path.
// Callers treat it as "operate in slow/direct mode", not as a failure.
var ErrNotFound = errors.New("index not found")
