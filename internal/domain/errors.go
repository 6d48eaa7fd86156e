package domain

import "errors"

// ErrNotFound is returned by repos when the requested record does not exist.
// Handlers map it to HTTP 404; it is never a fatal condition.
var ErrNotFound = errors.New("not found")
