package calendar

import "errors"

// ErrInvalidInput is returned when a value cannot be given calendar meaning,
// e.g. a malformed "YYYY-MM" string or an unknown layout mode.
var ErrInvalidInput = errors.New("invalid input")
