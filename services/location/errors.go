package location

import "errors"

// Sentinel errors for position stream operations
var (
	ErrInvalidPosition = errors.New("position out of range")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrNoPosition      = errors.New("no position recorded for alert")
)
