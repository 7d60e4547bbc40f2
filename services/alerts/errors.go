package alerts

import "errors"

// Sentinel errors surfaced by the alerts use case. Handlers map these
// to HTTP status codes and stable reason codes.
var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenConsumed      = errors.New("token already consumed")
	ErrMissingEvidence    = errors.New("evidence reference and reason are required")
	ErrMissingValidator   = errors.New("validator rank, name and badge are required")
	ErrNotAlertSubject    = errors.New("caller is not the alert subject")
	ErrInvalidOutcome     = errors.New("outcome must be resolved or false_alarm")
	ErrOpenAlertExists    = errors.New("subject already has an open alert")
	ErrProfileUnavailable = errors.New("subject profile unavailable")
)
