package sharing

import "errors"

// Sentinel errors for delegation operations.
// ErrShareInvalid is deliberately the only resolve-side failure: the
// viewer never learns whether a token is unknown, expired, consumed or
// pointed at a closed alert.
var (
	ErrShareInvalid        = errors.New("share invalid")
	ErrMissingViewer       = errors.New("viewer name is required")
	ErrMissingAlert        = errors.New("alert id is required")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
