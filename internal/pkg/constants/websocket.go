package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Subscription events
	EventSubscribe   = "subscribe"
	EventUnsubscribe = "unsubscribe"
	EventSubscribed  = "subscribed"

	// Alert events
	EventAlertCreated = "alert_created"
	EventAlertStatus  = "alert_status"

	// Position events
	EventPositionUpdate = "position_update"
)

// Reason codes surfaced to callers. Every user-visible failure carries
// one of these plus a human-readable message.
const (
	ReasonIllegalTransition    = "illegal_transition"
	ReasonTokenInvalid         = "token_invalid"
	ReasonTokenExpired         = "token_expired"
	ReasonTokenConsumed        = "token_already_consumed"
	ReasonMissingRequiredField = "missing_required_field"
	ReasonUpstreamUnavailable  = "upstream_unavailable"
	ReasonUnauthorized         = "unauthorized"
	ReasonNotFound             = "not_found"
)
