package constants

// NATS subjects. Per-alert ordering is guaranteed per subject by the
// JetStream consumer; no ordering is guaranteed across alerts.
const (
	// Alerts service
	SubjectAlertCreated = "alert.created"
	SubjectAlertStatus  = "alert.status"

	// Location service
	SubjectLocationUpdate = "location.update"
)

// JetStream streams
const (
	StreamAlerts       = "ALERTS"
	StreamLocation     = "LOCATION"
	ConsumerDeskFanout = "desk-fanout"
	ConsumerStatusSync = "status-sync"
)
