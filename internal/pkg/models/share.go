package models

import "time"

// ShareRequest is the desk-side payload for granting delegated access
type ShareRequest struct {
	AlertID    string `json:"alert_id"`
	ViewerName string `json:"viewer_name"`
	TTLMinutes int    `json:"ttl_minutes,omitempty"`
}

// ShareResponse carries the minted capability back to the desk so the
// operator can preformat a message for the external viewer.
type ShareResponse struct {
	Token      string    `json:"token"`
	AlertID    string    `json:"alert_id"`
	ViewerName string    `json:"viewer_name"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// DelegationView is the read-only, time-boxed view returned to an
// external viewer holding a delegation token. It deliberately exposes
// no contact details or home address, and the vehicle plate is masked.
type DelegationView struct {
	AlertID     string      `json:"alert_id"`
	SubjectName string      `json:"subject_name"`
	Vehicle     string      `json:"vehicle"`
	Status      AlertStatus `json:"status"`
	Position    *Position   `json:"position,omitempty"`
	LastUpdate  time.Time   `json:"last_update"`
}
