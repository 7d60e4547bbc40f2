package models

import "time"

// TokenPurpose distinguishes the two secrets the issuer mints
type TokenPurpose string

const (
	// PurposeTermination is the short, human-transcribable code a
	// validator must present to close a subject-requested termination.
	PurposeTermination TokenPurpose = "termination_validation"
	// PurposeDelegation is the long opaque capability embedded in a
	// tracking URL shared with an external viewer.
	PurposeDelegation TokenPurpose = "delegation"
)

// AccessToken represents a single-use, time-bounded secret scoped to
// one alert. A token is valid iff it is unconsumed, unexpired and its
// alert still accepts it; it is never reused across alerts.
type AccessToken struct {
	ID            string       `json:"id" db:"id"`
	AlertID       string       `json:"alert_id" db:"alert_id"`
	Purpose       TokenPurpose `json:"purpose" db:"purpose"`
	Code          string       `json:"code" db:"code"`
	BoundIdentity string       `json:"bound_identity,omitempty" db:"bound_identity"`
	IssuedAt      time.Time    `json:"issued_at" db:"issued_at"`
	ExpiresAt     time.Time    `json:"expires_at" db:"expires_at"`
	ConsumedAt    *time.Time   `json:"consumed_at,omitempty" db:"consumed_at"`
	ConsumedBy    string       `json:"consumed_by,omitempty" db:"consumed_by"`
	RevokedAt     *time.Time   `json:"revoked_at,omitempty" db:"revoked_at"`
}

// Live reports whether the token can still be consumed at the given instant
func (t *AccessToken) Live(now time.Time) bool {
	return t.ConsumedAt == nil && t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// IssueTokenRequest is the internal payload for minting a token
type IssueTokenRequest struct {
	AlertID       string       `json:"alert_id"`
	Purpose       TokenPurpose `json:"purpose"`
	TTLMinutes    int          `json:"ttl_minutes,omitempty"`
	BoundIdentity string       `json:"bound_identity,omitempty"`
}

// IssuedToken is returned to the caller after a successful mint
type IssuedToken struct {
	AlertID   string       `json:"alert_id"`
	Purpose   TokenPurpose `json:"purpose"`
	Code      string       `json:"code"`
	ExpiresAt time.Time    `json:"expires_at"`
}
