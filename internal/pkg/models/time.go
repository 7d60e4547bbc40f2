package models

import "time"

// Now returns the current time in UTC. All lifecycle timestamps
// (claimed_at, resolved_at, token expiry) are compared in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
