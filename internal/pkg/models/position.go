package models

import "time"

// Position represents a geographical position sample supplied by the
// subject's device. Accuracy, speed and heading are optional; the
// geolocation source may fail entirely and the core must tolerate it.
type Position struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty" db:"accuracy"`
	Speed     float64   `json:"speed,omitempty" db:"speed"`
	Heading   float64   `json:"heading,omitempty" db:"heading"`
	Timestamp time.Time `json:"timestamp" db:"recorded_at"`
}

// PositionSample is an immutable append-only row tied to one alert
type PositionSample struct {
	ID         int64     `json:"id" db:"id"`
	AlertID    string    `json:"alert_id" db:"alert_id"`
	Position   Position  `json:"position"`
	Geohash    string    `json:"geohash,omitempty" db:"geohash"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// NearbyAlert is an alert whose latest position fell inside a radius
// query against the geo index
type NearbyAlert struct {
	AlertID    string  `json:"alert_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// AppendPositionRequest is the payload for submitting a position sample
type AppendPositionRequest struct {
	Position Position `json:"position"`
}

// PositionUpdateEvent is published for every live position sample.
// Samples appended after the owning alert reached a terminal status
// are stored for audit but never published.
type PositionUpdateEvent struct {
	AlertID    string    `json:"alert_id"`
	Position   Position  `json:"position"`
	RecordedAt time.Time `json:"recorded_at"`
}
