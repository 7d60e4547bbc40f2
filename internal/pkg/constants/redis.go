package constants

// Redis key formats
const (
	// Location service
	KeyAlertLatestPosition = "alert:position:%s" // Format: alert:position:{alert_id}
	KeyAlertStatusCache    = "alert:status:%s"   // Format: alert:status:{alert_id}
	KeyAlertGeo            = "alerts:geo"        // Geo set of latest alert positions

	// Sharing service
	KeyShareResolveCount = "share:hits:%s" // Format: share:hits:{token_id}
)

// Redis hash fields
const (
	FieldLatitude   = "lat"
	FieldLongitude  = "lng"
	FieldAccuracy   = "acc"
	FieldSpeed      = "spd"
	FieldHeading    = "hdg"
	FieldRecordedAt = "ts"
)
