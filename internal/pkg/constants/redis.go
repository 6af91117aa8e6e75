package constants

// Redis key formats
const (
	// Handoff sessions
	KeyHandoffSession = "handoff:session:%s" // Format: handoff:session:{session_id}
)

// Redis hash fields for a handoff session
const (
	FieldLatitude        = "lat"
	FieldLongitude       = "lng"
	FieldTimestamp       = "ts"
	FieldDistanceM       = "dist_m"
	FieldIdenticalStreak = "streak"
	FieldGeohash         = "geohash"
	FieldUpdatedAt       = "updated_at"
)
