package models

import "time"

// PatternType identifies which detector produced a suspicious pattern
type PatternType string

const (
	PatternVelocity          PatternType = "velocity"
	PatternDeviceCluster     PatternType = "device_cluster"
	PatternEmailPattern      PatternType = "email_pattern"
	PatternGeographicAnomaly PatternType = "geographic_anomaly"
	PatternPaymentFraud      PatternType = "payment_fraud"
	PatternIdentityFarming   PatternType = "identity_farming"
)

// ValidPatternType reports whether t is a known pattern type
func ValidPatternType(t PatternType) bool {
	switch t {
	case PatternVelocity, PatternDeviceCluster, PatternEmailPattern,
		PatternGeographicAnomaly, PatternPaymentFraud, PatternIdentityFarming:
		return true
	}
	return false
}

// Severity is the ordinal severity of a suspicious pattern
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordinal rank of a severity for sorting and minimum
// severity filtering. Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// ValidSeverity reports whether s is a known severity
func ValidSeverity(s Severity) bool {
	return s.Rank() > 0
}

// SuspiciousPattern is the engine's output unit. Patterns are created
// fresh on every detection run and never persisted by the engine.
type SuspiciousPattern struct {
	ID          string                 `json:"id"`
	Type        PatternType            `json:"type"`
	Severity    Severity               `json:"severity"`
	Confidence  int                    `json:"confidence"`
	BookingIDs  []string               `json:"booking_ids"`
	Description string                 `json:"description"`
	Evidence    map[string]interface{} `json:"evidence,omitempty"`
	FirstSeen   time.Time              `json:"first_seen"`
	LastSeen    time.Time              `json:"last_seen"`
	Occurrences int                    `json:"occurrences"`
}

// DetectionWindow is the query scope for one detection run: an absolute
// time range derived from a timeframe keyword plus the post-detection
// filters the caller asked for.
type DetectionWindow struct {
	Timeframe   string      `json:"timeframe"` // 1d, 7d or 30d
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	MinSeverity Severity    `json:"min_severity,omitempty"` // empty means no filter
	Type        PatternType `json:"type,omitempty"`         // empty means all types
}

// DetectionStats summarizes one detection run over the filtered result
type DetectionStats struct {
	TotalPatterns    int       `json:"total_patterns"`
	CriticalPatterns int       `json:"critical_patterns"`
	HighPatterns     int       `json:"high_patterns"`
	AffectedBookings int       `json:"affected_bookings"`
	Timeframe        string    `json:"timeframe"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// DetectionResult is the full response of one detection run
type DetectionResult struct {
	Patterns []SuspiciousPattern `json:"patterns"`
	Stats    DetectionStats      `json:"stats"`
}
