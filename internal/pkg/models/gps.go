package models

import "time"

// GpsPing is one location sample captured during a pickup handoff.
// DistanceToPickupM is pre-computed by the mobile client as the
// straight-line distance in meters from the ping to the pickup point.
type GpsPing struct {
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Timestamp         time.Time `json:"timestamp"`
	DistanceToPickupM float64   `json:"distance_to_pickup_m"`
}

// MovementDirection classifies guest movement relative to the pickup point
type MovementDirection string

const (
	DirectionApproaching MovementDirection = "approaching"
	DirectionStationary  MovementDirection = "stationary"
	DirectionAway        MovementDirection = "away"
	DirectionUnknown     MovementDirection = "unknown"
)

// LocationTrustResult is the outcome of scoring a single ping.
// ETAMinutes is nil whenever the guest is not converging on the pickup
// point; absence means unknown, never zero.
type LocationTrustResult struct {
	TrustScore int               `json:"trust_score"`
	Direction  MovementDirection `json:"direction"`
	ETAMinutes *int              `json:"eta_minutes"`
	Narrative  string            `json:"narrative,omitempty"`
}

// HandoffSession is the per-handoff state the scorer needs between
// pings: the last scored ping plus a counter of consecutive
// bit-identical coordinates. Single writer per session.
type HandoffSession struct {
	LastPing        GpsPing   `json:"last_ping"`
	IdenticalStreak int       `json:"identical_streak"`
	Geohash         string    `json:"geohash,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}
