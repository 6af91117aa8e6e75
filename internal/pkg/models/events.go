package models

import "time"

// HandoffTrustEvent is the advisory event published after scoring a ping.
// Consumers (booking state machine, operator dashboards) react to it; the
// engine itself never acts on a score.
type HandoffTrustEvent struct {
	HandoffID  string            `json:"handoff_id"`
	TrustScore int               `json:"trust_score"`
	Direction  MovementDirection `json:"direction"`
	ETAMinutes *int              `json:"eta_minutes"`
	Timestamp  time.Time         `json:"timestamp"`
}

// HandoffEndedEvent is published when a handoff session is discarded,
// whether completed, expired or bypassed.
type HandoffEndedEvent struct {
	HandoffID string    `json:"handoff_id"`
	EndedAt   time.Time `json:"ended_at"`
}
