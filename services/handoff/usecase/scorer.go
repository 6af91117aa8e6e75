package usecase

import (
	"math"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/utils"
)

// baselineTrust is returned for the first ping of a session. Not 100:
// one ping is insufficient evidence, not proof of genuine movement.
const baselineTrust = 85

// deductions applied by the trust score pipeline
const (
	deductImpossibleSpeed = 40
	deductIdenticalCoords = 5
	deductIdenticalStreak = 15
	deductNullIsland      = 50
)

// pingAssessment is the full outcome of evaluating one ping against the
// previous one: the trust score, the movement classification, and the
// facts the caller needs to maintain session state.
type pingAssessment struct {
	Trust      int
	Direction  models.MovementDirection
	ETAMinutes *int
	Identical  bool
	SpeedMPH   float64
}

// assessPing scores one ping against the previous one. Pure arithmetic,
// no I/O; session state is the caller's responsibility. identicalStreak
// is the count of consecutive bit-identical pings seen before this one.
func assessPing(current models.GpsPing, previous *models.GpsPing, identicalStreak int, cfg models.HandoffConfig) pingAssessment {
	if previous == nil {
		return pingAssessment{
			Trust:     baselineTrust,
			Direction: models.DirectionStationary,
		}
	}

	elapsed := current.Timestamp.Sub(previous.Timestamp).Seconds()
	if elapsed <= 0 {
		// clock skew or a duplicate ping: can't evaluate, don't penalize
		return pingAssessment{
			Trust:     clampTrust(100),
			Direction: models.DirectionUnknown,
		}
	}

	moved := utils.DistanceMeters(utils.GeoPointFromPing(*previous), utils.GeoPointFromPing(current))
	speed := utils.SpeedMPH(moved, elapsed)

	trust := 100
	if speed > cfg.ImpossibleSpeedMPH {
		trust -= deductImpossibleSpeed
	}

	identical := current.Latitude == previous.Latitude && current.Longitude == previous.Longitude
	if identical {
		deduction := deductIdenticalCoords
		if cfg.IdenticalStreakLimit > 0 && identicalStreak+1 >= cfg.IdenticalStreakLimit {
			// a guest pinned to the same coordinates for this long is a
			// replayed fix, not someone waiting by the car
			deduction = deductIdenticalStreak
		}
		trust -= deduction
	}

	if math.Abs(current.Latitude) <= cfg.NullIslandDegrees && math.Abs(current.Longitude) <= cfg.NullIslandDegrees {
		trust -= deductNullIsland
	}

	direction, eta := classifyMovement(current, *previous, speed, cfg)

	return pingAssessment{
		Trust:      clampTrust(trust),
		Direction:  direction,
		ETAMinutes: eta,
		Identical:  identical,
		SpeedMPH:   speed,
	}
}

// classifyMovement derives the movement direction from the change in
// distance-to-target, and an ETA when the guest is actually converging.
func classifyMovement(current, previous models.GpsPing, speedMPH float64, cfg models.HandoffConfig) (models.MovementDirection, *int) {
	delta := current.DistanceToPickupM - previous.DistanceToPickupM

	if math.Abs(delta) < cfg.StationaryBandM {
		return models.DirectionStationary, nil
	}
	if delta > 0 {
		return models.DirectionAway, nil
	}

	if speedMPH <= cfg.MinETASpeedMPH {
		return models.DirectionApproaching, nil
	}

	milesRemaining := utils.MetersToMiles(current.DistanceToPickupM)
	eta := int(math.Round(milesRemaining / speedMPH * 60))
	return models.DirectionApproaching, &eta
}

func clampTrust(trust int) int {
	if trust < 0 {
		return 0
	}
	if trust > 100 {
		return 100
	}
	return trust
}
