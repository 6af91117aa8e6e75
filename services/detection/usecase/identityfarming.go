package usecase

import (
	"fmt"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

const (
	farmingMinEvents     = 5
	farmingMinEmails     = 3
	farmingCompletionBar = 0.2
)

// detectIdentityFarming flags devices that mint many guest identities but
// rarely finish a rental.
func detectIdentityFarming(events []models.BookingEvent) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	byDevice := groupEvents(events, func(e *models.BookingEvent) string { return e.DeviceFingerprint })
	for _, fingerprint := range sortedKeys(byDevice) {
		group := byDevice[fingerprint]
		if len(group) < farmingMinEvents {
			continue
		}

		statusCounts := make(map[string]int)
		completed := 0
		for i := range group {
			statusCounts[string(group[i].Status)]++
			if group[i].Status == models.BookingStatusCompleted {
				completed++
			}
		}

		ratio := float64(completed) / float64(len(group))
		if ratio >= farmingCompletionBar {
			continue
		}

		emails := distinctLower(group, func(e *models.BookingEvent) string { return e.GuestEmail })
		if len(emails) < farmingMinEmails {
			continue
		}

		patterns = append(patterns, newPattern(
			models.PatternIdentityFarming,
			models.SeverityHigh,
			80,
			"device:"+fingerprint,
			fmt.Sprintf("device with %d bookings, %d completed, %d distinct emails", len(group), completed, len(emails)),
			group,
			map[string]interface{}{
				"device_fingerprint": fingerprint,
				"total_bookings":     len(group),
				"completed_bookings": completed,
				"completion_ratio":   ratio,
				"distinct_emails":    len(emails),
				"status_counts":      statusCounts,
			},
		))
	}

	return patterns
}
