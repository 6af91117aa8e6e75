package usecase

import (
	"fmt"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

const clusterMinDeviceEvents = 2

// detectDeviceCluster flags devices that carry bookings under more than
// one guest identity. Severity scales with the distinct email count since
// emails are harder to fat-finger than display names.
func detectDeviceCluster(events []models.BookingEvent) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	byDevice := groupEvents(events, func(e *models.BookingEvent) string { return e.DeviceFingerprint })
	for _, fingerprint := range sortedKeys(byDevice) {
		group := byDevice[fingerprint]
		if len(group) < clusterMinDeviceEvents {
			continue
		}

		emails := distinctLower(group, func(e *models.BookingEvent) string { return e.GuestEmail })
		names := distinctLower(group, func(e *models.BookingEvent) string { return e.GuestName })
		if len(emails) <= 1 && len(names) <= 1 {
			continue
		}

		var severity models.Severity
		switch {
		case len(emails) > 3:
			severity = models.SeverityHigh
		case len(emails) > 1:
			severity = models.SeverityMedium
		default:
			severity = models.SeverityLow
		}

		patterns = append(patterns, newPattern(
			models.PatternDeviceCluster,
			severity,
			90,
			"device:"+fingerprint,
			fmt.Sprintf("device used by %d distinct emails and %d distinct names across %d bookings", len(emails), len(names), len(group)),
			group,
			map[string]interface{}{
				"device_fingerprint": fingerprint,
				"distinct_emails":    len(emails),
				"distinct_names":     len(names),
			},
		))
	}

	return patterns
}
