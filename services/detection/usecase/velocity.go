package usecase

import (
	"fmt"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/utils"
)

const (
	velocityMinDeviceEvents = 3
	velocityMinIPEvents     = 5
)

// detectVelocity flags devices that create bookings faster than a human
// plausibly would, and IPs that front many distinct devices. Device
// fingerprints are the stronger signal, so the device sub-check carries
// the higher confidence.
func detectVelocity(events []models.BookingEvent) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	byDevice := groupEvents(events, func(e *models.BookingEvent) string { return e.DeviceFingerprint })
	for _, fingerprint := range sortedKeys(byDevice) {
		group := byDevice[fingerprint]
		if len(group) < velocityMinDeviceEvents {
			continue
		}

		sortByCreated(group)
		totalGap := 0.0
		for i := 1; i < len(group); i++ {
			totalGap += group[i].CreatedAt.Sub(group[i-1].CreatedAt).Minutes()
		}
		meanGap := totalGap / float64(len(group)-1)

		var severity models.Severity
		switch {
		case meanGap < 5:
			severity = models.SeverityCritical
		case meanGap < 30:
			severity = models.SeverityHigh
		case meanGap < 120:
			severity = models.SeverityMedium
		default:
			severity = models.SeverityLow
		}

		patterns = append(patterns, newPattern(
			models.PatternVelocity,
			severity,
			95,
			"device:"+fingerprint,
			fmt.Sprintf("%d bookings from one device with a mean gap of %.1f minutes", len(group), meanGap),
			group,
			map[string]interface{}{
				"device_fingerprint": fingerprint,
				"booking_count":      len(group),
				"mean_gap_minutes":   meanGap,
			},
		))
	}

	byIP := groupEvents(events, func(e *models.BookingEvent) string { return e.IPAddress })
	for _, ip := range sortedKeys(byIP) {
		group := byIP[ip]
		if len(group) < velocityMinIPEvents {
			continue
		}

		devices := distinctLower(group, func(e *models.BookingEvent) string { return e.DeviceFingerprint })
		if len(devices) <= 1 {
			// same IP, one device is a shared household, not fraud
			continue
		}

		severity := models.SeverityMedium
		if len(devices) > 3 {
			severity = models.SeverityHigh
		}

		patterns = append(patterns, newPattern(
			models.PatternVelocity,
			severity,
			85,
			"ip:"+ip,
			fmt.Sprintf("%d bookings from IP %s across %d distinct devices", len(group), utils.SanitizeString(ip), len(devices)),
			group,
			map[string]interface{}{
				"ip_address":    ip,
				"booking_count": len(group),
				"device_count":  len(devices),
			},
		))
	}

	return patterns
}
