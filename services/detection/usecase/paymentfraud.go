package usecase

import (
	"fmt"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/utils"
)

const paymentMinCancellations = 2

// detectPaymentFraud flags devices that repeatedly trip system
// cancellations. A system cancellation is a proxy for payment failure, not
// a guest changing plans.
func detectPaymentFraud(events []models.BookingEvent) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	cancelled := make([]models.BookingEvent, 0)
	for i := range events {
		if events[i].IsSystemCancellation() {
			cancelled = append(cancelled, events[i])
		}
	}

	byDevice := groupEvents(cancelled, func(e *models.BookingEvent) string { return e.DeviceFingerprint })
	for _, fingerprint := range sortedKeys(byDevice) {
		group := byDevice[fingerprint]
		if len(group) < paymentMinCancellations {
			continue
		}

		severity := models.SeverityMedium
		if len(group) >= 3 {
			severity = models.SeverityHigh
		}

		reasons := distinctLower(group, func(e *models.BookingEvent) string { return e.CancellationReason })
		emails := distinctLower(group, func(e *models.BookingEvent) string { return e.GuestEmail })
		masked := make([]string, 0, len(emails))
		for _, email := range emails {
			masked = append(masked, utils.MaskEmail(email))
		}

		patterns = append(patterns, newPattern(
			models.PatternPaymentFraud,
			severity,
			85,
			"device:"+fingerprint,
			fmt.Sprintf("%d system-cancelled bookings from one device", len(group)),
			group,
			map[string]interface{}{
				"device_fingerprint":   fingerprint,
				"cancellation_reasons": reasons,
				"emails":               masked,
			},
		))
	}

	return patterns
}
