package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/utils"
)

// usCountryVariants are the self-reported spellings treated as domestic
var usCountryVariants = map[string]struct{}{
	"us":                       {},
	"usa":                      {},
	"united states":            {},
	"united states of america": {},
}

// inMarketStates are the regions the fleet actually operates in. A
// booking claiming a foreign country while picking up here is the
// mismatch the country sub-check looks for.
var inMarketStates = map[string]struct{}{
	"AZ": {}, "CA": {}, "CO": {}, "FL": {}, "GA": {},
	"IL": {}, "NV": {}, "NY": {}, "TX": {}, "WA": {},
}

// detectGeographic builds the geographic anomaly detector. Two sub-checks:
// impossible travel between consecutive rentals by one identity, and a
// booking-country mismatch against the pickup region. The travel gap and
// risk floor come from configuration.
func detectGeographic(travelGap time.Duration, riskFloor int) detectorFunc {
	return func(events []models.BookingEvent) []models.SuspiciousPattern {
		patterns := make([]models.SuspiciousPattern, 0)
		patterns = append(patterns, detectImpossibleTravel(events, travelGap)...)
		patterns = append(patterns, detectCountryMismatch(events, riskFloor)...)
		return patterns
	}
}

func detectImpossibleTravel(events []models.BookingEvent, travelGap time.Duration) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	byIdentity := groupEvents(events, func(e *models.BookingEvent) string { return e.IdentityKey() })
	for _, identity := range sortedKeys(byIdentity) {
		group := byIdentity[identity]
		if len(group) < 2 {
			continue
		}

		sortByCreated(group)
		for i := 1; i < len(group); i++ {
			earlier := group[i-1]
			later := group[i]
			if samePickupLocation(&earlier, &later) {
				continue
			}

			gap := later.RentalStart.Sub(earlier.RentalEnd)
			if gap >= travelGap {
				continue
			}

			severity := models.SeverityHigh
			if gap < 0 {
				// rentals literally overlap, one guest in two places
				severity = models.SeverityCritical
			}

			pair := []models.BookingEvent{earlier, later}
			patterns = append(patterns, newPattern(
				models.PatternGeographicAnomaly,
				severity,
				95,
				fmt.Sprintf("travel:%s:%s", earlier.ID, later.ID),
				fmt.Sprintf("rentals in %s and %s only %.1f hours apart",
					utils.SanitizeString(pickupLabel(&earlier)),
					utils.SanitizeString(pickupLabel(&later)),
					gap.Hours()),
				pair,
				map[string]interface{}{
					"identity_key": identity,
					"earlier_city": earlier.PickupCity,
					"later_city":   later.PickupCity,
					"gap_hours":    gap.Hours(),
					"overlapping":  gap < 0,
				},
			))
		}
	}

	return patterns
}

func detectCountryMismatch(events []models.BookingEvent, riskFloor int) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	for i := range events {
		e := events[i]
		country := strings.ToLower(strings.TrimSpace(e.BookingCountry))
		if country == "" {
			continue
		}
		if _, domestic := usCountryVariants[country]; domestic {
			continue
		}
		region := strings.ToUpper(strings.TrimSpace(e.PickupRegion))
		if _, inMarket := inMarketStates[region]; !inMarket {
			continue
		}
		if e.RiskScore <= riskFloor {
			continue
		}

		patterns = append(patterns, newPattern(
			models.PatternGeographicAnomaly,
			models.SeverityMedium,
			70,
			"country:"+e.ID,
			fmt.Sprintf("booking claims %s but picks up in %s with prior risk %d",
				utils.SanitizeString(e.BookingCountry), region, e.RiskScore),
			[]models.BookingEvent{e},
			map[string]interface{}{
				"booking_country": e.BookingCountry,
				"pickup_region":   region,
				"risk_score":      e.RiskScore,
			},
		))
	}

	return patterns
}

// samePickupLocation compares pickup city and region case-insensitively
func samePickupLocation(a, b *models.BookingEvent) bool {
	return strings.EqualFold(a.PickupCity, b.PickupCity) &&
		strings.EqualFold(a.PickupRegion, b.PickupRegion)
}

func pickupLabel(e *models.BookingEvent) string {
	if e.PickupCity != "" {
		return e.PickupCity
	}
	if e.PickupRegion != "" {
		return e.PickupRegion
	}
	return "unknown location"
}
