package usecase

import (
	"fmt"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/utils"
)

const (
	emailMinDomainEvents = 3
	emailSimilarityBar   = 0.8
)

// detectEmailPattern flags domains whose local-part usernames look
// machine-generated: sequentially numbered, or structurally near-identical.
func detectEmailPattern(events []models.BookingEvent) []models.SuspiciousPattern {
	patterns := make([]models.SuspiciousPattern, 0)

	byDomain := make(map[string][]models.BookingEvent)
	usernames := make(map[string][]string)
	for i := range events {
		local, domain, ok := utils.SplitEmail(events[i].GuestEmail)
		if !ok {
			continue
		}
		byDomain[domain] = append(byDomain[domain], events[i])
		usernames[domain] = append(usernames[domain], local)
	}

	for _, domain := range sortedKeys(byDomain) {
		group := byDomain[domain]
		if len(group) < emailMinDomainEvents {
			continue
		}
		locals := usernames[domain]

		if utils.HasSequentialNumbers(locals) {
			patterns = append(patterns, newPattern(
				models.PatternEmailPattern,
				models.SeverityHigh,
				95,
				"domain:"+domain,
				fmt.Sprintf("sequentially numbered usernames across %d bookings at %s", len(group), domain),
				group,
				map[string]interface{}{
					"domain":        domain,
					"booking_count": len(group),
					"match":         "sequential",
				},
			))
			continue
		}

		if structurallySimilar(locals) {
			patterns = append(patterns, newPattern(
				models.PatternEmailPattern,
				models.SeverityMedium,
				80,
				"domain:"+domain,
				fmt.Sprintf("structurally similar usernames across %d bookings at %s", len(group), domain),
				group,
				map[string]interface{}{
					"domain":        domain,
					"booking_count": len(group),
					"match":         "similarity",
				},
			))
		}
	}

	return patterns
}

// structurallySimilar reports whether the usernames share a common shape:
// either they all reduce to the same non-empty base once digits are
// stripped, or some pair clears the edit-distance similarity bar.
func structurallySimilar(usernames []string) bool {
	if len(usernames) < 2 {
		return false
	}

	base := utils.StripDigits(usernames[0])
	sameBase := base != ""
	for _, u := range usernames[1:] {
		if utils.StripDigits(u) != base {
			sameBase = false
			break
		}
	}
	if sameBase {
		return true
	}

	for i := 0; i < len(usernames); i++ {
		for j := i + 1; j < len(usernames); j++ {
			if utils.SimilarityRatio(usernames[i], usernames[j]) > emailSimilarityBar {
				return true
			}
		}
	}
	return false
}
