package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// detectorFunc is the contract every detector satisfies: a pure function
// over the fetched event window, no shared mutable state, no I/O.
type detectorFunc func(events []models.BookingEvent) []models.SuspiciousPattern

// namedDetector pairs a detector with a stable name for logging
type namedDetector struct {
	name string
	fn   detectorFunc
}

// groupEvents buckets events by the given key, skipping events whose key
// is empty. Detectors treat a missing field as insufficient evidence.
func groupEvents(events []models.BookingEvent, keyFn func(e *models.BookingEvent) string) map[string][]models.BookingEvent {
	groups := make(map[string][]models.BookingEvent)
	for i := range events {
		key := keyFn(&events[i])
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], events[i])
	}
	return groups
}

// sortedKeys returns the map keys in a stable order so detector output is
// deterministic across runs over the same window.
func sortedKeys(groups map[string][]models.BookingEvent) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortByCreated orders events by creation time ascending
func sortByCreated(events []models.BookingEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
}

// distinctLower collects the distinct lowercased non-empty values produced
// by valueFn, returned in sorted order.
func distinctLower(events []models.BookingEvent, valueFn func(e *models.BookingEvent) string) []string {
	seen := make(map[string]struct{})
	for i := range events {
		v := strings.ToLower(strings.TrimSpace(valueFn(&events[i])))
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// newPattern builds a SuspiciousPattern from the implicated events. The ID
// is derived from the pattern type and group key so reruns over the same
// window produce the same pattern set.
func newPattern(
	patternType models.PatternType,
	severity models.Severity,
	confidence int,
	key string,
	description string,
	events []models.BookingEvent,
	evidence map[string]interface{},
) models.SuspiciousPattern {
	ids := make([]string, 0, len(events))
	firstSeen := events[0].CreatedAt
	lastSeen := events[0].CreatedAt
	for i := range events {
		ids = append(ids, events[i].ID)
		if events[i].CreatedAt.Before(firstSeen) {
			firstSeen = events[i].CreatedAt
		}
		if events[i].CreatedAt.After(lastSeen) {
			lastSeen = events[i].CreatedAt
		}
	}

	return models.SuspiciousPattern{
		ID:          fmt.Sprintf("%s:%s", patternType, key),
		Type:        patternType,
		Severity:    severity,
		Confidence:  confidence,
		BookingIDs:  ids,
		Description: description,
		Evidence:    evidence,
		FirstSeen:   firstSeen,
		LastSeen:    lastSeen,
		Occurrences: len(events),
	}
}
