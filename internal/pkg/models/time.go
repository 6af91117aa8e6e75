package models

import (
	"time"
)

// Timestamps cross the Redis session hash and the NATS event payloads as
// RFC3339Nano strings; pings can arrive sub-second apart, so the full
// nanosecond precision must survive the round trip.
const wireTimeLayout = time.RFC3339Nano

// FormatTimestamp renders a time in the wire timestamp format
func FormatTimestamp(t time.Time) string {
	return t.Format(wireTimeLayout)
}

// ParseTimestamp parses a wire format timestamp
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(wireTimeLayout, s)
}
