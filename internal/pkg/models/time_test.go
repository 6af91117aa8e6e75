package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	// sub-second ping spacing must survive the wire format
	original := time.Date(2026, 8, 30, 15, 0, 0, 123456789, time.UTC)

	parsed, err := ParseTimestamp(FormatTimestamp(original))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
	assert.Equal(t, original.Nanosecond(), parsed.Nanosecond())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("not-a-timestamp")
	assert.Error(t, err)
}
