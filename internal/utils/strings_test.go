package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical strings", a: "johnsmith", b: "johnsmith", expected: 0},
		{name: "single substitution", a: "johnsmith1", b: "johnsmith2", expected: 1},
		{name: "empty first string", a: "", b: "abc", expected: 3},
		{name: "empty second string", a: "abc", b: "", expected: 3},
		{name: "both empty", a: "", b: "", expected: 0},
		{name: "unrelated strings", a: "alice", b: "bob", expected: 5},
		{name: "insertion", a: "user", b: "users", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	// One edit over ten characters must clear the 0.8 structural
	// similarity threshold used by the email pattern detector.
	sim := SimilarityRatio("johnsmith1", "johnsmith2")
	assert.Greater(t, sim, 0.8)

	assert.Equal(t, 1.0, SimilarityRatio("same", "same"))
	assert.Equal(t, 0.0, SimilarityRatio("", ""))
	assert.Less(t, SimilarityRatio("alice", "bob"), 0.5)
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{input: "user1", expected: 1, ok: true},
		{input: "user42abc", expected: 42, ok: true},
		{input: "7up", expected: 7, ok: true},
		{input: "a1b2", expected: 1, ok: true},
		{input: "alice", expected: 0, ok: false},
		{input: "", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, ok := ExtractNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestHasSequentialNumbers(t *testing.T) {
	assert.True(t, HasSequentialNumbers([]string{"user1", "user2", "user3"}))
	assert.True(t, HasSequentialNumbers([]string{"guest9", "guest3", "guest8"}))
	assert.False(t, HasSequentialNumbers([]string{"alice", "bob"}))
	assert.False(t, HasSequentialNumbers([]string{"user1", "user5"}))
	assert.False(t, HasSequentialNumbers([]string{"user1"}))
	assert.False(t, HasSequentialNumbers(nil))
}

func TestStripDigits(t *testing.T) {
	assert.Equal(t, "johnsmith", StripDigits("johnsmith1"))
	assert.Equal(t, "", StripDigits("12345"))
	assert.Equal(t, "nochange", StripDigits("nochange"))
}

func TestSplitEmail(t *testing.T) {
	local, domain, ok := SplitEmail("User1@Example.COM")
	assert.True(t, ok)
	assert.Equal(t, "user1", local)
	assert.Equal(t, "example.com", domain)

	_, _, ok = SplitEmail("not-an-email")
	assert.False(t, ok)

	_, _, ok = SplitEmail("@example.com")
	assert.False(t, ok)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "jo*******@example.com", MaskEmail("johnsmith@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
