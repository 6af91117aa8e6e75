package utils

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Levenshtein computes the edit distance between two strings using the
// classic dynamic-programming table. Case-sensitive as supplied; callers
// normalize case beforehand.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	rows := len(ra) + 1
	cols := len(rb) + 1
	dist := make([][]int, rows)
	for i := range dist {
		dist[i] = make([]int, cols)
		dist[i][0] = i
	}
	for j := 0; j < cols; j++ {
		dist[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			dist[i][j] = minInt(
				dist[i-1][j]+1,      // deletion
				dist[i][j-1]+1,      // insertion
				dist[i-1][j-1]+cost, // substitution
			)
		}
	}

	return dist[rows-1][cols-1]
}

// SimilarityRatio returns the normalized edit-distance similarity of two
// strings: 1 - levenshtein(a,b)/max(len(a),len(b)). Zero-length inputs
// yield 0, never a divide-by-zero.
func SimilarityRatio(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// ExtractNumber extracts the first run of digits embedded in s as an
// integer. The second return value is false when s carries no digits.
func ExtractNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}

// HasSequentialNumbers reports whether the numbers embedded in the given
// strings contain any two consecutive integers once sorted ascending.
// Strings without digits are ignored.
func HasSequentialNumbers(values []string) bool {
	nums := make([]int, 0, len(values))
	for _, v := range values {
		if n, ok := ExtractNumber(v); ok {
			nums = append(nums, n)
		}
	}
	if len(nums) < 2 {
		return false
	}

	sort.Ints(nums)
	for i := 1; i < len(nums); i++ {
		if nums[i]-nums[i-1] == 1 {
			return true
		}
	}
	return false
}

// StripDigits removes all decimal digits from s
func StripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

// SplitEmail splits an email address into local part and domain, both
// lowercased. ok is false when the input is not of the form local@domain.
func SplitEmail(email string) (local, domain string, ok bool) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(email)), "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// MaskEmail masks the local part of an email address, keeping the first
// two characters visible. Used when emails land in logs or evidence bags.
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	domain := parts[1]

	var maskedLocal string
	if len(localPart) <= 2 {
		maskedLocal = localPart
	} else {
		maskedLocal = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return maskedLocal + "@" + domain
}

// SanitizeString removes control characters and collapses whitespace,
// for attacker-controlled strings headed into descriptions.
func SanitizeString(s string) string {
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
