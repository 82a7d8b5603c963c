package validate

import (
	"strconv"
	"strings"
	"time"

	"commentbox/internal/datefmt"
)

// Years a date field may name. Every date in range fits epoch milliseconds
// and the four-digit input format.
const (
	MinYear = 1
	MaxYear = 9999
)

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsFutureDate reports whether date is strictly later than now.
func IsFutureDate(date, now time.Time) bool {
	return date.After(now)
}

// ParseDate parses "YYYY-MM-DD" or "YYYY.MM.DD" into local midnight.
func ParseDate(text string) (time.Time, bool) {
	return ParseDateIn(text, time.Local)
}

// ParseDateIn is ParseDate with an explicit location.
//
// The text must split into exactly three all-digit components on one
// separator; year must be MinYear..MaxYear, month must be 1..12 and day
// must exist in that month.
func ParseDateIn(text string, loc *time.Location) (time.Time, bool) {
	text = strings.TrimSpace(text)

	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		parts = strings.Split(text, ".")
	}
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, ok := parseDigits(p)
		if !ok {
			return time.Time{}, false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if year < MinYear || year > MaxYear {
		return time.Time{}, false
	}
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > datefmt.DaysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
