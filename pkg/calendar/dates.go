// Package calendar holds the pure date arithmetic the scheduling engine is
// built on. All dates are timezone-naive calendar days; the canonical wire
// form is the ISO day string YYYY-MM-DD, which sorts lexicographically by
// date.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const isoDay = "2006-01-02"

// AddDays returns the calendar day n days later; n may be negative.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// ToISODay formats a calendar day as YYYY-MM-DD.
func ToISODay(d time.Time) string {
	return d.Format(isoDay)
}

// ParseLooseDate accepts YYYY-MM-DD or DD/MM/YYYY (with '.', '\' or '-'
// normalized to '/') and returns a validated calendar day. A date whose
// components do not round-trip (e.g. 31/02/2024) is rejected.
func ParseLooseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse date: empty input")
	}
	if len(s) >= 4 && isDigits(s[:4]) {
		d, err := time.Parse(isoDay, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		return d, nil
	}
	norm := strings.NewReplacer(".", "/", "\\", "/", "-", "/").Replace(s)
	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("parse date %q: unsupported format", s)
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("parse date %q: non-numeric component", s)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("parse date %q: no such calendar day", s)
	}
	return d, nil
}

// ClampISO clamps an ISO day string into [minISO, maxISO]. String comparison
// is safe because ISO day strings order the same as the dates they name.
func ClampISO(iso, minISO, maxISO string) string {
	if iso < minISO {
		return minISO
	}
	if iso > maxISO {
		return maxISO
	}
	return iso
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
