package utils

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD date. Any other layout is rejected.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// IsValidMonth reports whether s is a YYYY-MM string naming a real calendar
// month. The layout check alone would let values like "2025-13" through.
func IsValidMonth(s string) bool {
	if !monthPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}

func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

func FormatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthRange returns the half-open [first day, first day of next month) range
// for a YYYY-MM month string.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid month")
	}
	return start, start.AddDate(0, 1, 0), nil
}

// PrevMonth steps one month back, wrapping January to the previous December.
func PrevMonth(month string) string {
	var y, m int
	if _, err := fmt.Sscanf(month, "%d-%d", &y, &m); err != nil {
		return month
	}
	if m == 1 {
		return FormatMonth(y-1, 12)
	}
	return FormatMonth(y, m-1)
}

// LastNMonths returns n month strings ending at endMonth, oldest first.
func LastNMonths(n int, endMonth string) []string {
	out := make([]string, 0, n)
	cur := endMonth
	for i := 0; i < n; i++ {
		out = append(out, cur)
		cur = PrevMonth(cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
