package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRegex    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	daysAgoRegex = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)
)

// ParseDate parses a calendar day relative to now
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2025")
// - today, yesterday
// - X days ago (e.g., "3 days ago")
// The result is midnight of that day in now's location.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "":
		return time.Time{}, fmt.Errorf("empty date")
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := daysAgoRegex.FindStringSubmatch(input); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil || days > 3660 {
			return time.Time{}, fmt.Errorf("days must be between 0 and 3660")
		}
		return today.AddDate(0, 0, -days), nil
	}

	m := dateRegex.FindStringSubmatch(input)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, today, yesterday, or X days ago")
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 1970 || year > 2100 {
		return time.Time{}, fmt.Errorf("year must be between 1970 and 2100")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return date, nil
}
