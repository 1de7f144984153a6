package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockRegex    = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
	durationRegex = regexp.MustCompile(`^(?:(\d+)\s*(?:m|min|mins|minutes?))?\s*(?:(\d+)\s*(?:s|sec|secs|seconds?))?$`)
)

// ParseSeconds parses a duration into whole seconds
// Supported formats:
// - plain seconds (e.g., "90")
// - units (e.g., "90s", "2m", "1m30s", "2 min")
// - clock (e.g., "1:30")
func ParseSeconds(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("duration must be positive")
		}
		return n, nil
	}

	if m := clockRegex.FindStringSubmatch(input); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		if seconds > 59 {
			return 0, fmt.Errorf("seconds must be between 0 and 59")
		}
		return positive(minutes*60 + seconds)
	}

	m := durationRegex.FindStringSubmatch(input)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("invalid duration %q. Use: 90, 90s, 2m, 1m30s or 1:30", input)
	}
	total := 0
	if m[1] != "" {
		minutes, _ := strconv.Atoi(m[1])
		total += minutes * 60
	}
	if m[2] != "" {
		seconds, _ := strconv.Atoi(m[2])
		total += seconds
	}
	return positive(total)
}

func positive(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return n, nil
}
