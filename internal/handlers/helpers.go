package handlers

import (
	"strconv"
	"strings"
)

func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}

func parseID(value string) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || parsed < 1 {
		return 0
	}
	return parsed
}

func parseWeekday(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 || parsed > 6 {
		return 0
	}
	return parsed
}

func parseOptionalFloat(value string) (*float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, true
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || parsed < 0 {
		return nil, false
	}
	return &parsed, true
}

// timeBefore compares HH:MM strings; the fixed-width format makes the
// lexicographic order the chronological one.
func timeBefore(start, end string) bool {
	return start < end
}
