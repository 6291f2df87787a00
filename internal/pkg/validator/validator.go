package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation (yyyy-MM-dd)
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// LocalDateTimeLayout is the value format of an HTML datetime-local input.
const LocalDateTimeLayout = "2006-01-02T15:04"

// ParseLocalDateTime parses a datetime-local value ("2024-03-01T09:30") as wall
// clock time in loc. Seconds are accepted and dropped; a bare date means midnight.
func ParseLocalDateTime(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{LocalDateTimeLayout, "2006-01-02T15:04:05", "2006-01-02"} {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.Truncate(time.Minute), true
		}
	}
	return time.Time{}, false
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// ParseIDs converts repeated numeric query values into IDs. Empty values are skipped.
func ParseIDs(values []string) ([]int64, bool) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !IsNumeric(v) {
			return nil, false
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// ParseLimit parses a positive result-count limit, falling back to def when empty.
func ParseLimit(value string, def, max int) (int, bool) {
	if IsEmpty(value) {
		return def, true
	}
	if !IsNumeric(value) {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
