// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical applied_date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// dateLayouts are the explicit export formats, tried in order. Numeric
// month and day accept one or two digits.
var dateLayouts = []string{
	"2006-1-2",        // 2024-01-15
	"1/2/2006",        // 01/15/2024
	"1/2/06",          // 01/15/24
	"Jan 2, 2006",     // Jan 15, 2024
	"January 2, 2006", // January 15, 2024
}

// isoLayouts cover ISO-8601 timestamps once a trailing Z has been rewritten
// to +00:00. Each clock precision is tried with +hh:mm, +hhmm, +hh and no
// offset. Fractional seconds are accepted after any seconds field.
var isoLayouts = isoTimestampLayouts(
	[]string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02T15",
		"2006-01-02 15",
		"20060102T150405",
		"20060102T1504",
	},
	[]string{"Z07:00", "-0700", "-07", ""},
)

// isoWeekDate matches YYYY-Www-D and YYYYWwwD. The weekday defaults to 1.
var isoWeekDate = regexp.MustCompile(`^(\d{4})(-?)W(\d{2})(?:(-?)([1-7]))?$`)

func isoTimestampLayouts(clocks, offsets []string) []string {
	layouts := make([]string, 0, len(clocks)*len(offsets)+1)
	for _, clock := range clocks {
		for _, offset := range offsets {
			layouts = append(layouts, clock+offset)
		}
	}
	return append(layouts, "20060102")
}

// Date normalizes an export date to YYYY-MM-DD. Empty input yields "".
// Input matching none of the known formats is returned unchanged.
func Date(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	d, ok := ParseDate(value)
	if !ok {
		return value
	}
	return d
}

// ParseDate reports the YYYY-MM-DD form of value and whether any known
// format matched. Timestamps keep the calendar date of their own offset.
func ParseDate(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}

	iso := strings.ReplaceAll(s, "Z", "+00:00")
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(DateLayout), true
		}
	}

	if t, ok := parseWeekDate(s); ok {
		return t.Format(DateLayout), true
	}
	return "", false
}

// parseWeekDate resolves an ISO week date. Week 53 is accepted only in
// years that have one.
func parseWeekDate(s string) (time.Time, bool) {
	m := isoWeekDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	// Separators must be used consistently: 2024-W03-1 or 2024W031.
	if m[5] != "" && m[2] != m[4] {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[3])
	day := 1
	if m[5] != "" {
		day, _ = strconv.Atoi(m[5])
	}

	// December 28 always falls in the last ISO week of its year.
	_, weeks := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	if week < 1 || week > weeks {
		return time.Time{}, false
	}

	// January 4 always falls in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return monday.AddDate(0, 0, (week-1)*7+day-1), true
}
