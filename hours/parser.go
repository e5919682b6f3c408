package hours

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern matches "<h>[:<mm>] <AM|PM>" with an optional space before the
// meridiem, e.g. "9:00 AM", "10PM", "12:30 pm".
var timePattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*$`)

// dayPatterns extracts one "<Day> <open>-<close>" range per weekday from a
// free-text hours string. Built once, Monday first.
var dayPatterns [7]*regexp.Regexp

func init() {
	for i, abbr := range WeekdayAbbrevs {
		// the abbreviation may be followed by the rest of the day name
		// ("Tues", "Monday"); the range halves split on - or – and the
		// entry is terminated by a comma or end of input
		dayPatterns[i] = regexp.MustCompile(
			fmt.Sprintf(`(?i)\b%s[a-z]*\.?\s+([^,]+?)\s*[-–]\s*([^,]+?)\s*(?:,|$)`, abbr))
	}
}

// ParseHours converts a raw hours representation into a WeeklySchedule. The
// input may be a per-day map (structured), a string holding JSON of the same
// shape, or a loose human string like "Mon 9AM-10PM, Tue Closed, Wed 11AM-9PM".
// Anything that yields zero usable days comes back nil; ParseHours never
// returns an error and never panics on malformed input.
func ParseHours(raw interface{}) WeeklySchedule {
	if raw == nil {
		return nil
	}

	if s, ok := raw.(string); ok {
		var m map[string]DayHours
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			return normalizeDayMap(m)
		}
		return parseFreeText(s)
	}

	// Structured input (map, struct, decoded JSON): round-trip through JSON
	// to land on the canonical per-day shape.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var m map[string]DayHours
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return normalizeDayMap(m)
}

func normalizeDayMap(m map[string]DayHours) WeeklySchedule {
	sched := make(WeeklySchedule)
	for key, dh := range m {
		day := strings.ToLower(strings.TrimSpace(key))
		if !isWeekday(day) || dh.Open == "" || dh.Close == "" {
			continue
		}
		sched[day] = dh
	}
	if len(sched) == 0 {
		return nil
	}
	return sched
}

func parseFreeText(s string) WeeklySchedule {
	sched := make(WeeklySchedule)
	for i, day := range Weekdays {
		m := dayPatterns[i].FindStringSubmatch(s)
		if m == nil {
			continue
		}
		// "Mon Closed-..." style matches are a closed day, not a window
		if strings.Contains(strings.ToLower(m[1]), "closed") {
			continue
		}
		sched[day] = DayHours{
			Open:  strings.TrimSpace(m[1]),
			Close: strings.TrimSpace(m[2]),
		}
	}
	if len(sched) == 0 {
		return nil
	}
	return sched
}

func isWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TimeToMinutes parses a 12-hour time string into minutes since midnight
// (12 AM → 0, 12 PM → 720). Strings that do not match the expected pattern
// normalize to 0; callers get a best-effort midnight default, never an error.
func TimeToMinutes(s string) int {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return 0
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return hour*60 + minute
}
