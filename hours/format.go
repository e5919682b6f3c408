package hours

import (
	"fmt"
	"strings"
)

// DayScheduleEntry is one row of the structured weekly display.
type DayScheduleEntry struct {
	Day   string `json:"day"`   // "Mon".."Sun"
	Hours string `json:"hours"` // "9:00 AM–10:00 PM" or "Closed"
}

// FormatWeeklySchedule renders raw hours as a Monday-first, seven-entry
// display list, with the literal "Closed" for absent days. Returns nil when
// the input is unparseable.
func FormatWeeklySchedule(raw interface{}) []DayScheduleEntry {
	sched := ParseHours(raw)
	if sched == nil {
		return nil
	}
	entries := make([]DayScheduleEntry, 0, len(Weekdays))
	for i, day := range Weekdays {
		text := "Closed"
		if dh, ok := sched[day]; ok {
			text = formatRange(dh)
		}
		entries = append(entries, DayScheduleEntry{Day: WeekdayAbbrevs[i], Hours: text})
	}
	return entries
}

// FormatWeeklyScheduleString is the single-line variant:
// "Mon 9:00 AM–10:00 PM, Tue Closed, ...". Empty when unparseable.
func FormatWeeklyScheduleString(raw interface{}) string {
	entries := FormatWeeklySchedule(raw)
	if entries == nil {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Day+" "+e.Hours)
	}
	return strings.Join(parts, ", ")
}

// MinutesToClock renders minutes-since-midnight as a 12-hour clock string,
// e.g. 870 → "2:30 PM".
func MinutesToClock(m int) string {
	hour := m / 60 % 24
	minute := m % 60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, meridiem)
}

func formatRange(dh DayHours) string {
	return MinutesToClock(TimeToMinutes(dh.Open)) + "–" + MinutesToClock(TimeToMinutes(dh.Close))
}
