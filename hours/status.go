package hours

import (
	"strings"
	"time"
)

const labelUnknown = "Hours not available"

// ResolveStatus evaluates raw opening hours against the supplied wall-clock
// time and classifies the listing as open, opening later, or closed. The
// clock is a parameter rather than read internally so callers stay
// deterministic under test.
func ResolveStatus(raw interface{}, now time.Time) Status {
	sched := ParseHours(raw)
	if len(sched) == 0 {
		return newStatus(StatusUnknown, labelUnknown, "", "")
	}

	today := weekdayName(now.Weekday())
	currentTime := now.Hour()*60 + now.Minute()

	if dh, ok := sched[today]; ok {
		openMin := TimeToMinutes(dh.Open)
		closeMin := TimeToMinutes(dh.Close)
		// Overnight windows (close < open) are compared as same-day minute
		// values and therefore read as closed once midnight passes.
		switch {
		case currentTime >= openMin && currentTime < closeMin:
			closing := MinutesToClock(closeMin)
			return newStatus(StatusOpen, "Open now • Closes "+closing, "", closing)
		case currentTime < openMin:
			opening := MinutesToClock(openMin)
			return newStatus(StatusOpensToday, "Opens "+opening, opening, "")
		}
		// at or past closing: treat like a day without an entry
	}

	for ahead := 1; ahead <= 6; ahead++ {
		day := weekdayName(now.AddDate(0, 0, ahead).Weekday())
		dh, ok := sched[day]
		if !ok {
			continue
		}
		opening := MinutesToClock(TimeToMinutes(dh.Open))
		if ahead == 1 {
			return newStatus(StatusOpensTomorrow, "Opens "+opening+" tomorrow", opening, "")
		}
		return newStatus(StatusOpensLater, "Opens "+opening+" "+titleDay(day), opening, "")
	}

	return newStatus(StatusClosed, "Closed", "", "")
}

func newStatus(t StatusType, label, nextOpen, closing string) Status {
	p := presentations[t]
	return Status{
		Type:             t,
		IsOpenNow:        t == StatusOpen,
		IsClosedForToday: t != StatusOpen && t != StatusOpensToday,
		Label:            label,
		NextOpenTime:     nextOpen,
		ClosingTime:      closing,
		Badge:            p.badge,
		Icon:             p.icon,
		Tooltip:          p.tooltip,
	}
}

func weekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

func titleDay(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}
