// Package hours resolves a restaurant's raw opening-hours data (structured
// per-day JSON or a loose "Mon 9AM-10PM, Tue ..." string) into an open/closed
// status and a normalized weekly schedule for display.
package hours

// DayHours is a single day's open/close window. Times are 12-hour strings
// such as "9:00 AM" or "10PM".
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeeklySchedule maps lowercase full weekday names ("monday".."sunday") to
// that day's single open/close window. A day missing from the map is closed.
// A nil schedule means the raw input could not be parsed at all.
//
// Only one window per day is representable; lunch/dinner splits are not.
type WeeklySchedule map[string]DayHours

// Weekdays is the fixed Monday-first ordering used everywhere a schedule is
// iterated or rendered.
var Weekdays = [7]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekdayAbbrevs holds the three-letter display abbreviations, in the same
// Monday-first order as Weekdays.
var WeekdayAbbrevs = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StatusType classifies current availability. Exactly one type holds at any
// evaluation instant.
type StatusType string

const (
	StatusOpen          StatusType = "open"
	StatusOpensToday    StatusType = "opensToday"
	StatusOpensTomorrow StatusType = "opensTomorrow"
	StatusOpensLater    StatusType = "opensLater"
	StatusClosed        StatusType = "closed"
	StatusUnknown       StatusType = "unknown"
)

// Status is the resolver's output: the classification plus the display
// strings and badge/icon hints the listing UI renders verbatim.
type Status struct {
	Type             StatusType `json:"type"`
	IsOpenNow        bool       `json:"is_open_now"`
	IsClosedForToday bool       `json:"is_closed_for_today"`
	Label            string     `json:"label"`
	NextOpenTime     string     `json:"next_open_time,omitempty"`
	ClosingTime      string     `json:"closing_time,omitempty"`
	Badge            string     `json:"badge"`
	Icon             string     `json:"icon"`
	Tooltip          string     `json:"tooltip"`
}

// presentation carries the cosmetic hints attached to each status type.
type presentation struct {
	badge   string
	icon    string
	tooltip string
}

var presentations = map[StatusType]presentation{
	StatusOpen:          {"bg-green-100 text-green-800", "🟢", "Currently open"},
	StatusOpensToday:    {"bg-yellow-100 text-yellow-800", "🕒", "Opens later today"},
	StatusOpensTomorrow: {"bg-blue-100 text-blue-800", "📅", "Opens tomorrow"},
	StatusOpensLater:    {"bg-blue-100 text-blue-800", "📅", "Opens later this week"},
	StatusClosed:        {"bg-red-100 text-red-800", "🔴", "Closed"},
	StatusUnknown:       {"bg-gray-100 text-gray-800", "❓", "Hours not available"},
}
