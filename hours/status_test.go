package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 was a Monday; all fixed clocks below derive from that week.
func clock(daysFromMonday, hour, minute int) time.Time {
	return time.Date(2024, 1, 1+daysFromMonday, hour, minute, 0, 0, time.UTC)
}

var mondayNineToFive = map[string]DayHours{
	"monday": {Open: "9:00 AM", Close: "5:00 PM"},
}

func TestResolveStatus_OpenNow(t *testing.T) {
	st := ResolveStatus(mondayNineToFive, clock(0, 14, 0))

	assert.Equal(t, StatusOpen, st.Type)
	assert.True(t, st.IsOpenNow)
	assert.False(t, st.IsClosedForToday)
	assert.Equal(t, "5:00 PM", st.ClosingTime)
	assert.Equal(t, "Open now • Closes 5:00 PM", st.Label)
}

func TestResolveStatus_OpensToday(t *testing.T) {
	st := ResolveStatus(mondayNineToFive, clock(0, 8, 0))

	assert.Equal(t, StatusOpensToday, st.Type)
	assert.False(t, st.IsOpenNow)
	assert.Equal(t, "9:00 AM", st.NextOpenTime)
	assert.Equal(t, "Opens 9:00 AM", st.Label)
}

func TestResolveStatus_ClosedAfterLastWindow(t *testing.T) {
	// past close on the only open day: the forward scan finds nothing
	st := ResolveStatus(mondayNineToFive, clock(0, 20, 0))

	assert.Equal(t, StatusClosed, st.Type)
	assert.False(t, st.IsOpenNow)
	assert.True(t, st.IsClosedForToday)
	assert.Equal(t, "Closed", st.Label)
}

func TestResolveStatus_OpensTomorrow(t *testing.T) {
	// evaluated on Sunday; Monday is one day ahead
	st := ResolveStatus("Mon 9AM-5PM, Tue 9AM-5PM", clock(6, 12, 0))

	assert.Equal(t, StatusOpensTomorrow, st.Type)
	assert.Equal(t, "9:00 AM", st.NextOpenTime)
	assert.Equal(t, "Opens 9:00 AM tomorrow", st.Label)
}

func TestResolveStatus_OpensLater(t *testing.T) {
	// evaluated on Monday; Friday is four days ahead
	st := ResolveStatus("Fri 9AM-5PM", clock(0, 12, 0))

	assert.Equal(t, StatusOpensLater, st.Type)
	assert.Equal(t, "9:00 AM", st.NextOpenTime)
	assert.Equal(t, "Opens 9:00 AM Friday", st.Label)
}

func TestResolveStatus_ClosedDayScansForward(t *testing.T) {
	// Monday is marked closed, so any Monday time scans to Tuesday
	for _, hour := range []int{0, 8, 12, 23} {
		st := ResolveStatus("Mon Closed, Tue 9AM-5PM", clock(0, hour, 0))
		assert.Equal(t, StatusOpensTomorrow, st.Type, "hour %d", hour)
		assert.Equal(t, "9:00 AM", st.NextOpenTime)
	}
}

func TestResolveStatus_Unknown(t *testing.T) {
	for _, raw := range []interface{}{nil, "", "call for hours", map[string]DayHours{}} {
		st := ResolveStatus(raw, clock(0, 12, 0))

		assert.Equal(t, StatusUnknown, st.Type)
		assert.False(t, st.IsOpenNow)
		assert.True(t, st.IsClosedForToday)
		assert.Equal(t, "Hours not available", st.Label)
	}
}

func TestResolveStatus_Boundaries(t *testing.T) {
	// open boundary is inclusive, close boundary exclusive
	atOpen := ResolveStatus(mondayNineToFive, clock(0, 9, 0))
	if atOpen.Type != StatusOpen {
		t.Errorf("Expected open at the opening minute, got %s", atOpen.Type)
	}
	atClose := ResolveStatus(mondayNineToFive, clock(0, 17, 0))
	if atClose.Type == StatusOpen {
		t.Error("Expected not-open at the closing minute")
	}
}

func TestResolveStatus_OvernightWindowReadsClosedPastMidnight(t *testing.T) {
	// close < open is compared same-day, so 1 AM on Friday night reads closed
	raw := map[string]DayHours{"friday": {Open: "6:00 PM", Close: "1:00 AM"}}
	st := ResolveStatus(raw, clock(4, 23, 0))
	assert.NotEqual(t, StatusOpen, st.Type)
}

func TestResolveStatus_PresentationHints(t *testing.T) {
	open := ResolveStatus(mondayNineToFive, clock(0, 14, 0))
	assert.Equal(t, "bg-green-100 text-green-800", open.Badge)
	assert.Equal(t, "🟢", open.Icon)

	unknown := ResolveStatus(nil, clock(0, 14, 0))
	assert.Equal(t, "bg-gray-100 text-gray-800", unknown.Badge)
	assert.Equal(t, "Hours not available", unknown.Tooltip)
}
