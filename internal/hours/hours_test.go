package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dentradar/dentradar-api/internal/model"
)

// Manhattan, resolves to America/New_York.
const (
	nycLat = 40.7128
	nycLng = -74.0060
)

// fixedEngine pins the wall clock to the given UTC instant.
func fixedEngine(utc time.Time) *Engine {
	return NewEngineWithClock(func() time.Time { return utc })
}

func weekdayProvider(openTime, closeTime string, days ...int) *model.Provider {
	p := &model.Provider{Lat: nycLat, Lng: nycLng}
	for _, d := range days {
		p.OpeningHours.Periods = append(p.OpeningHours.Periods, model.Period{
			Open:  model.PeriodPoint{Day: d, Time: openTime},
			Close: model.PeriodPoint{Day: d, Time: closeTime},
		})
	}
	return p
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"0900", 900, true},
		{"0000", 0, true},
		{"2359", 2359, true},
		{"2400", 2400, true},
		{"0960", 0, false},
		{"2500", 0, false},
		{"900", 0, false},
		{"09:00", 0, false},
		{"", 0, false},
		{"abcd", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHHMM(tt.in)
		assert.Equal(t, tt.valid, ok, "input %q", tt.in)
		if tt.valid {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestFormatClock12(t *testing.T) {
	assert.Equal(t, "12:00 AM", formatClock12(0))
	assert.Equal(t, "12:30 AM", formatClock12(30))
	assert.Equal(t, "9:05 AM", formatClock12(905))
	assert.Equal(t, "12:00 PM", formatClock12(1200))
	assert.Equal(t, "5:30 PM", formatClock12(1730))
	assert.Equal(t, "11:59 PM", formatClock12(2359))
}

func TestIsCurrentlyOpen(t *testing.T) {
	// Wednesday 2025-06-11 10:00 EDT.
	wedMorning := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)

	p := weekdayProvider("0900", "1700", 3)

	assert.True(t, fixedEngine(wedMorning).IsCurrentlyOpen(p))

	// 08:30 local, before opening.
	assert.False(t, fixedEngine(wedMorning.Add(-90*time.Minute)).IsCurrentlyOpen(p))

	// 17:00 local is inclusive, 17:01 is not.
	assert.True(t, fixedEngine(time.Date(2025, 6, 11, 21, 0, 0, 0, time.UTC)).IsCurrentlyOpen(p))
	assert.False(t, fixedEngine(time.Date(2025, 6, 11, 21, 1, 0, 0, time.UTC)).IsCurrentlyOpen(p))

	// No period for Thursday.
	assert.False(t, fixedEngine(time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC)).IsCurrentlyOpen(p))

	assert.False(t, fixedEngine(wedMorning).IsCurrentlyOpen(nil))
}

func TestIsCurrentlyOpenSpansMidnight(t *testing.T) {
	// Open Wednesday 20:00, closes 02:00 past midnight.
	p := weekdayProvider("2000", "0200", 3)

	// Wednesday 23:00 EDT.
	assert.True(t, fixedEngine(time.Date(2025, 6, 12, 3, 0, 0, 0, time.UTC)).IsCurrentlyOpen(p))

	// Wednesday 01:00 EDT, before the same-day close boundary.
	assert.True(t, fixedEngine(time.Date(2025, 6, 11, 5, 0, 0, 0, time.UTC)).IsCurrentlyOpen(p))

	// Wednesday 12:00 EDT, between close and open.
	assert.False(t, fixedEngine(time.Date(2025, 6, 11, 16, 0, 0, 0, time.UTC)).IsCurrentlyOpen(p))
}

func TestClosingTime(t *testing.T) {
	p := weekdayProvider("0900", "1730", 3)

	closes, ok := fixedEngine(time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)).ClosingTime(p)
	assert.True(t, ok)
	assert.Equal(t, "5:30 PM", closes)

	_, ok = fixedEngine(time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC)).ClosingTime(p)
	assert.False(t, ok)
}

func TestNextOpening(t *testing.T) {
	// Open Wednesday and Friday.
	p := weekdayProvider("0900", "1700", 3, 5)

	// Wednesday 07:00 EDT: opens later today, no day name.
	next, ok := fixedEngine(time.Date(2025, 6, 11, 11, 0, 0, 0, time.UTC)).NextOpening(p)
	assert.True(t, ok)
	assert.Equal(t, "9:00 AM", next.Time)
	assert.Empty(t, next.Day)

	// Wednesday 10:00 EDT: already open today, next is Friday.
	next, ok = fixedEngine(time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)).NextOpening(p)
	assert.True(t, ok)
	assert.Equal(t, "Friday", next.Day)

	// No periods at all.
	_, ok = fixedEngine(time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)).NextOpening(&model.Provider{Lat: nycLat, Lng: nycLng})
	assert.False(t, ok)
}

func TestNextOpeningWrapsToSameWeekday(t *testing.T) {
	// Open Wednesday only, queried Wednesday 20:00 EDT after closing; the next
	// opening is the same weekday a week out.
	p := weekdayProvider("0900", "1700", 3)
	e := fixedEngine(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))

	assert.False(t, e.IsCurrentlyOpen(p))

	next, ok := e.NextOpening(p)
	assert.True(t, ok)
	assert.Equal(t, "Wednesday", next.Day)
	assert.Equal(t, "9:00 AM", next.Time)

	s := e.Status(p)
	assert.False(t, s.Open)
	if assert.NotNil(t, s.NextOpening) {
		assert.Equal(t, "Wednesday", s.NextOpening.Day)
	}
}

func TestStatus(t *testing.T) {
	p := weekdayProvider("0900", "1700", 3, 5)

	open := fixedEngine(time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)).Status(p)
	assert.True(t, open.Open)
	assert.Equal(t, "5:00 PM", open.ClosesAt)
	assert.Nil(t, open.NextOpening)
	assert.Equal(t, "America/New_York", open.Timezone)

	// Thursday: closed, next opening Friday.
	closed := fixedEngine(time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC)).Status(p)
	assert.False(t, closed.Open)
	assert.Empty(t, closed.ClosesAt)
	if assert.NotNil(t, closed.NextOpening) {
		assert.Equal(t, "Friday", closed.NextOpening.Day)
		assert.Equal(t, "9:00 AM", closed.NextOpening.Time)
	}
}
