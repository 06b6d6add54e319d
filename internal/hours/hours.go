// Package hours computes open/closed status and bookable slots from a
// provider's opening periods, corrected to the practice's local time rather
// than the caller's. All functions are pure with respect to their inputs plus
// the injected wall clock; malformed or missing input yields empty results,
// never errors.
package hours

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dentradar/dentradar-api/internal/model"
)

type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock is used by tests to pin the wall clock.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// parseHHMM parses a zero-padded 24h "HHMM" string into an integer clock
// value (e.g. "0930" -> 930). Returns false for anything malformed.
func parseHHMM(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	if v%100 >= 60 || v/100 > 24 {
		return 0, false
	}
	return v, true
}

func clockValue(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// formatClock12 renders an HHMM integer as a 12-hour clock string, "5:30 PM".
func formatClock12(v int) string {
	h := v / 100
	m := v % 100

	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// localNow returns the current wall-clock time in the practice's derived zone.
func (e *Engine) localNow(p *model.Provider) time.Time {
	return e.now().In(LocationForCoords(p.Lat, p.Lng))
}

// periodForDay finds the opening period whose open day matches the given
// weekday (0=Sunday..6=Saturday).
func periodForDay(p *model.Provider, day int) *model.Period {
	for i := range p.OpeningHours.Periods {
		if p.OpeningHours.Periods[i].Open.Day == day {
			return &p.OpeningHours.Periods[i]
		}
	}
	return nil
}

// IsCurrentlyOpen reports whether the practice is open at its local current
// time. A period whose close time is before its open time spans midnight.
func (e *Engine) IsCurrentlyOpen(p *model.Provider) bool {
	if p == nil {
		return false
	}

	now := e.localNow(p)
	period := periodForDay(p, int(now.Weekday()))
	if period == nil {
		return false
	}

	open, ok := parseHHMM(period.Open.Time)
	if !ok {
		return false
	}
	closeAt, ok := parseHHMM(period.Close.Time)
	if !ok {
		return false
	}

	cur := clockValue(now)
	if closeAt < open {
		return cur >= open || cur <= closeAt
	}
	return cur >= open && cur <= closeAt
}

// ClosingTime returns today's closing time as a 12-hour clock string. The
// second return is false when today has no defined period.
func (e *Engine) ClosingTime(p *model.Provider) (string, bool) {
	if p == nil {
		return "", false
	}

	now := e.localNow(p)
	period := periodForDay(p, int(now.Weekday()))
	if period == nil {
		return "", false
	}

	closeAt, ok := parseHHMM(period.Close.Time)
	if !ok {
		return "", false
	}
	return formatClock12(closeAt), true
}

// NextOpening describes the next time the practice opens. Day is empty when
// the opening is today.
type NextOpening struct {
	Time string `json:"time"`
	Day  string `json:"day,omitempty"`
}

// NextOpening searches forward day-by-day for the next day with a defined
// period. The current day counts when the practice has not opened yet; once
// today's opening has passed, the scan wraps through to the same weekday next
// week.
func (e *Engine) NextOpening(p *model.Provider) (*NextOpening, bool) {
	if p == nil {
		return nil, false
	}

	now := e.localNow(p)
	today := int(now.Weekday())

	for offset := 0; offset <= 7; offset++ {
		day := (today + offset) % 7
		period := periodForDay(p, day)
		if period == nil {
			continue
		}

		open, ok := parseHHMM(period.Open.Time)
		if !ok {
			continue
		}

		// Today only counts if the opening is still ahead of us.
		if offset == 0 {
			if clockValue(now) >= open {
				continue
			}
			return &NextOpening{Time: formatClock12(open)}, true
		}

		return &NextOpening{
			Time: formatClock12(open),
			Day:  now.AddDate(0, 0, offset).Weekday().String(),
		}, true
	}

	return nil, false
}

// Status is the combined open/closed view served on the provider detail page.
type Status struct {
	Open        bool         `json:"open"`
	ClosesAt    string       `json:"closes_at,omitempty"`
	NextOpening *NextOpening `json:"next_opening,omitempty"`
	Timezone    string       `json:"timezone"`
}

func (e *Engine) Status(p *model.Provider) *Status {
	s := &Status{
		Open:     e.IsCurrentlyOpen(p),
		Timezone: ZoneForCoords(p.Lat, p.Lng),
	}
	if s.Open {
		if closes, ok := e.ClosingTime(p); ok {
			s.ClosesAt = closes
		}
	} else if next, ok := e.NextOpening(p); ok {
		s.NextOpening = next
	}
	return s
}
