package hours

import (
	"fmt"
	"time"

	"github.com/dentradar/dentradar-api/internal/model"
)

const slotIntervalMinutes = 30

// AvailableDate is one bookable calendar day for the scheduling UI.
type AvailableDate struct {
	Display   string    `json:"display"`    // "2 Mon"
	DayAbbrev string    `json:"day_abbrev"` // "Mon"
	Date      time.Time `json:"date"`
	IsToday   bool      `json:"is_today"`
}

// TimeSlot is one bookable 30-minute slot. Value is the 24h "HH:MM" form the
// booking endpoint accepts; IsPast marks slots at or before the practice-local
// current time on the practice-local today.
type TimeSlot struct {
	Value   string `json:"value"`   // "09:30"
	Display string `json:"display"` // "9:30 AM"
	IsPast  bool   `json:"is_past"`
}

// AvailableDates enumerates daysToShow consecutive calendar days starting at
// the practice-local today, or at start when given, keeping only days whose
// weekday has a defined period. Providers without coordinates get no dates.
func (e *Engine) AvailableDates(p *model.Provider, daysToShow int, start *time.Time) []AvailableDate {
	if p == nil || daysToShow <= 0 {
		return []AvailableDate{}
	}
	if p.Lat == 0 && p.Lng == 0 {
		return []AvailableDate{}
	}

	loc := LocationForCoords(p.Lat, p.Lng)
	now := e.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	from := today
	if start != nil {
		s := start.In(loc)
		from = time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	}

	dates := []AvailableDate{}
	for i := 0; i < daysToShow; i++ {
		day := from.AddDate(0, 0, i)
		if periodForDay(p, int(day.Weekday())) == nil {
			continue
		}

		abbrev := day.Weekday().String()[:3]
		dates = append(dates, AvailableDate{
			Display:   fmt.Sprintf("%d %s", day.Day(), abbrev),
			DayAbbrev: abbrev,
			Date:      day,
			IsToday:   day.Equal(today),
		})
	}
	return dates
}

// AvailableTimeSlots generates fixed 30-minute slots from the period open time
// through the close time inclusive for the selected date's weekday. The HHMM
// counter rolls minutes >= 60 into the next hour and stops past 2400.
func (e *Engine) AvailableTimeSlots(p *model.Provider, selectedDate time.Time) []TimeSlot {
	if p == nil {
		return []TimeSlot{}
	}

	loc := LocationForCoords(p.Lat, p.Lng)
	date := selectedDate.In(loc)

	period := periodForDay(p, int(date.Weekday()))
	if period == nil {
		return []TimeSlot{}
	}

	open, ok := parseHHMM(period.Open.Time)
	if !ok {
		return []TimeSlot{}
	}
	closeAt, ok := parseHHMM(period.Close.Time)
	if !ok {
		return []TimeSlot{}
	}

	now := e.now().In(loc)
	isToday := now.Year() == date.Year() && now.YearDay() == date.YearDay()
	cur := clockValue(now)

	slots := []TimeSlot{}
	h, m := open/100, open%100
	for {
		v := h*100 + m
		if v > closeAt || v > 2400 {
			break
		}

		slots = append(slots, TimeSlot{
			Value:   fmt.Sprintf("%02d:%02d", h, m),
			Display: formatClock12(v),
			IsPast:  isToday && v <= cur,
		})

		m += slotIntervalMinutes
		if m >= 60 {
			h++
			m -= 60
		}
	}
	return slots
}
