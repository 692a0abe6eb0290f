package booking

import (
	"errors"
	"time"
)

// ClosingHour is the last bookable hour boundary; a slot must end at or
// before it.
const ClosingHour = 22

var (
	ErrInvalidDateRange = errors.New("date range end must not be before start")
	ErrInvalidStartHour = errors.New("start hour must be between 0 and 23")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrPastClosingHour  = errors.New("slot must end by closing hour")
)

// DateRange is a calendar-day range. A nil end means a single-day booking.
type DateRange struct {
	from time.Time
	to   *time.Time
}

func NewDateRange(from time.Time, to *time.Time) (DateRange, error) {
	from = truncateToDay(from)
	if to != nil {
		t := truncateToDay(*to)
		if t.Before(from) {
			return DateRange{}, ErrInvalidDateRange
		}
		to = &t
	}
	return DateRange{from: from, to: to}, nil
}

func (r DateRange) From() time.Time { return r.from }
func (r DateRange) To() *time.Time  { return r.to }

func (r DateRange) IsSingleDay() bool {
	return r.to == nil || r.to.Equal(r.from)
}

// End returns the last day of the range (the first day when no end is set).
func (r DateRange) End() time.Time {
	if r.to == nil {
		return r.from
	}
	return *r.to
}

// Contains reports whether the calendar day d falls within the range.
func (r DateRange) Contains(d time.Time) bool {
	d = truncateToDay(d)
	return !d.Before(r.from) && !d.After(r.End())
}

// BillableDays lists the billable calendar days in the range. Weekdays
// always count; Saturday and Sunday count only when their toggle is on.
// A range with no end yields exactly the start day.
func (r DateRange) BillableDays(includeSaturday, includeSunday bool) []time.Time {
	if r.to == nil {
		return []time.Time{r.from}
	}

	var days []time.Time
	for d := r.from; !d.After(*r.to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday:
			if !includeSaturday {
				continue
			}
		case time.Sunday:
			if !includeSunday {
				continue
			}
		}
		days = append(days, d)
	}
	return days
}

// CountedDays counts the billable calendar days in the range.
func (r DateRange) CountedDays(includeSaturday, includeSunday bool) int {
	return len(r.BillableDays(includeSaturday, includeSunday))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HourSlot is a start hour plus a whole-hour duration within one day.
type HourSlot struct {
	startHour     int
	durationHours int
}

func NewHourSlot(startHour, durationHours int) (HourSlot, error) {
	if startHour < 0 || startHour > 23 {
		return HourSlot{}, ErrInvalidStartHour
	}
	if durationHours <= 0 {
		return HourSlot{}, ErrInvalidDuration
	}
	if startHour+durationHours > ClosingHour {
		return HourSlot{}, ErrPastClosingHour
	}
	return HourSlot{startHour: startHour, durationHours: durationHours}, nil
}

func (s HourSlot) StartHour() int     { return s.startHour }
func (s HourSlot) DurationHours() int { return s.durationHours }
func (s HourSlot) EndHour() int       { return s.startHour + s.durationHours }

// Hours lists every hour the slot occupies, [start, end).
func (s HourSlot) Hours() []int {
	hours := make([]int, 0, s.durationHours)
	for h := s.startHour; h < s.EndHour(); h++ {
		hours = append(hours, h)
	}
	return hours
}

// Overlaps reports whether any occupied hour is in bookedHours.
func (s HourSlot) Overlaps(bookedHours []int) bool {
	for _, booked := range bookedHours {
		if booked >= s.startHour && booked < s.EndHour() {
			return true
		}
	}
	return false
}
