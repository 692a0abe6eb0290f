package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode          = errors.New("promo code cannot be empty")
	ErrInvalidDiscount    = errors.New("discount value must be positive")
	ErrInvalidDateWindow  = errors.New("promo end date must not be before start date")
	ErrInvalidScope       = errors.New("invalid promo scope")
	ErrInvalidTimeWindow  = errors.New("invalid promo time window")
)

// percentThreshold splits discount interpretation: values at or below it
// are percentages, values above it are nominal currency deductions.
const percentThreshold = 100

type Promo struct {
	id               uuid.UUID
	code             string
	discountValue    int64
	minDurationHours *int
	timeWindow       *TimeWindow
	startDate        time.Time
	endDate          time.Time
	scope            Scope
}

func NewPromo(
	id uuid.UUID,
	code string,
	discountValue int64,
	minDurationHours *int,
	timeWindow *TimeWindow,
	startDate, endDate time.Time,
	scope Scope,
) (*Promo, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if discountValue <= 0 {
		return nil, ErrInvalidDiscount
	}
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}
	startDate = truncateToDay(startDate)
	endDate = truncateToDay(endDate)
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateWindow
	}

	return &Promo{
		id:               id,
		code:             code,
		discountValue:    discountValue,
		minDurationHours: minDurationHours,
		timeWindow:       timeWindow,
		startDate:        startDate,
		endDate:          endDate,
		scope:            scope,
	}, nil
}

// ActiveOn reports whether the promo covers the given calendar day and
// start hour. The date window is inclusive on both ends; the time window,
// when present, is half-open [start, end).
func (p *Promo) ActiveOn(date time.Time, startHour int) bool {
	date = truncateToDay(date)
	if date.Before(p.startDate) || date.After(p.endDate) {
		return false
	}
	if p.timeWindow == nil {
		return true
	}
	return p.timeWindow.ContainsHour(startHour)
}

// ConditionMet checks the minimum-duration requirement. The duration must
// be strictly greater than the threshold; equal does not qualify.
func (p *Promo) ConditionMet(durationHours int) bool {
	if p.minDurationHours == nil {
		return true
	}
	return durationHours > *p.minDurationHours
}

// Apply deducts the discount from total. Values at or below 100 are
// percentages; larger values are nominal deductions. Never goes below zero.
func (p *Promo) Apply(total int64) int64 {
	var result int64
	if p.discountValue <= percentThreshold {
		result = total - total*p.discountValue/100
	} else {
		result = total - p.discountValue
	}
	if result < 0 {
		return 0
	}
	return result
}

func (p *Promo) ID() uuid.UUID          { return p.id }
func (p *Promo) Code() string           { return p.code }
func (p *Promo) DiscountValue() int64   { return p.discountValue }
func (p *Promo) MinDurationHours() *int { return p.minDurationHours }
func (p *Promo) TimeWindow() *TimeWindow { return p.timeWindow }
func (p *Promo) StartDate() time.Time   { return p.startDate }
func (p *Promo) EndDate() time.Time     { return p.endDate }
func (p *Promo) Scope() Scope           { return p.scope }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
