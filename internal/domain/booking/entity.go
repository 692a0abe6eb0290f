package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDurationNotOffered   = errors.New("duration is not offered as a package tier")
	ErrNoBillableDays       = errors.New("selected range contains no billable days")
	ErrPastDate             = errors.New("booking date cannot be in the past")
	ErrStartHourElapsed     = errors.New("start hour has already passed for today")
	ErrHoursAlreadyBooked   = errors.New("selected hours are already booked")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrBookingCanceled      = errors.New("booking is already canceled")
)

type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	userID          uuid.UUID
	dateRange       DateRange
	slot            HourSlot
	includeSaturday bool
	includeSunday   bool
	countedDays     int
	paymentMethod   PaymentMethod
	status          Status
	totalPrice      int64
	creditCost      int
	benefitHours    int
	promoID         *uuid.UUID
	membershipID    *uuid.UUID
	virtualOfficeID *uuid.UUID
	purpose         string
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructBooking(
	id, roomID, userID uuid.UUID,
	dateRange DateRange,
	slot HourSlot,
	includeSaturday, includeSunday bool,
	countedDays int,
	paymentMethod PaymentMethod,
	status Status,
	totalPrice int64,
	creditCost int,
	benefitHours int,
	promoID, membershipID, virtualOfficeID *uuid.UUID,
	purpose string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		roomID:          roomID,
		userID:          userID,
		dateRange:       dateRange,
		slot:            slot,
		includeSaturday: includeSaturday,
		includeSunday:   includeSunday,
		countedDays:     countedDays,
		paymentMethod:   paymentMethod,
		status:          status,
		totalPrice:      totalPrice,
		creditCost:      creditCost,
		benefitHours:    benefitHours,
		promoID:         promoID,
		membershipID:    membershipID,
		virtualOfficeID: virtualOfficeID,
		purpose:         purpose,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status.Blocking()
}

func (b *Booking) Cancel() error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	b.status = StatusCanceled
	return nil
}

// OccupiesDay reports whether the booking blocks hours on the given day,
// honoring the weekend-inclusion toggles of the original selection.
func (b *Booking) OccupiesDay(day time.Time) bool {
	if !b.IsActive() || !b.dateRange.Contains(day) {
		return false
	}
	switch day.Weekday() {
	case time.Saturday:
		return b.includeSaturday
	case time.Sunday:
		return b.includeSunday
	default:
		return true
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RoomID() uuid.UUID            { return b.roomID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) DateRange() DateRange         { return b.dateRange }
func (b *Booking) Slot() HourSlot               { return b.slot }
func (b *Booking) IncludeSaturday() bool        { return b.includeSaturday }
func (b *Booking) IncludeSunday() bool          { return b.includeSunday }
func (b *Booking) CountedDays() int             { return b.countedDays }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) TotalPrice() int64            { return b.totalPrice }
func (b *Booking) CreditCost() int              { return b.creditCost }
func (b *Booking) BenefitHours() int            { return b.benefitHours }
func (b *Booking) PromoID() *uuid.UUID          { return b.promoID }
func (b *Booking) MembershipID() *uuid.UUID     { return b.membershipID }
func (b *Booking) VirtualOfficeID() *uuid.UUID  { return b.virtualOfficeID }
func (b *Booking) Purpose() string              { return b.purpose }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
