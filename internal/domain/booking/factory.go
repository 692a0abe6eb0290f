package booking

import (
	"github.com/google/uuid"

	"cospace-api/internal/domain/membership"
	"cospace-api/internal/domain/promo"
	"cospace-api/internal/domain/room"
	"cospace-api/internal/domain/virtualoffice"
	"cospace-api/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// Selection is everything the user picked on the booking page.
type Selection struct {
	DateRange       DateRange
	Slot            HourSlot
	IncludeSaturday bool
	IncludeSunday   bool
	PaymentMethod   PaymentMethod
	Purpose         string
}

// CreateBooking runs the full pricing and eligibility pipeline and
// returns a booking ready to persist. matched is the promo selected for
// the range start (nil when none or when the method is not normal);
// member and benefit are the caller's records for the room's category,
// nil when absent.
func (f *Factory) CreateBooking(
	rm *room.Room,
	userID uuid.UUID,
	sel Selection,
	bookedHours []int,
	matched *promo.Promo,
	member *membership.Membership,
	benefit *virtualoffice.Benefit,
) (*Booking, error) {
	if !sel.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if !rm.HasTier(sel.Slot.DurationHours()) {
		return nil, ErrDurationNotOffered
	}

	now := f.Clock.Now()
	today := truncateToDay(now)
	if sel.DateRange.From().Before(today) {
		return nil, ErrPastDate
	}
	// Same-day bookings cannot start at an hour that has already begun.
	if sel.DateRange.From().Equal(today) && sel.Slot.StartHour() <= now.Hour() {
		return nil, ErrStartHourElapsed
	}

	countedDays := sel.DateRange.CountedDays(sel.IncludeSaturday, sel.IncludeSunday)
	if countedDays == 0 {
		return nil, ErrNoBillableDays
	}

	if sel.Slot.Overlaps(bookedHours) {
		return nil, ErrHoursAlreadyBooked
	}

	if sel.PaymentMethod != PaymentNormal {
		matched = nil
	}
	quote := ComputeQuote(rm, sel.Slot, countedDays, sel.PaymentMethod, matched)

	if !Eligible(sel.PaymentMethod, sel.Slot, countedDays, member, benefit, rm.Category().Class()) {
		switch sel.PaymentMethod {
		case PaymentCredit:
			return nil, membership.ErrInsufficientCredit
		default:
			return nil, virtualoffice.ErrInsufficientBenefit
		}
	}

	b := &Booking{
		id:              uuid.New(),
		roomID:          rm.ID(),
		userID:          userID,
		dateRange:       sel.DateRange,
		slot:            sel.Slot,
		includeSaturday: sel.IncludeSaturday,
		includeSunday:   sel.IncludeSunday,
		countedDays:     countedDays,
		paymentMethod:   sel.PaymentMethod,
		status:          initialStatus(sel.PaymentMethod),
		totalPrice:      quote.TotalPrice,
		creditCost:      quote.CreditCost,
		benefitHours:    quote.RequiredBenefitHours,
		purpose:         sel.Purpose,
	}

	if matched != nil && quote.AppliedPromoCode != nil {
		id := matched.ID()
		b.promoID = &id
	}
	if sel.PaymentMethod == PaymentCredit && member != nil {
		id := member.ID()
		b.membershipID = &id
	}
	if sel.PaymentMethod == PaymentVirtualOffice && benefit != nil {
		id := benefit.ID()
		b.virtualOfficeID = &id
	}

	return b, nil
}

// Cash and QRIS bookings settle at the cashier, so they start pending;
// balance-backed bookings are deducted immediately and start confirmed.
func initialStatus(method PaymentMethod) Status {
	if method == PaymentNormal {
		return StatusPending
	}
	return StatusConfirmed
}
