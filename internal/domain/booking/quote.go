package booking

import (
	"cospace-api/internal/domain/membership"
	"cospace-api/internal/domain/promo"
	"cospace-api/internal/domain/room"
	"cospace-api/internal/domain/virtualoffice"
)

// Quote is the computed cost of a booking selection under one payment
// method. TotalPrice, CreditCost and RequiredBenefitHours are mutually
// exclusive: only the active method's field is non-zero.
type Quote struct {
	PaymentMethod        PaymentMethod
	CountedDays          int
	TotalPrice           int64
	CreditCost           int
	RequiredBenefitHours int
	AppliedPromoCode     *string
}

// ComputeQuote prices a selection for the given payment method.
//
// normal: exact package-tier lookup (a duration outside the tier list
// prices at 0), multiplied by counted days, then discounted when the
// matched promo's minimum-duration condition holds. Promos never apply
// to the other methods.
//
// credit: CreditCost carries the per-day figure (the duration); the
// counted-days multiplication happens at eligibility and deduction time.
//
// virtual office: no price and no credit; RequiredBenefitHours carries
// the hours the eligibility check will test against the benefit balance.
func ComputeQuote(rm *room.Room, slot HourSlot, countedDays int, method PaymentMethod, matched *promo.Promo) Quote {
	q := Quote{
		PaymentMethod: method,
		CountedDays:   countedDays,
	}

	switch method {
	case PaymentCredit:
		q.CreditCost = slot.DurationHours()
	case PaymentVirtualOffice:
		q.RequiredBenefitHours = slot.DurationHours() * countedDays
	default:
		tierPrice, _ := rm.TierPriceFor(slot.DurationHours())
		total := tierPrice * int64(countedDays)
		if matched != nil && matched.ConditionMet(slot.DurationHours()) {
			total = matched.Apply(total)
			code := matched.Code()
			q.AppliedPromoCode = &code
		}
		q.TotalPrice = total
	}

	return q
}

// Eligible applies the per-method affordability rule. Nil membership or
// benefit means no such record exists, which disables that method.
// Eligibility is strictly boolean: there is no partial-credit plus
// partial-cash split.
func Eligible(
	method PaymentMethod,
	slot HourSlot,
	countedDays int,
	member *membership.Membership,
	benefit *virtualoffice.Benefit,
	class room.Class,
) bool {
	switch method {
	case PaymentCredit:
		return member != nil && member.CanCover(slot.DurationHours(), countedDays)
	case PaymentVirtualOffice:
		return benefit != nil && benefit.CanCover(class, slot.DurationHours()*countedDays)
	default:
		return true
	}
}
