//go:build unit

package booking_test

import (
	"testing"

	"cospace-api/internal/domain/booking"
	"cospace-api/internal/domain/membership"
	"cospace-api/internal/domain/room"
	"cospace-api/internal/domain/virtualoffice"
	"cospace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, start, duration int) booking.HourSlot {
	t.Helper()
	s, err := booking.NewHourSlot(start, duration)
	require.NoError(t, err)
	return s
}

func TestComputeQuoteNormal(t *testing.T) {
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("package price times counted days", func(t *testing.T) {
		q := booking.ComputeQuote(rm, slot(t, 9, 4), 2, booking.PaymentNormal, nil)

		assert.Equal(t, int64(400000), q.TotalPrice)
		assert.Zero(t, q.CreditCost)
		assert.Zero(t, q.RequiredBenefitHours)
		assert.Nil(t, q.AppliedPromoCode)
	})

	t.Run("duration outside tier list prices at zero", func(t *testing.T) {
		q := booking.ComputeQuote(rm, slot(t, 9, 3), 2, booking.PaymentNormal, nil)
		assert.Zero(t, q.TotalPrice)
	})

	t.Run("percent discount with condition met", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDiscount(10).WithMinDuration(2).MustBuild()

		q := booking.ComputeQuote(rm, slot(t, 9, 4), 2, booking.PaymentNormal, p)

		assert.Equal(t, int64(360000), q.TotalPrice)
		require.NotNil(t, q.AppliedPromoCode)
		assert.Equal(t, p.Code(), *q.AppliedPromoCode)
	})

	t.Run("discount value 100 is a full percent discount", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDiscount(100).MustBuild()

		q := booking.ComputeQuote(rm, slot(t, 9, 4), 1, booking.PaymentNormal, p)
		assert.Zero(t, q.TotalPrice)
	})

	t.Run("discount value 101 is a nominal deduction", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDiscount(101).MustBuild()

		q := booking.ComputeQuote(rm, slot(t, 9, 4), 1, booking.PaymentNormal, p)
		assert.Equal(t, int64(200000-101), q.TotalPrice)
	})

	t.Run("nominal discount clamps at zero", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDiscount(999999999).MustBuild()

		q := booking.ComputeQuote(rm, slot(t, 9, 4), 1, booking.PaymentNormal, p)
		assert.Zero(t, q.TotalPrice)
	})

	t.Run("minimum duration is strictly greater", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDiscount(10).WithMinDuration(4).MustBuild()

		q := booking.ComputeQuote(rm, slot(t, 9, 4), 1, booking.PaymentNormal, p)
		assert.Equal(t, int64(200000), q.TotalPrice, "duration equal to minimum must not qualify")
		assert.Nil(t, q.AppliedPromoCode)

		rm5, err := builder.NewRoomBuilder().
			WithTiers(room.PackageTier{DurationHours: 5, Price: 240000}).
			BuildDomain()
		require.NoError(t, err)

		q = booking.ComputeQuote(rm5, slot(t, 9, 5), 1, booking.PaymentNormal, p)
		assert.Equal(t, int64(216000), q.TotalPrice, "duration above minimum must qualify")
	})
}

func TestComputeQuoteCredit(t *testing.T) {
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	q := booking.ComputeQuote(rm, slot(t, 9, 4), 3, booking.PaymentCredit, nil)

	// Credit cost holds the per-day figure; days multiply in at
	// eligibility and deduction time.
	assert.Equal(t, 4, q.CreditCost)
	assert.Zero(t, q.TotalPrice)
	assert.Zero(t, q.RequiredBenefitHours)
}

func TestComputeQuoteVirtualOffice(t *testing.T) {
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	q := booking.ComputeQuote(rm, slot(t, 9, 4), 3, booking.PaymentVirtualOffice, nil)

	assert.Zero(t, q.TotalPrice)
	assert.Zero(t, q.CreditCost)
	assert.Equal(t, 12, q.RequiredBenefitHours)
}

func TestQuoteMutualExclusivity(t *testing.T) {
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)
	s := slot(t, 9, 4)

	// Switching payment method recomputes from scratch; no stale values
	// from the previous method survive.
	credit := booking.ComputeQuote(rm, s, 2, booking.PaymentCredit, nil)
	assert.Equal(t, 4, credit.CreditCost)
	assert.Zero(t, credit.TotalPrice)

	normal := booking.ComputeQuote(rm, s, 2, booking.PaymentNormal, nil)
	assert.Zero(t, normal.CreditCost)
	assert.Equal(t, int64(400000), normal.TotalPrice)
}

func TestEligibility(t *testing.T) {
	newMembership := func(t *testing.T, credit int) *membership.Membership {
		t.Helper()
		m, err := membership.NewMembership(uuid.New(), uuid.New(), uuid.New(), credit, nil)
		require.NoError(t, err)
		return m
	}
	newBenefit := func(t *testing.T, meeting, working int) *virtualoffice.Benefit {
		t.Helper()
		b, err := virtualoffice.NewBenefit(uuid.New(), uuid.New(), meeting, working)
		require.NoError(t, err)
		return b
	}

	t.Run("normal always eligible", func(t *testing.T) {
		assert.True(t, booking.Eligible(booking.PaymentNormal, slot(t, 9, 4), 5, nil, nil, room.ClassMeetingRoom))
	})

	t.Run("credit eligibility compares against duration times days", func(t *testing.T) {
		m := newMembership(t, 10)

		assert.False(t, booking.Eligible(booking.PaymentCredit, slot(t, 9, 3), 4, m, nil, room.ClassMeetingRoom),
			"10 credits cannot cover 3h x 4 days")
		assert.True(t, booking.Eligible(booking.PaymentCredit, slot(t, 9, 3), 3, m, nil, room.ClassMeetingRoom),
			"10 credits cover 3h x 3 days")
	})

	t.Run("credit without membership record is ineligible", func(t *testing.T) {
		assert.False(t, booking.Eligible(booking.PaymentCredit, slot(t, 9, 2), 1, nil, nil, room.ClassMeetingRoom))
	})

	t.Run("virtual office routes by category class", func(t *testing.T) {
		b := newBenefit(t, 8, 0)

		assert.True(t, booking.Eligible(booking.PaymentVirtualOffice, slot(t, 9, 4), 2, nil, b, room.ClassMeetingRoom))
		assert.False(t, booking.Eligible(booking.PaymentVirtualOffice, slot(t, 9, 4), 2, nil, b, room.ClassWorkingSpace),
			"working-space booking must never draw from the meeting-room balance")
	})

	t.Run("virtual office without benefit record is ineligible", func(t *testing.T) {
		assert.False(t, booking.Eligible(booking.PaymentVirtualOffice, slot(t, 9, 1), 1, nil, nil, room.ClassWorkingSpace))
	})
}
