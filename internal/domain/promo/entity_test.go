//go:build unit

package promo_test

import (
	"testing"
	"time"

	"cospace-api/internal/domain/promo"
	"cospace-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPromoActiveOn(t *testing.T) {
	start := day(2026, 3, 1)
	end := day(2026, 3, 31)

	t.Run("date window is inclusive on both ends", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDates(start, end).MustBuild()

		assert.True(t, p.ActiveOn(start, 9))
		assert.True(t, p.ActiveOn(end, 9))
		assert.False(t, p.ActiveOn(day(2026, 2, 28), 9))
		assert.False(t, p.ActiveOn(day(2026, 4, 1), 9))
	})

	t.Run("time window is half-open", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDates(start, end).WithTimeWindow("08:00", "12:00").MustBuild()

		assert.False(t, p.ActiveOn(start, 7))
		assert.True(t, p.ActiveOn(start, 8))
		assert.True(t, p.ActiveOn(start, 11))
		assert.False(t, p.ActiveOn(start, 12))
	})

	t.Run("no time window means any hour", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDates(start, end).MustBuild()
		assert.True(t, p.ActiveOn(start, 21))
	})
}

func TestPromoConditionMet(t *testing.T) {
	p := builder.NewPromoBuilder().WithMinDuration(4).MustBuild()

	assert.False(t, p.ConditionMet(4), "equal to minimum must not qualify")
	assert.True(t, p.ConditionMet(5))

	unconditional := builder.NewPromoBuilder().MustBuild()
	assert.True(t, unconditional.ConditionMet(1))
}

func TestPromoApply(t *testing.T) {
	tests := []struct {
		name     string
		discount int64
		total    int64
		want     int64
	}{
		{name: "percent discount", discount: 10, total: 400000, want: 360000},
		{name: "boundary 100 is full percent discount", discount: 100, total: 400000, want: 0},
		{name: "boundary 101 is nominal", discount: 101, total: 400000, want: 399899},
		{name: "nominal discount", discount: 50000, total: 400000, want: 350000},
		{name: "nominal clamps at zero", discount: 500000, total: 400000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := builder.NewPromoBuilder().WithDiscount(tt.discount).MustBuild()
			assert.Equal(t, tt.want, p.Apply(tt.total))
		})
	}
}

func TestFirstMatch(t *testing.T) {
	start := day(2026, 3, 1)
	end := day(2026, 3, 31)

	t.Run("first listed wins when several qualify", func(t *testing.T) {
		first := builder.NewPromoBuilder().WithDates(start, end).MustBuild()
		second := builder.NewPromoBuilder().WithDates(start, end).WithDiscount(50).MustBuild()

		got := promo.FirstMatch([]*promo.Promo{first, second}, day(2026, 3, 10), 9)
		require.NotNil(t, got)
		assert.Equal(t, first.ID(), got.ID())
	})

	t.Run("fnb promos never match room bookings", func(t *testing.T) {
		fnb := builder.NewPromoBuilder().WithDates(start, end).WithScope(promo.ScopeFnb).MustBuild()
		all := builder.NewPromoBuilder().WithDates(start, end).WithScope(promo.ScopeAll).MustBuild()

		got := promo.FirstMatch([]*promo.Promo{fnb, all}, day(2026, 3, 10), 9)
		require.NotNil(t, got)
		assert.Equal(t, all.ID(), got.ID())
	})

	t.Run("time window filters by start hour", func(t *testing.T) {
		windowed := builder.NewPromoBuilder().WithDates(start, end).WithTimeWindow("08:00", "12:00").MustBuild()

		assert.Nil(t, promo.FirstMatch([]*promo.Promo{windowed}, day(2026, 3, 10), 14))
		assert.NotNil(t, promo.FirstMatch([]*promo.Promo{windowed}, day(2026, 3, 10), 10))
	})

	t.Run("no match", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDates(start, end).MustBuild()
		assert.Nil(t, promo.FirstMatch([]*promo.Promo{p}, day(2026, 5, 1), 9))
	})

	t.Run("minimum duration does not affect matching", func(t *testing.T) {
		p := builder.NewPromoBuilder().WithDates(start, end).WithMinDuration(8).MustBuild()
		assert.NotNil(t, promo.FirstMatch([]*promo.Promo{p}, day(2026, 3, 10), 9),
			"the requirement gates the discount, not the match")
	})
}

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMin *int
	}{
		{name: "object form", raw: `{"min_durasi_jam": 4}`, wantMin: intPtr(4)},
		{name: "double-encoded string form", raw: `"{\"min_durasi_jam\": 2}"`, wantMin: intPtr(2)},
		{name: "empty object", raw: `{}`, wantMin: nil},
		{name: "empty string", raw: `""`, wantMin: nil},
		{name: "empty payload", raw: ``, wantMin: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := promo.ParseRequirement([]byte(tt.raw))
			require.NoError(t, err)
			if tt.wantMin == nil {
				assert.Nil(t, req.MinDurationHours)
			} else {
				require.NotNil(t, req.MinDurationHours)
				assert.Equal(t, *tt.wantMin, *req.MinDurationHours)
			}
		})
	}

	_, err := promo.ParseRequirement([]byte(`{invalid`))
	assert.Error(t, err)
}

func intPtr(v int) *int { return &v }
