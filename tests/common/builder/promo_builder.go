//go:build unit

package builder

import (
	"time"

	"cospace-api/internal/domain/promo"

	"github.com/google/uuid"
)

type PromoBuilder struct {
	ID               uuid.UUID
	Code             string
	DiscountValue    int64
	MinDurationHours *int
	TimeWindow       *promo.TimeWindow
	StartDate        time.Time
	EndDate          time.Time
	Scope            promo.Scope
}

func NewPromoBuilder() *PromoBuilder {
	return &PromoBuilder{
		ID:            uuid.New(),
		Code:          "HEMAT10",
		DiscountValue: 10,
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Scope:         promo.ScopeRoom,
	}
}

func (b *PromoBuilder) With(mutate func(*PromoBuilder)) *PromoBuilder {
	mutate(b)
	return b
}

func (b *PromoBuilder) WithDiscount(value int64) *PromoBuilder {
	b.DiscountValue = value
	return b
}

func (b *PromoBuilder) WithMinDuration(hours int) *PromoBuilder {
	b.MinDurationHours = &hours
	return b
}

func (b *PromoBuilder) WithTimeWindow(start, end string) *PromoBuilder {
	w, err := promo.NewTimeWindow(start, end)
	if err != nil {
		panic(err)
	}
	b.TimeWindow = &w
	return b
}

func (b *PromoBuilder) WithDates(start, end time.Time) *PromoBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *PromoBuilder) WithScope(scope promo.Scope) *PromoBuilder {
	b.Scope = scope
	return b
}

func (b *PromoBuilder) BuildDomain() (*promo.Promo, error) {
	return promo.NewPromo(
		b.ID,
		b.Code,
		b.DiscountValue,
		b.MinDurationHours,
		b.TimeWindow,
		b.StartDate,
		b.EndDate,
		b.Scope,
	)
}

func (b *PromoBuilder) MustBuild() *promo.Promo {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}
