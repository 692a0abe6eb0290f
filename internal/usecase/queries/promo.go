package queries

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"cospace-api/internal/pkg/errs"
)

var ErrPromoQueryFailed = errors.New("failed to query promos")

type PromoReadStore interface {
	// ListActive returns promos whose date window covers the given day,
	// ordered by registration time so first-match resolution is stable.
	ListActive(ctx context.Context, day time.Time) ([]*PromoView, error)
}

type PromoQueries interface {
	ListActive(ctx context.Context, day time.Time) ([]*PromoView, error)
}

type promoQueriesImpl struct {
	reader PromoReadStore
}

func NewPromoQueries(reader PromoReadStore) PromoQueries {
	return &promoQueriesImpl{reader: reader}
}

func (q *promoQueriesImpl) ListActive(ctx context.Context, day time.Time) ([]*PromoView, error) {
	views, err := q.reader.ListActive(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, ErrPromoQueryFailed)
	}
	return views, nil
}
