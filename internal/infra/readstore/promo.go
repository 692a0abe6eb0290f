package readstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"cospace-api/internal/domain/promo"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

type PromoReadStore struct {
	db *pgxpool.Pool
}

func NewPromoReadStore(db *pgxpool.Pool) queries.PromoReadStore {
	return &PromoReadStore{db: db}
}

func (s *PromoReadStore) ListActive(ctx context.Context, day time.Time) ([]*queries.PromoView, error) {
	query, args, err := psql.
		Select(
			"id", "code", "title", "discount_value", "requirement",
			"window_start", "window_end", "start_date", "end_date", "scope",
		).
		From("promos").
		Where(sq.LtOrEq{"start_date": day}).
		Where(sq.GtOrEq{"end_date": day}).
		Where(sq.Eq{"scope": []string{promo.ScopeRoom.String(), promo.ScopeAll.String()}}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build promo list query")
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list promos")
	}
	defer rows.Close()

	var views []*queries.PromoView
	for rows.Next() {
		var view queries.PromoView
		var requirementRaw []byte
		var windowStart, windowEnd *string
		if err := rows.Scan(
			&view.ID, &view.Code, &view.Title, &view.DiscountValue, &requirementRaw,
			&windowStart, &windowEnd, &view.StartDate, &view.EndDate, &view.Scope,
		); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan promo")
		}

		req, err := promo.ParseRequirement(requirementRaw)
		if err != nil {
			return nil, errs.Wrap(err, "failed to decode promo requirement")
		}
		view.MinDurationHours = req.MinDurationHours

		if windowStart != nil && windowEnd != nil {
			window, err := promo.NewTimeWindow(*windowStart, *windowEnd)
			if err != nil {
				return nil, errs.Wrap(err, "stored promo window is invalid")
			}
			view.StartHour = window.StartHour
			view.EndHour = window.EndHour
		} else {
			view.EndHour = 24
		}

		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate promos")
	}
	return views, nil
}
