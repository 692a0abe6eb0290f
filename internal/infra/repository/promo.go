package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"cospace-api/internal/domain/promo"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

type PromoRepository struct{}

func NewPromoRepository() commands.PromoRepository {
	return &PromoRepository{}
}

func (r *PromoRepository) ListActiveOrdered(ctx context.Context, db infra.DBTX, day time.Time) ([]*commands.PromoSnapshot, error) {
	query, args, err := psql.
		Select(
			"id", "code", "discount_value", "requirement",
			"window_start", "window_end", "start_date", "end_date", "scope",
		).
		From("promos").
		Where(sq.LtOrEq{"start_date": day}).
		Where(sq.GtOrEq{"end_date": day}).
		Where(sq.Eq{"scope": []string{promo.ScopeRoom.String(), promo.ScopeAll.String()}}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build promo query")
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list promos")
	}
	defer rows.Close()

	var snaps []*commands.PromoSnapshot
	for rows.Next() {
		var snap commands.PromoSnapshot
		var requirementRaw []byte
		if err := rows.Scan(
			&snap.ID, &snap.Code, &snap.DiscountValue, &requirementRaw,
			&snap.WindowStart, &snap.WindowEnd, &snap.StartDate, &snap.EndDate, &snap.Scope,
		); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan promo")
		}
		req, err := promo.ParseRequirement(requirementRaw)
		if err != nil {
			return nil, errs.Wrap(err, "failed to decode promo requirement")
		}
		snap.MinDurationHours = req.MinDurationHours
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate promos")
	}
	return snaps, nil
}
