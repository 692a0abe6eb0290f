package readstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

type MembershipReadStore struct {
	db *pgxpool.Pool
}

func NewMembershipReadStore(db *pgxpool.Pool) queries.MembershipReadStore {
	return &MembershipReadStore{db: db}
}

func (s *MembershipReadStore) FindActive(ctx context.Context, userID, categoryID uuid.UUID, now time.Time) (*queries.MembershipView, error) {
	query, args, err := psql.
		Select("id", "user_id", "category_id", "remaining_credit", "expires_at").
		From("memberships").
		Where(sq.Eq{"user_id": userID, "category_id": categoryID}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now}}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build membership query")
	}

	var view queries.MembershipView
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.UserID, &view.CategoryID, &view.RemainingCredit, &view.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find membership")
	}
	return &view, nil
}

type BenefitReadStore struct {
	db *pgxpool.Pool
}

func NewBenefitReadStore(db *pgxpool.Pool) queries.BenefitReadStore {
	return &BenefitReadStore{db: db}
}

func (s *BenefitReadStore) FindForDate(ctx context.Context, userID uuid.UUID, day time.Time) (*queries.BenefitView, error) {
	query, args, err := psql.
		Select("id", "user_id", "meeting_room_hours", "working_space_hours", "period_start").
		From("virtual_office_benefits").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"period_start": day}).
		Where(sq.GtOrEq{"period_end": day}).
		OrderBy("period_start DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build benefit query")
	}

	var view queries.BenefitView
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.UserID, &view.MeetingRoomHours, &view.WorkingSpaceHours, &view.ActiveOn,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find benefit")
	}
	return &view, nil
}
