package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

type MembershipRepository struct{}

func NewMembershipRepository() commands.MembershipRepository {
	return &MembershipRepository{}
}

func (r *MembershipRepository) FindActive(ctx context.Context, db infra.DBTX, userID, categoryID uuid.UUID, now time.Time) (*commands.MembershipSnapshot, error) {
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

	var snap commands.MembershipSnapshot
	err = db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.UserID, &snap.CategoryID, &snap.RemainingCredit, &snap.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find membership")
	}
	return &snap, nil
}

// DeductCredit decrements the balance with a guard against going
// negative, so concurrent bookings cannot overspend.
func (r *MembershipRepository) DeductCredit(ctx context.Context, db infra.DBTX, id uuid.UUID, credits int) error {
	query, args, err := psql.
		Update("memberships").
		Set("remaining_credit", sq.Expr("remaining_credit - ?", credits)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"remaining_credit": credits}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build credit deduction")
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to deduct credit")
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrap(&infra.RepositoryError{
			Kind: infra.Conflict,
			Err:  errs.New("balance changed concurrently or is insufficient"),
		}, "failed to deduct credit")
	}
	return nil
}
