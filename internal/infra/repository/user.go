package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

type UserRepository struct{}

func NewUserRepository() commands.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	query, args, err := psql.
		Update("users").
		Set("last_login_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build last login update")
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(err, "failed to update last login")
	}
	return nil
}
