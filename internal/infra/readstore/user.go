package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) queries.UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByEmailWithHash(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query, args, err := psql.
		Select("id", "email", "role", "is_active", "password_hash").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to build user query")
	}

	var view queries.AuthorizedUserView
	var hash string
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr(err, "failed to find user by email")
	}
	return &view, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query, args, err := psql.
		Select("id", "email", "role", "is_active").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build user query")
	}

	var view queries.AuthorizedUserView
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find user")
	}
	return &view, nil
}
