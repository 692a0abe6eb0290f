package queries

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserQueryFailed = errors.New("failed to query users")
)

type UserReadStore interface {
	// FindByEmailWithHash returns the view plus the stored password hash
	// for credential verification.
	FindByEmailWithHash(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	reader UserReadStore
}

func NewUserQueries(reader UserReadStore) UserQueries {
	return &userQueriesImpl{reader: reader}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrUserQueryFailed)
	}
	return view, nil
}
