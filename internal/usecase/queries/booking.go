package queries

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"cospace-api/internal/domain/user"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingQueryFailed = errors.New("failed to query bookings")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips ownership checks for read-after-write inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

// Actor identifies the requesting user for ownership checks.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type bookingQueriesImpl struct {
	reader BookingReadStore
}

func NewBookingQueries(reader BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{reader: reader}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Members only see their own bookings; staff roles see all.
	if view.UserID != actor.UserID && !actor.Role.HasPermission(user.RoleCashier) {
		return nil, errs.Mark(errors.New("booking belongs to another user"), ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.reader.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return items, nil
}
