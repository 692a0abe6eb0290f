//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cospace-api/internal/domain/user"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

type stubBookingReadStore struct {
	view *queries.BookingView
	err  error
}

func (s *stubBookingReadStore) FindByID(context.Context, uuid.UUID) (*queries.BookingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubBookingReadStore) ListByUser(context.Context, uuid.UUID) ([]*queries.BookingListItem, error) {
	return nil, s.err
}

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()

	newQueries := func(store *stubBookingReadStore) queries.BookingQueries {
		return queries.NewBookingQueries(store)
	}

	t.Run("owner reads own booking", func(t *testing.T) {
		q := newQueries(&stubBookingReadStore{view: &queries.BookingView{ID: bookingID, UserID: ownerID}})

		view, err := q.GetByID(ctx, queries.Actor{UserID: ownerID, Role: user.RoleMember}, bookingID)
		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)
	})

	t.Run("another member gets not found, not forbidden", func(t *testing.T) {
		q := newQueries(&stubBookingReadStore{view: &queries.BookingView{ID: bookingID, UserID: ownerID}})

		_, err := q.GetByID(ctx, queries.Actor{UserID: uuid.New(), Role: user.RoleMember}, bookingID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("cashier and admin see any booking", func(t *testing.T) {
		q := newQueries(&stubBookingReadStore{view: &queries.BookingView{ID: bookingID, UserID: ownerID}})

		for _, role := range []user.Role{user.RoleCashier, user.RoleAdmin} {
			view, err := q.GetByID(ctx, queries.Actor{UserID: uuid.New(), Role: role}, bookingID)
			require.NoError(t, err)
			assert.Equal(t, ownerID, view.UserID)
		}
	})

	t.Run("tenant is not staff", func(t *testing.T) {
		q := newQueries(&stubBookingReadStore{view: &queries.BookingView{ID: bookingID, UserID: ownerID}})

		_, err := q.GetByID(ctx, queries.Actor{UserID: uuid.New(), Role: user.RoleTenant}, bookingID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		q := newQueries(&stubBookingReadStore{err: &infra.RepositoryError{Kind: infra.NotFound, Err: errs.New("no rows")}})

		_, err := q.GetByID(ctx, queries.Actor{UserID: ownerID, Role: user.RoleMember}, bookingID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("store failure maps to query failed", func(t *testing.T) {
		q := newQueries(&stubBookingReadStore{err: &infra.RepositoryError{Kind: infra.DBFailure, Err: errs.New("connection reset")}})

		_, err := q.GetByID(ctx, queries.Actor{UserID: ownerID, Role: user.RoleMember}, bookingID)
		require.ErrorIs(t, err, queries.ErrBookingQueryFailed)
	})
}
