package queries

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomQueryFailed = errors.New("failed to query rooms")
)

type RoomReadStore interface {
	List(ctx context.Context) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	reader RoomReadStore
}

func NewRoomQueries(reader RoomReadStore) RoomQueries {
	return &roomQueriesImpl{reader: reader}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	views, err := q.reader.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return views, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	return view, nil
}
