package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
)

type AvailabilityReadStore interface {
	// BookedHours returns the distinct hours occupied on a single day by
	// bookings that block the calendar (pending or confirmed).
	BookedHours(ctx context.Context, roomID uuid.UUID, day time.Time) ([]int, error)
}

type AvailabilityQueries interface {
	BookedHours(ctx context.Context, roomID uuid.UUID, day time.Time) (*BookedHoursView, error)
}

type availabilityQueriesImpl struct {
	rooms  RoomReadStore
	reader AvailabilityReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, reader AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, reader: reader}
}

func (q *availabilityQueriesImpl) BookedHours(ctx context.Context, roomID uuid.UUID, day time.Time) (*BookedHoursView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}

	hours, err := q.reader.BookedHours(ctx, roomID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}
	if hours == nil {
		hours = []int{}
	}
	return &BookedHoursView{RoomID: roomID, Date: day, Hours: hours}, nil
}
