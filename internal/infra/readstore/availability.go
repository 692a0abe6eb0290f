package readstore

import (
	"context"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cospace-api/internal/domain/booking"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	db *pgxpool.Pool
}

func NewAvailabilityReadStore(db *pgxpool.Pool) queries.AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

// BookedHours expands the blocking bookings that cover day into the set
// of occupied hours. A multi-day booking only occupies a weekend day when
// its weekend toggle was on.
func (s *AvailabilityReadStore) BookedHours(ctx context.Context, roomID uuid.UUID, day time.Time) ([]int, error) {
	query, args, err := psql.
		Select("start_hour", "duration_hours", "include_saturday", "include_sunday").
		From("bookings").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Eq{"status": []string{booking.StatusPending.String(), booking.StatusConfirmed.String()}}).
		Where(sq.LtOrEq{"date_from": day}).
		Where(sq.GtOrEq{"COALESCE(date_to, date_from)": day}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booked hours query")
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to query booked hours")
	}
	defer rows.Close()

	seen := make(map[int]struct{})
	for rows.Next() {
		var startHour, durationHours int
		var includeSaturday, includeSunday bool
		if err := rows.Scan(&startHour, &durationHours, &includeSaturday, &includeSunday); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan booked hours")
		}
		switch day.Weekday() {
		case time.Saturday:
			if !includeSaturday {
				continue
			}
		case time.Sunday:
			if !includeSunday {
				continue
			}
		}
		for h := startHour; h < startHour+durationHours; h++ {
			seen[h] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate booked hours")
	}

	hours := make([]int, 0, len(seen))
	for h := range seen {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours, nil
}
