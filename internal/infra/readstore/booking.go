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

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := psql.
		Select(
			"b.id", "b.user_id", "b.room_id", "r.name",
			"b.date_from", "b.date_to", "b.start_hour", "b.duration_hours",
			"b.include_saturday", "b.include_sunday", "b.counted_days",
			"b.payment_method", "b.status",
			"b.total_price", "b.credit_cost", "b.benefit_hours",
			"p.code", "b.purpose", "b.created_at",
		).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		LeftJoin("promos p ON p.id = b.promo_id").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking query")
	}

	var view queries.BookingView
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.UserID, &view.RoomID, &view.RoomName,
		&view.DateFrom, &view.DateTo, &view.StartHour, &view.DurationHours,
		&view.IncludeSaturday, &view.IncludeSunday, &view.CountedDays,
		&view.PaymentMethod, &view.Status,
		&view.TotalPrice, &view.CreditCost, &view.BenefitHours,
		&view.PromoCode, &view.Purpose, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find booking")
	}
	return &view, nil
}

func (s *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	query, args, err := psql.
		Select(
			"b.id", "r.name", "b.date_from", "b.start_hour", "b.duration_hours",
			"b.payment_method", "b.status", "b.total_price", "b.created_at",
		).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking list query")
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list bookings")
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.RoomName, &item.DateFrom, &item.StartHour, &item.DurationHours,
			&item.PaymentMethod, &item.Status, &item.TotalPrice, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan booking")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate bookings")
	}
	return items, nil
}
