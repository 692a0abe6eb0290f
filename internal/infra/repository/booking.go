package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"cospace-api/internal/domain/booking"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

type BookingRepository struct{}

func NewBookingRepository() commands.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) error {
	query, args, err := psql.
		Insert("bookings").
		Columns(
			"id", "room_id", "user_id",
			"date_from", "date_to", "start_hour", "duration_hours",
			"include_saturday", "include_sunday", "counted_days",
			"payment_method", "status",
			"total_price", "credit_cost", "benefit_hours",
			"promo_id", "membership_id", "virtual_office_id", "purpose",
		).
		Values(
			b.ID(), b.RoomID(), b.UserID(),
			b.DateRange().From(), b.DateRange().To(), b.Slot().StartHour(), b.Slot().DurationHours(),
			b.IncludeSaturday(), b.IncludeSunday(), b.CountedDays(),
			b.PaymentMethod().String(), b.Status().String(),
			b.TotalPrice(), b.CreditCost(), b.BenefitHours(),
			b.PromoID(), b.MembershipID(), b.VirtualOfficeID(), b.Purpose(),
		).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build booking insert")
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(err, "failed to create booking")
	}
	return nil
}

func (r *BookingRepository) ListBlockingInRange(ctx context.Context, db infra.DBTX, roomID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	query, args, err := psql.
		Select(
			"id", "room_id", "user_id",
			"date_from", "date_to", "start_hour", "duration_hours",
			"include_saturday", "include_sunday", "counted_days",
			"payment_method", "status",
			"total_price", "credit_cost", "benefit_hours",
			"promo_id", "membership_id", "virtual_office_id", "purpose",
			"created_at", "updated_at",
		).
		From("bookings").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Eq{"status": []string{booking.StatusPending.String(), booking.StatusConfirmed.String()}}).
		Where(sq.LtOrEq{"date_from": to}).
		Where(sq.GtOrEq{"COALESCE(date_to, date_from)": from}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking range query")
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list bookings")
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate bookings")
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, roomID, userID              uuid.UUID
		dateFrom                        time.Time
		dateTo                          *time.Time
		startHour, durationHours        int
		includeSaturday, includeSunday  bool
		countedDays                     int
		paymentMethod, status           string
		totalPrice                      int64
		creditCost, benefitHours        int
		promoID, memberID, voID         *uuid.UUID
		purpose                         string
		createdAt, updatedAt            time.Time
	)
	if err := row.Scan(
		&id, &roomID, &userID,
		&dateFrom, &dateTo, &startHour, &durationHours,
		&includeSaturday, &includeSunday, &countedDays,
		&paymentMethod, &status,
		&totalPrice, &creditCost, &benefitHours,
		&promoID, &memberID, &voID, &purpose,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to scan booking")
	}

	dateRange, err := booking.NewDateRange(dateFrom, dateTo)
	if err != nil {
		return nil, errs.Wrap(err, "stored date range is invalid")
	}
	slot, err := booking.NewHourSlot(startHour, durationHours)
	if err != nil {
		return nil, errs.Wrap(err, "stored hour slot is invalid")
	}

	return booking.ReconstructBooking(
		id, roomID, userID,
		dateRange, slot,
		includeSaturday, includeSunday,
		countedDays,
		booking.PaymentMethod(paymentMethod),
		booking.Status(status),
		totalPrice, creditCost, benefitHours,
		promoID, memberID, voID,
		purpose,
		createdAt, updatedAt,
	), nil
}
