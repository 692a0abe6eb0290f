package repository

import (
	"context"

	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

// NotificationRepository appends outbound notification jobs to an outbox
// table. Delivery happens out of band; enqueueing inside the booking
// transaction keeps the job and the booking atomic.
type NotificationRepository struct{}

func NewNotificationRepository() commands.NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, db infra.DBTX, job commands.NotificationJob) error {
	query, args, err := psql.
		Insert("notification_jobs").
		Columns("id", "booking_id", "user_id", "kind", "payload").
		Values(uuid.New(), job.BookingID, job.UserID, job.Kind, job.Payload).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build notification insert")
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(err, "failed to enqueue notification")
	}
	return nil
}
