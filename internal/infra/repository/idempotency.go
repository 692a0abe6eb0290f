package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

const (
	idemStatusProcessing = "processing"
	idemStatusCompleted  = "completed"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() commands.IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key via INSERT .. ON CONFLICT DO NOTHING. When a
// row already exists its stored state decides whether the caller replays
// a completed response or backs off a request still in flight; an
// expired row is reclaimed as if it never existed.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, requestHash string) (commands.IdempotencyInsert, *commands.IdempotencyRecord, error) {
	insert, args, err := psql.
		Insert("idempotency_keys").
		Columns("key", "user_id", "request_hash", "status", "expires_at").
		Values(key, userID, requestHash, idemStatusProcessing, sq.Expr("now() + interval '24 hours'")).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, nil, errs.Wrap(err, "failed to build idempotency insert")
	}

	tag, err := db.Exec(ctx, insert, args...)
	if err != nil {
		return 0, nil, infra.WrapRepoErr(err, "failed to claim idempotency key")
	}
	if tag.RowsAffected() == 1 {
		return commands.IdemInserted, nil, nil
	}

	query, args, err := psql.
		Select("key", "user_id", "request_hash", "status", "booking_id", "expires_at").
		From("idempotency_keys").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return 0, nil, errs.Wrap(err, "failed to build idempotency lookup")
	}

	var record commands.IdempotencyRecord
	var status string
	var expiresAt time.Time
	err = db.QueryRow(ctx, query, args...).Scan(
		&record.Key, &record.UserID, &record.RequestHash, &status, &record.BookingID, &expiresAt,
	)
	if err != nil {
		return 0, nil, infra.WrapRepoErr(err, "failed to read idempotency key")
	}

	if time.Now().After(expiresAt) {
		reclaimed, err := r.reclaim(ctx, db, key, userID, requestHash)
		if err != nil {
			return 0, nil, err
		}
		if reclaimed {
			return commands.IdemInserted, nil, nil
		}
		// Lost the reclaim race; whoever won is processing now.
		record.RequestHash = requestHash
		return commands.IdemProcessing, &record, nil
	}

	state := commands.IdemProcessing
	if status == idemStatusCompleted {
		state = commands.IdemCompleted
	}
	return state, &record, nil
}

// reclaim takes over an expired key. The expires_at guard keeps two
// concurrent reclaims from both winning.
func (r *IdempotencyRepository) reclaim(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, requestHash string) (bool, error) {
	update, args, err := psql.
		Update("idempotency_keys").
		Set("user_id", userID).
		Set("request_hash", requestHash).
		Set("status", idemStatusProcessing).
		Set("booking_id", nil).
		Set("expires_at", sq.Expr("now() + interval '24 hours'")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{sq.Eq{"key": key}, sq.Expr("expires_at <= now()")}).
		ToSql()
	if err != nil {
		return false, errs.Wrap(err, "failed to build idempotency reclaim")
	}

	tag, err := db.Exec(ctx, update, args...)
	if err != nil {
		return false, infra.WrapRepoErr(err, "failed to reclaim idempotency key")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, db infra.DBTX, key, bookingID uuid.UUID) error {
	query, args, err := psql.
		Update("idempotency_keys").
		Set("status", idemStatusCompleted).
		Set("booking_id", bookingID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build idempotency update")
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(err, "failed to complete idempotency key")
	}
	return nil
}

// Release drops a processing claim so an identical retry can start
// over. Completed keys are never released.
func (r *IdempotencyRepository) Release(ctx context.Context, db infra.DBTX, key uuid.UUID) error {
	del, args, err := psql.
		Delete("idempotency_keys").
		Where(sq.Eq{"key": key, "status": idemStatusProcessing}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build idempotency release")
	}

	if _, err := db.Exec(ctx, del, args...); err != nil {
		return infra.WrapRepoErr(err, "failed to release idempotency key")
	}
	return nil
}
