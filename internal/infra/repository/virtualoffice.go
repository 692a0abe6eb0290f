package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"cospace-api/internal/domain/room"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

type VirtualOfficeRepository struct{}

func NewVirtualOfficeRepository() commands.VirtualOfficeRepository {
	return &VirtualOfficeRepository{}
}

func (r *VirtualOfficeRepository) FindForDate(ctx context.Context, db infra.DBTX, userID uuid.UUID, day time.Time) (*commands.BenefitSnapshot, error) {
	query, args, err := psql.
		Select("id", "user_id", "meeting_room_hours", "working_space_hours").
		From("virtual_office_benefits").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"period_start": day}).
		Where(sq.GtOrEq{"period_end": day}).
		OrderBy("period_start DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build benefit query")
	}

	var snap commands.BenefitSnapshot
	err = db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.UserID, &snap.MeetingRoomHours, &snap.WorkingSpaceHours,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find benefit")
	}
	return &snap, nil
}

func (r *VirtualOfficeRepository) DeductHours(ctx context.Context, db infra.DBTX, id uuid.UUID, class room.Class, hours int) error {
	column := "working_space_hours"
	if class == room.ClassMeetingRoom {
		column = "meeting_room_hours"
	}

	query, args, err := psql.
		Update("virtual_office_benefits").
		Set(column, sq.Expr(column+" - ?", hours)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{column: hours}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build benefit deduction")
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to deduct benefit hours")
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrap(&infra.RepositoryError{
			Kind: infra.Conflict,
			Err:  errs.New("balance changed concurrently or is insufficient"),
		}, "failed to deduct benefit hours")
	}
	return nil
}
