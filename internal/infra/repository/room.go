package repository

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
)

type RoomRepository struct{}

func NewRoomRepository() commands.RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*commands.RoomSnapshot, error) {
	query, args, err := psql.
		Select(
			"r.id", "r.name", "r.category_id", "c.name",
			"r.hourly_price", "r.package_tiers", "r.capacity", "r.facilities",
		).
		From("rooms r").
		Join("room_categories c ON c.id = r.category_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build room query")
	}

	var snap commands.RoomSnapshot
	var tiersRaw []byte
	err = db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.Name, &snap.CategoryID, &snap.CategoryName,
		&snap.HourlyPrice, &tiersRaw, &snap.Capacity, &snap.Facilities,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to find room")
	}

	if len(tiersRaw) > 0 {
		if err := json.Unmarshal(tiersRaw, &snap.PackageTiers); err != nil {
			return nil, errs.Wrap(err, "failed to decode package tiers")
		}
	}
	return &snap, nil
}
