package readstore

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

type RoomReadStore struct {
	db *pgxpool.Pool
}

func NewRoomReadStore(db *pgxpool.Pool) queries.RoomReadStore {
	return &RoomReadStore{db: db}
}

var roomColumns = []string{
	"r.id", "r.name", "r.category_id", "c.name",
	"r.hourly_price", "r.package_tiers", "r.capacity", "r.facilities",
}

func (s *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	query, args, err := psql.
		Select(roomColumns...).
		From("rooms r").
		Join("room_categories c ON c.id = r.category_id").
		OrderBy("r.name ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build room list query")
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list rooms")
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate rooms")
	}
	return views, nil
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query, args, err := psql.
		Select(roomColumns...).
		From("rooms r").
		Join("room_categories c ON c.id = r.category_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build room query")
	}
	return scanRoomView(s.db.QueryRow(ctx, query, args...))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var view queries.RoomView
	var tiersRaw []byte
	err := row.Scan(
		&view.ID, &view.Name, &view.CategoryID, &view.CategoryName,
		&view.HourlyPrice, &tiersRaw, &view.Capacity, &view.Facilities,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to scan room")
	}
	if len(tiersRaw) > 0 {
		if err := json.Unmarshal(tiersRaw, &view.PackageTiers); err != nil {
			return nil, errs.Wrap(err, "failed to decode package tiers")
		}
	}
	return &view, nil
}
