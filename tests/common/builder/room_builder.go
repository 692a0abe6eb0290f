//go:build unit

package builder

import (
	"cospace-api/internal/domain/room"
	"cospace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
	HourlyPrice  int64
	PackageTiers []room.PackageTier
	Capacity     int
	Facilities   []string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           uuid.New(),
		Name:         "Meeting Room A",
		CategoryID:   uuid.New(),
		CategoryName: "Room Meeting",
		HourlyPrice:  50000,
		PackageTiers: []room.PackageTier{
			{DurationHours: 1, Price: 50000},
			{DurationHours: 2, Price: 95000},
			{DurationHours: 4, Price: 200000},
		},
		Capacity:   8,
		Facilities: []string{"Proyektor", "Whiteboard", "AC"},
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithCategoryName(name string) *RoomBuilder {
	b.CategoryName = name
	return b
}

func (b *RoomBuilder) WithTiers(tiers ...room.PackageTier) *RoomBuilder {
	b.PackageTiers = tiers
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	category, err := room.NewCategory(b.CategoryID, b.CategoryName)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(b.ID, b.Name, category, b.HourlyPrice, b.PackageTiers, b.Capacity, b.Facilities)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           b.ID,
		Name:         b.Name,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		HourlyPrice:  b.HourlyPrice,
		PackageTiers: b.PackageTiers,
		Capacity:     b.Capacity,
		Facilities:   b.Facilities,
	}
}
