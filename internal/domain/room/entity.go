package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName     = errors.New("room name cannot be empty")
	ErrRoomNameTooLong   = errors.New("room name is too long (max 255 characters)")
	ErrNegativePrice     = errors.New("room price cannot be negative")
	ErrInvalidCapacity   = errors.New("room capacity must be positive")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

type Room struct {
	id           uuid.UUID
	name         string
	category     Category
	hourlyPrice  int64
	packageTiers []PackageTier
	capacity     int
	facilities   []string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoom(id uuid.UUID, name string, category Category, hourlyPrice int64, tiers []PackageTier, capacity int, facilities []string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > 255 {
		return nil, ErrRoomNameTooLong
	}
	if hourlyPrice < 0 {
		return nil, ErrNegativePrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:           id,
		name:         name,
		category:     category,
		hourlyPrice:  hourlyPrice,
		packageTiers: tiers,
		capacity:     capacity,
		facilities:   facilities,
	}, nil
}

// TierPriceFor returns the package price for the exact duration.
// There is no fallback or interpolation for durations outside the tier list.
func (r *Room) TierPriceFor(durationHours int) (int64, bool) {
	for _, t := range r.packageTiers {
		if t.DurationHours == durationHours {
			return t.Price, true
		}
	}
	return 0, false
}

func (r *Room) HasTier(durationHours int) bool {
	_, ok := r.TierPriceFor(durationHours)
	return ok
}

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) Name() string              { return r.name }
func (r *Room) Category() Category        { return r.category }
func (r *Room) HourlyPrice() int64        { return r.hourlyPrice }
func (r *Room) PackageTiers() []PackageTier { return r.packageTiers }
func (r *Room) Capacity() int             { return r.capacity }
func (r *Room) Facilities() []string      { return r.facilities }
func (r *Room) CreatedAt() time.Time      { return r.createdAt }
func (r *Room) UpdatedAt() time.Time      { return r.updatedAt }
