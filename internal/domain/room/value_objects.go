package room

import (
	"strings"

	"github.com/google/uuid"
)

// PackageTier is a fixed-duration, fixed-price booking option as an
// alternative to hourly billing (e.g. 4 hours for a flat fee).
type PackageTier struct {
	DurationHours int   `json:"duration_hours"`
	Price         int64 `json:"price"`
}

type Category struct {
	id   uuid.UUID
	name string
}

func NewCategory(id uuid.UUID, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyCategoryName
	}
	return Category{id: id, name: name}, nil
}

func (c Category) ID() uuid.UUID { return c.id }
func (c Category) Name() string  { return c.name }

// Class splits categories into the two virtual-office benefit buckets.
type Class string

const (
	ClassMeetingRoom  Class = "meeting_room"
	ClassWorkingSpace Class = "working_space"
)

// meetingRoomCategoryName is the category whose bookings draw from the
// meeting-room benefit balance; every other category draws from the
// working-space balance.
const meetingRoomCategoryName = "Room Meeting"

func (c Category) Class() Class {
	if c.name == meetingRoomCategoryName {
		return ClassMeetingRoom
	}
	return ClassWorkingSpace
}
