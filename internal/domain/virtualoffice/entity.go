package virtualoffice

import (
	"errors"

	"github.com/google/uuid"

	"cospace-api/internal/domain/room"
)

var (
	ErrNegativeHours        = errors.New("benefit hours cannot be negative")
	ErrInsufficientBenefit  = errors.New("insufficient benefit hours")
	ErrNonPositiveDeduction = errors.New("benefit deduction must be positive")
)

// Benefit is the monthly complimentary hour allowance of a virtual-office
// client, split between meeting-room and working-space usage. Which bucket
// a booking draws from follows the room category's class.
type Benefit struct {
	id                uuid.UUID
	userID            uuid.UUID
	meetingRoomHours  int
	workingSpaceHours int
}

func NewBenefit(id, userID uuid.UUID, meetingRoomHours, workingSpaceHours int) (*Benefit, error) {
	if meetingRoomHours < 0 || workingSpaceHours < 0 {
		return nil, ErrNegativeHours
	}
	return &Benefit{
		id:                id,
		userID:            userID,
		meetingRoomHours:  meetingRoomHours,
		workingSpaceHours: workingSpaceHours,
	}, nil
}

// HoursFor returns the remaining balance of the bucket that serves the
// given room class.
func (b *Benefit) HoursFor(class room.Class) int {
	if class == room.ClassMeetingRoom {
		return b.meetingRoomHours
	}
	return b.workingSpaceHours
}

func (b *Benefit) CanCover(class room.Class, hours int) bool {
	return hours <= b.HoursFor(class)
}

func (b *Benefit) Consume(class room.Class, hours int) error {
	if hours <= 0 {
		return ErrNonPositiveDeduction
	}
	if !b.CanCover(class, hours) {
		return ErrInsufficientBenefit
	}
	if class == room.ClassMeetingRoom {
		b.meetingRoomHours -= hours
	} else {
		b.workingSpaceHours -= hours
	}
	return nil
}

func (b *Benefit) ID() uuid.UUID          { return b.id }
func (b *Benefit) UserID() uuid.UUID      { return b.userID }
func (b *Benefit) MeetingRoomHours() int  { return b.meetingRoomHours }
func (b *Benefit) WorkingSpaceHours() int { return b.workingSpaceHours }
