package membership

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCredit       = errors.New("credit balance cannot be negative")
	ErrInsufficientCredit   = errors.New("insufficient membership credit")
	ErrNonPositiveDeduction = errors.New("credit deduction must be positive")
)

// Membership is a prepaid per-hour usage balance tied to one
// (user, room category) pair. Bookings consume 1 credit per booked hour
// per counted day.
type Membership struct {
	id              uuid.UUID
	userID          uuid.UUID
	categoryID      uuid.UUID
	remainingCredit int
	expiresAt       *time.Time
}

func NewMembership(id, userID, categoryID uuid.UUID, remainingCredit int, expiresAt *time.Time) (*Membership, error) {
	if remainingCredit < 0 {
		return nil, ErrNegativeCredit
	}
	return &Membership{
		id:              id,
		userID:          userID,
		categoryID:      categoryID,
		remainingCredit: remainingCredit,
		expiresAt:       expiresAt,
	}, nil
}

// RequiredCredit is the credit needed for a booking of durationHours
// repeated over countedDays.
func RequiredCredit(durationHours, countedDays int) int {
	return durationHours * countedDays
}

func (m *Membership) CanCover(durationHours, countedDays int) bool {
	return m.remainingCredit >= RequiredCredit(durationHours, countedDays)
}

func (m *Membership) Consume(credits int) error {
	if credits <= 0 {
		return ErrNonPositiveDeduction
	}
	if credits > m.remainingCredit {
		return ErrInsufficientCredit
	}
	m.remainingCredit -= credits
	return nil
}

func (m *Membership) ID() uuid.UUID         { return m.id }
func (m *Membership) UserID() uuid.UUID     { return m.userID }
func (m *Membership) CategoryID() uuid.UUID { return m.categoryID }
func (m *Membership) RemainingCredit() int  { return m.remainingCredit }
func (m *Membership) ExpiresAt() *time.Time { return m.expiresAt }
