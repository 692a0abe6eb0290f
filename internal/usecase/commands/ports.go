package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cospace-api/internal/domain/booking"
	"cospace-api/internal/domain/membership"
	"cospace-api/internal/domain/promo"
	"cospace-api/internal/domain/room"
	"cospace-api/internal/domain/virtualoffice"
	"cospace-api/internal/infra"
)

// Pool is the subset of pgxpool.Pool the commands need: plain queries
// plus transaction start.
type Pool interface {
	infra.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Snapshots are flat row images the write side loads before rebuilding
// domain entities. Keeping them separate from the query views lets the
// two sides evolve independently.

type RoomSnapshot struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
	HourlyPrice  int64
	PackageTiers []room.PackageTier
	Capacity     int
	Facilities   []string
}

func (s *RoomSnapshot) toEntity() (*room.Room, error) {
	category, err := room.NewCategory(s.CategoryID, s.CategoryName)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(s.ID, s.Name, category, s.HourlyPrice, s.PackageTiers, s.Capacity, s.Facilities)
}

type PromoSnapshot struct {
	ID               uuid.UUID
	Code             string
	DiscountValue    int64
	MinDurationHours *int
	WindowStart      *string
	WindowEnd        *string
	StartDate        time.Time
	EndDate          time.Time
	Scope            string
}

func (s *PromoSnapshot) toEntity() (*promo.Promo, error) {
	var window *promo.TimeWindow
	if s.WindowStart != nil && s.WindowEnd != nil {
		w, err := promo.NewTimeWindow(*s.WindowStart, *s.WindowEnd)
		if err != nil {
			return nil, err
		}
		window = &w
	}
	return promo.NewPromo(s.ID, s.Code, s.DiscountValue, s.MinDurationHours, window, s.StartDate, s.EndDate, promo.Scope(s.Scope))
}

type MembershipSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	RemainingCredit int
	ExpiresAt       *time.Time
}

func (s *MembershipSnapshot) toEntity() (*membership.Membership, error) {
	return membership.NewMembership(s.ID, s.UserID, s.CategoryID, s.RemainingCredit, s.ExpiresAt)
}

type BenefitSnapshot struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	MeetingRoomHours  int
	WorkingSpaceHours int
}

func (s *BenefitSnapshot) toEntity() (*virtualoffice.Benefit, error) {
	return virtualoffice.NewBenefit(s.ID, s.UserID, s.MeetingRoomHours, s.WorkingSpaceHours)
}

type RoomRepository interface {
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*RoomSnapshot, error)
}

type PromoRepository interface {
	// ListActiveOrdered returns room-scoped candidates whose date window
	// covers day, ordered by registration time (first match wins).
	ListActiveOrdered(ctx context.Context, db infra.DBTX, day time.Time) ([]*PromoSnapshot, error)
}

type MembershipRepository interface {
	FindActive(ctx context.Context, db infra.DBTX, userID, categoryID uuid.UUID, now time.Time) (*MembershipSnapshot, error)
	// DeductCredit decrements atomically and fails when the balance would
	// go negative.
	DeductCredit(ctx context.Context, db infra.DBTX, id uuid.UUID, credits int) error
}

type VirtualOfficeRepository interface {
	FindForDate(ctx context.Context, db infra.DBTX, userID uuid.UUID, day time.Time) (*BenefitSnapshot, error)
	DeductHours(ctx context.Context, db infra.DBTX, id uuid.UUID, class room.Class, hours int) error
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) error
	// ListBlockingInRange returns pending and confirmed bookings whose
	// date range intersects [from, to].
	ListBlockingInRange(ctx context.Context, db infra.DBTX, roomID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

type IdempotencyInsert int

const (
	IdemInserted IdempotencyInsert = iota
	IdemProcessing
	IdemCompleted
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	RequestHash string
	BookingID   *uuid.UUID
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request. When the key already
	// exists the stored record is returned alongside its state.
	TryInsert(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, requestHash string) (IdempotencyInsert, *IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, db infra.DBTX, key, bookingID uuid.UUID) error
	// Release frees a processing claim after a failed attempt so an
	// identical retry is not stuck behind it.
	Release(ctx context.Context, db infra.DBTX, key uuid.UUID) error
}

type NotificationJob struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Kind      string
	Payload   []byte
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, db infra.DBTX, job NotificationJob) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error
}
