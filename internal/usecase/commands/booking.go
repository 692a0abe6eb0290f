package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"cospace-api/internal/domain/booking"
	"cospace-api/internal/domain/membership"
	"cospace-api/internal/domain/promo"
	"cospace-api/internal/domain/room"
	"cospace-api/internal/domain/virtualoffice"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/clock"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/queries"
)

var (
	ErrRoomNotFound            = errors.New("room not found")
	ErrInvalidSelection        = errors.New("invalid booking selection")
	ErrBookingConflict         = errors.New("requested hours are no longer available")
	ErrInsufficientCredit      = errors.New("membership credit does not cover the booking")
	ErrInsufficientBenefit     = errors.New("virtual office benefit does not cover the booking")
	ErrIdempotencyInProgress   = errors.New("request with this idempotency key is still processing")
	ErrIdempotencyKeyReused    = errors.New("idempotency key was already used with a different request")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type QuoteInput struct {
	RoomID          uuid.UUID
	DateFrom        time.Time
	DateTo          *time.Time
	StartHour       int
	DurationHours   int
	IncludeSaturday bool
	IncludeSunday   bool
	PaymentMethod   string
}

type CreateInput struct {
	QuoteInput
	Purpose string
}

// QuoteResult previews the cost of a selection without persisting
// anything. Eligible reflects the balance check for credit and
// virtual-office methods; normal payments are always eligible.
type QuoteResult struct {
	PaymentMethod        string
	CountedDays          int
	TotalPrice           int64
	CreditCost           int
	RequiredBenefitHours int
	AppliedPromoCode     *string
	Eligible             bool
}

type BookingCommands interface {
	Quote(ctx context.Context, userID uuid.UUID, in QuoteInput) (*QuoteResult, error)
	Create(ctx context.Context, userID uuid.UUID, key uuid.UUID, in CreateInput) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	db            Pool
	rooms         RoomRepository
	promos        PromoRepository
	memberships   MembershipRepository
	virtualOffice VirtualOfficeRepository
	bookings      BookingRepository
	idempotency   IdempotencyRepository
	notifications NotificationRepository
	bookingReads  queries.BookingQueries
	factory       *booking.Factory
	clock         clock.Clock
}

func NewBookingCommands(
	db Pool,
	rooms RoomRepository,
	promos PromoRepository,
	memberships MembershipRepository,
	virtualOffice VirtualOfficeRepository,
	bookings BookingRepository,
	idempotency IdempotencyRepository,
	notifications NotificationRepository,
	bookingReads queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		db:            db,
		rooms:         rooms,
		promos:        promos,
		memberships:   memberships,
		virtualOffice: virtualOffice,
		bookings:      bookings,
		idempotency:   idempotency,
		notifications: notifications,
		bookingReads:  bookingReads,
		factory:       booking.NewFactory(clk),
		clock:         clk,
	}
}

func (c *bookingCommandsImpl) Quote(ctx context.Context, userID uuid.UUID, in QuoteInput) (*QuoteResult, error) {
	sel, err := buildSelection(in, "")
	if err != nil {
		return nil, err
	}

	rm, err := c.loadRoom(ctx, c.db, in.RoomID)
	if err != nil {
		return nil, err
	}
	if !rm.HasTier(sel.Slot.DurationHours()) {
		return nil, errs.Mark(booking.ErrDurationNotOffered, ErrInvalidSelection)
	}

	countedDays := sel.DateRange.CountedDays(sel.IncludeSaturday, sel.IncludeSunday)
	if countedDays == 0 {
		return nil, errs.Mark(booking.ErrNoBillableDays, ErrInvalidSelection)
	}

	matched, err := c.matchPromo(ctx, c.db, sel)
	if err != nil {
		return nil, err
	}

	member, benefit, err := c.loadEntitlements(ctx, c.db, userID, rm, sel)
	if err != nil {
		return nil, err
	}

	quote := booking.ComputeQuote(rm, sel.Slot, countedDays, sel.PaymentMethod, matched)
	eligible := booking.Eligible(sel.PaymentMethod, sel.Slot, countedDays, member, benefit, rm.Category().Class())

	return &QuoteResult{
		PaymentMethod:        quote.PaymentMethod.String(),
		CountedDays:          quote.CountedDays,
		TotalPrice:           quote.TotalPrice,
		CreditCost:           quote.CreditCost,
		RequiredBenefitHours: quote.RequiredBenefitHours,
		AppliedPromoCode:     quote.AppliedPromoCode,
		Eligible:             eligible,
	}, nil
}

func (c *bookingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, key uuid.UUID, in CreateInput) (*queries.BookingView, error) {
	sel, err := buildSelection(in.QuoteInput, in.Purpose)
	if err != nil {
		return nil, err
	}

	hash := requestHash(userID, in)
	state, record, err := c.idempotency.TryInsert(ctx, c.db, key, userID, hash)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	switch state {
	case IdemCompleted:
		if record.RequestHash != hash {
			return nil, ErrIdempotencyKeyReused
		}
		if record.BookingID == nil {
			return nil, errs.Mark(errs.New("completed idempotency key has no booking"), ErrDatabaseOperationFailed)
		}
		return c.bookingReads.GetByIDSystem(ctx, *record.BookingID)
	case IdemProcessing:
		if record.RequestHash != hash {
			return nil, ErrIdempotencyKeyReused
		}
		return nil, ErrIdempotencyInProgress
	}

	view, err := c.createClaimed(ctx, userID, key, in, sel)
	if err != nil {
		// Free the claim so an identical retry is not stuck behind it.
		if relErr := c.idempotency.Release(ctx, c.db, key); relErr != nil {
			slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", relErr)
		}
		return nil, err
	}
	return view, nil
}

func (c *bookingCommandsImpl) createClaimed(ctx context.Context, userID uuid.UUID, key uuid.UUID, in CreateInput, sel booking.Selection) (*queries.BookingView, error) {
	rm, err := c.loadRoom(ctx, c.db, in.RoomID)
	if err != nil {
		return nil, err
	}

	matched, err := c.matchPromo(ctx, c.db, sel)
	if err != nil {
		return nil, err
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bookedHours, err := c.bookedHoursFor(ctx, tx, rm.ID(), sel)
	if err != nil {
		return nil, err
	}

	member, benefit, err := c.loadEntitlements(ctx, tx, userID, rm, sel)
	if err != nil {
		return nil, err
	}

	b, err := c.factory.CreateBooking(rm, userID, sel, bookedHours, matched, member, benefit)
	if err != nil {
		return nil, markFactoryErr(err)
	}

	if err := c.bookings.Create(ctx, tx, b); err != nil {
		if infra.IsKind(err, infra.DuplicateKey) || infra.IsKind(err, infra.Conflict) {
			return nil, errs.Mark(err, ErrBookingConflict)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.deductBalances(ctx, tx, b, rm); err != nil {
		return nil, err
	}

	job := NotificationJob{
		BookingID: b.ID(),
		UserID:    userID,
		Kind:      "booking_created",
		Payload:   notificationPayload(b, rm),
	}
	if err := c.notifications.Enqueue(ctx, tx, job); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.idempotency.MarkCompleted(ctx, tx, key, b.ID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookingReads.GetByIDSystem(ctx, b.ID())
}

func (c *bookingCommandsImpl) loadRoom(ctx context.Context, db infra.DBTX, id uuid.UUID) (*room.Room, error) {
	snap, err := c.rooms.FindByID(ctx, db, id)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rm, err := snap.toEntity()
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// matchPromo resolves the first active room promo for the range start.
// Promos only ever apply to normal payments, so the lookup is skipped for
// the balance-backed methods.
func (c *bookingCommandsImpl) matchPromo(ctx context.Context, db infra.DBTX, sel booking.Selection) (*promo.Promo, error) {
	if sel.PaymentMethod != booking.PaymentNormal {
		return nil, nil
	}
	snaps, err := c.promos.ListActiveOrdered(ctx, db, sel.DateRange.From())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	candidates := make([]*promo.Promo, 0, len(snaps))
	for _, snap := range snaps {
		p, err := snap.toEntity()
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		candidates = append(candidates, p)
	}
	return promo.FirstMatch(candidates, sel.DateRange.From(), sel.Slot.StartHour()), nil
}

func (c *bookingCommandsImpl) loadEntitlements(ctx context.Context, db infra.DBTX, userID uuid.UUID, rm *room.Room, sel booking.Selection) (*membership.Membership, *virtualoffice.Benefit, error) {
	switch sel.PaymentMethod {
	case booking.PaymentCredit:
		snap, err := c.memberships.FindActive(ctx, db, userID, rm.Category().ID(), c.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.NotFound) {
				return nil, nil, nil
			}
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		member, err := snap.toEntity()
		if err != nil {
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return member, nil, nil
	case booking.PaymentVirtualOffice:
		snap, err := c.virtualOffice.FindForDate(ctx, db, userID, sel.DateRange.From())
		if err != nil {
			if infra.IsKind(err, infra.NotFound) {
				return nil, nil, nil
			}
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		benefit, err := snap.toEntity()
		if err != nil {
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil, benefit, nil
	default:
		return nil, nil, nil
	}
}

// bookedHoursFor collects the hours already occupied on any billable day
// of the selection. A lookup failure is an error, never treated as a free
// calendar.
func (c *bookingCommandsImpl) bookedHoursFor(ctx context.Context, db infra.DBTX, roomID uuid.UUID, sel booking.Selection) ([]int, error) {
	existing, err := c.bookings.ListBlockingInRange(ctx, db, roomID, sel.DateRange.From(), sel.DateRange.End())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	days := sel.DateRange.BillableDays(sel.IncludeSaturday, sel.IncludeSunday)
	seen := make(map[int]struct{})
	for _, b := range existing {
		for _, day := range days {
			if b.OccupiesDay(day) {
				for _, h := range b.Slot().Hours() {
					seen[h] = struct{}{}
				}
				break
			}
		}
	}

	hours := make([]int, 0, len(seen))
	for h := range seen {
		hours = append(hours, h)
	}
	return hours, nil
}

func (c *bookingCommandsImpl) deductBalances(ctx context.Context, db infra.DBTX, b *booking.Booking, rm *room.Room) error {
	switch b.PaymentMethod() {
	case booking.PaymentCredit:
		credits := membership.RequiredCredit(b.Slot().DurationHours(), b.CountedDays())
		if err := c.memberships.DeductCredit(ctx, db, *b.MembershipID(), credits); err != nil {
			if infra.IsKind(err, infra.Conflict) {
				return errs.Mark(err, ErrInsufficientCredit)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	case booking.PaymentVirtualOffice:
		if err := c.virtualOffice.DeductHours(ctx, db, *b.VirtualOfficeID(), rm.Category().Class(), b.BenefitHours()); err != nil {
			if infra.IsKind(err, infra.Conflict) {
				return errs.Mark(err, ErrInsufficientBenefit)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func buildSelection(in QuoteInput, purpose string) (booking.Selection, error) {
	dateRange, err := booking.NewDateRange(in.DateFrom, in.DateTo)
	if err != nil {
		return booking.Selection{}, errs.Mark(err, ErrInvalidSelection)
	}
	slot, err := booking.NewHourSlot(in.StartHour, in.DurationHours)
	if err != nil {
		return booking.Selection{}, errs.Mark(err, ErrInvalidSelection)
	}
	method := booking.PaymentMethod(in.PaymentMethod)
	if !method.IsValid() {
		return booking.Selection{}, errs.Mark(booking.ErrInvalidPaymentMethod, ErrInvalidSelection)
	}
	return booking.Selection{
		DateRange:       dateRange,
		Slot:            slot,
		IncludeSaturday: in.IncludeSaturday,
		IncludeSunday:   in.IncludeSunday,
		PaymentMethod:   method,
		Purpose:         purpose,
	}, nil
}

func markFactoryErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrHoursAlreadyBooked):
		return errs.Mark(err, ErrBookingConflict)
	case errors.Is(err, membership.ErrInsufficientCredit):
		return errs.Mark(err, ErrInsufficientCredit)
	case errors.Is(err, virtualoffice.ErrInsufficientBenefit):
		return errs.Mark(err, ErrInsufficientBenefit)
	default:
		return errs.Mark(err, ErrInvalidSelection)
	}
}

func requestHash(userID uuid.UUID, in CreateInput) string {
	dateTo := ""
	if in.DateTo != nil {
		dateTo = in.DateTo.Format("2006-01-02")
	}
	canonical := fmt.Sprintf(
		"%s|%s|%s|%s|%d|%d|%t|%t|%s|%s",
		userID, in.RoomID, in.DateFrom.Format("2006-01-02"), dateTo,
		in.StartHour, in.DurationHours, in.IncludeSaturday, in.IncludeSunday,
		in.PaymentMethod, in.Purpose,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func notificationPayload(b *booking.Booking, rm *room.Room) []byte {
	payload, err := json.Marshal(map[string]any{
		"booking_id":  b.ID(),
		"room_name":   rm.Name(),
		"date_from":   b.DateRange().From().Format("2006-01-02"),
		"start_hour":  b.Slot().StartHour(),
		"duration":    b.Slot().DurationHours(),
		"status":      b.Status().String(),
		"total_price": b.TotalPrice(),
	})
	if err != nil {
		return []byte("{}")
	}
	return payload
}
