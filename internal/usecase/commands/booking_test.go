//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cospace-api/internal/domain/booking"
	"cospace-api/internal/domain/room"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/clock"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase/commands"
	"cospace-api/internal/usecase/queries"
)

// --- stubs -----------------------------------------------------------------

type stubTx struct {
	committed  bool
	rolledBack bool
}

func (t *stubTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(context.Context) error {
	t.committed = true
	return nil
}
func (t *stubTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}
func (t *stubTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *stubTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *stubTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *stubTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (t *stubTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (t *stubTx) Conn() *pgx.Conn                                         { return nil }

type stubPool struct {
	tx *stubTx
}

func (p *stubPool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (p *stubPool) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (p *stubPool) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (p *stubPool) Begin(context.Context) (pgx.Tx, error)                   { return p.tx, nil }

func notFound() error {
	return &infra.RepositoryError{Kind: infra.NotFound, Err: errs.New("no rows")}
}

type stubRooms struct {
	snap *commands.RoomSnapshot
}

func (s *stubRooms) FindByID(_ context.Context, _ infra.DBTX, id uuid.UUID) (*commands.RoomSnapshot, error) {
	if s.snap == nil || s.snap.ID != id {
		return nil, notFound()
	}
	return s.snap, nil
}

type stubPromos struct {
	snaps []*commands.PromoSnapshot
}

func (s *stubPromos) ListActiveOrdered(context.Context, infra.DBTX, time.Time) ([]*commands.PromoSnapshot, error) {
	return s.snaps, nil
}

type stubMemberships struct {
	snap      *commands.MembershipSnapshot
	deducted  int
	deductErr error
}

func (s *stubMemberships) FindActive(context.Context, infra.DBTX, uuid.UUID, uuid.UUID, time.Time) (*commands.MembershipSnapshot, error) {
	if s.snap == nil {
		return nil, notFound()
	}
	return s.snap, nil
}

func (s *stubMemberships) DeductCredit(_ context.Context, _ infra.DBTX, _ uuid.UUID, credits int) error {
	if s.deductErr != nil {
		return s.deductErr
	}
	s.deducted += credits
	return nil
}

type stubVirtualOffice struct {
	snap     *commands.BenefitSnapshot
	deducted int
}

func (s *stubVirtualOffice) FindForDate(context.Context, infra.DBTX, uuid.UUID, time.Time) (*commands.BenefitSnapshot, error) {
	if s.snap == nil {
		return nil, notFound()
	}
	return s.snap, nil
}

func (s *stubVirtualOffice) DeductHours(_ context.Context, _ infra.DBTX, _ uuid.UUID, _ room.Class, hours int) error {
	s.deducted += hours
	return nil
}

type stubBookings struct {
	existing  []*booking.Booking
	created   []*booking.Booking
	createErr error
}

func (s *stubBookings) Create(_ context.Context, _ infra.DBTX, b *booking.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, b)
	return nil
}

func (s *stubBookings) ListBlockingInRange(context.Context, infra.DBTX, uuid.UUID, time.Time, time.Time) ([]*booking.Booking, error) {
	return s.existing, nil
}

type stubIdempotency struct {
	state     commands.IdempotencyInsert
	record    *commands.IdempotencyRecord
	lastHash  string
	completed *uuid.UUID
	released  []uuid.UUID
}

func (s *stubIdempotency) TryInsert(_ context.Context, _ infra.DBTX, _, _ uuid.UUID, requestHash string) (commands.IdempotencyInsert, *commands.IdempotencyRecord, error) {
	s.lastHash = requestHash
	return s.state, s.record, nil
}

func (s *stubIdempotency) MarkCompleted(_ context.Context, _ infra.DBTX, _, bookingID uuid.UUID) error {
	s.completed = &bookingID
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, _ infra.DBTX, key uuid.UUID) error {
	s.released = append(s.released, key)
	return nil
}

type stubNotifications struct {
	jobs []commands.NotificationJob
}

func (s *stubNotifications) Enqueue(_ context.Context, _ infra.DBTX, job commands.NotificationJob) error {
	s.jobs = append(s.jobs, job)
	return nil
}

type stubBookingReads struct{}

func (s *stubBookingReads) GetByID(context.Context, queries.Actor, uuid.UUID) (*queries.BookingView, error) {
	panic("not used")
}

func (s *stubBookingReads) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return &queries.BookingView{ID: id}, nil
}

func (s *stubBookingReads) ListForUser(context.Context, uuid.UUID) ([]*queries.BookingListItem, error) {
	return nil, nil
}

// --- fixture ---------------------------------------------------------------

type fixture struct {
	pool          *stubPool
	rooms         *stubRooms
	promos        *stubPromos
	memberships   *stubMemberships
	virtualOffice *stubVirtualOffice
	bookings      *stubBookings
	idempotency   *stubIdempotency
	notifications *stubNotifications
	commands      commands.BookingCommands
	roomID        uuid.UUID
	userID        uuid.UUID
}

func newFixture() *fixture {
	roomID := uuid.New()
	f := &fixture{
		pool: &stubPool{tx: &stubTx{}},
		rooms: &stubRooms{snap: &commands.RoomSnapshot{
			ID:           roomID,
			Name:         "Ruang Rapat A",
			CategoryID:   uuid.New(),
			CategoryName: "Room Meeting",
			HourlyPrice:  60000,
			PackageTiers: []room.PackageTier{
				{DurationHours: 1, Price: 50000},
				{DurationHours: 2, Price: 95000},
				{DurationHours: 4, Price: 200000},
			},
			Capacity: 8,
		}},
		promos:        &stubPromos{},
		memberships:   &stubMemberships{},
		virtualOffice: &stubVirtualOffice{},
		bookings:      &stubBookings{},
		idempotency:   &stubIdempotency{state: commands.IdemInserted},
		notifications: &stubNotifications{},
		roomID:        roomID,
		userID:        uuid.New(),
	}
	f.commands = commands.NewBookingCommands(
		f.pool, f.rooms, f.promos, f.memberships, f.virtualOffice,
		f.bookings, f.idempotency, f.notifications, &stubBookingReads{},
		clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
	)
	return f
}

func promoSnapshot(code string, discount int64, minDuration *int) *commands.PromoSnapshot {
	return &commands.PromoSnapshot{
		ID:               uuid.New(),
		Code:             code,
		DiscountValue:    discount,
		MinDurationHours: minDuration,
		StartDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Scope:            "room",
	}
}

func weekInput(roomID uuid.UUID, method string) commands.QuoteInput {
	dateTo := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	return commands.QuoteInput{
		RoomID:        roomID,
		DateFrom:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		DateTo:        &dateTo,
		StartHour:     9,
		DurationHours: 4,
		PaymentMethod: method,
	}
}

// --- tests -----------------------------------------------------------------

func TestBookingCommandsQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("normal week with percent promo", func(t *testing.T) {
		f := newFixture()
		minDuration := 2
		f.promos.snaps = []*commands.PromoSnapshot{promoSnapshot("HEMAT10", 10, &minDuration)}

		got, err := f.commands.Quote(ctx, f.userID, weekInput(f.roomID, "normal"))
		require.NoError(t, err)

		code := "HEMAT10"
		want := &commands.QuoteResult{
			PaymentMethod:    "normal",
			CountedDays:      5,
			TotalPrice:       900000, // 200000 x 5 days, minus 10%
			AppliedPromoCode: &code,
			Eligible:         true,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("credit quote reports per-day cost and eligibility", func(t *testing.T) {
		f := newFixture()
		f.memberships.snap = &commands.MembershipSnapshot{
			ID:              uuid.New(),
			UserID:          f.userID,
			CategoryID:      f.rooms.snap.CategoryID,
			RemainingCredit: 10, // needs 4 x 5 = 20
		}

		got, err := f.commands.Quote(ctx, f.userID, weekInput(f.roomID, "credit"))
		require.NoError(t, err)

		assert.Equal(t, 4, got.CreditCost)
		assert.Zero(t, got.TotalPrice)
		assert.False(t, got.Eligible)
	})

	t.Run("missing membership record is ineligible, not an error", func(t *testing.T) {
		f := newFixture()

		got, err := f.commands.Quote(ctx, f.userID, weekInput(f.roomID, "credit"))
		require.NoError(t, err)
		assert.False(t, got.Eligible)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture()

		_, err := f.commands.Quote(ctx, f.userID, weekInput(uuid.New(), "normal"))
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("slot past closing hour is rejected", func(t *testing.T) {
		f := newFixture()
		input := weekInput(f.roomID, "normal")
		input.StartHour = 19 // 19 + 4 > 22

		_, err := f.commands.Quote(ctx, f.userID, input)
		require.ErrorIs(t, err, commands.ErrInvalidSelection)
	})

	t.Run("duration outside tier list is rejected", func(t *testing.T) {
		f := newFixture()
		input := weekInput(f.roomID, "normal")
		input.DurationHours = 3

		_, err := f.commands.Quote(ctx, f.userID, input)
		require.ErrorIs(t, err, commands.ErrInvalidSelection)
	})
}

func TestBookingCommandsCreate(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	createInput := func(roomID uuid.UUID, method string) commands.CreateInput {
		return commands.CreateInput{
			QuoteInput: weekInput(roomID, method),
			Purpose:    "Team offsite",
		}
	}

	t.Run("normal booking commits and enqueues notification", func(t *testing.T) {
		f := newFixture()

		view, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "normal"))
		require.NoError(t, err)
		require.Len(t, f.bookings.created, 1)

		created := f.bookings.created[0]
		assert.Equal(t, view.ID, created.ID())
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, int64(1000000), created.TotalPrice())

		assert.True(t, f.pool.tx.committed)
		require.Len(t, f.notifications.jobs, 1)
		assert.Equal(t, "booking_created", f.notifications.jobs[0].Kind)
		require.NotNil(t, f.idempotency.completed)
		assert.Equal(t, created.ID(), *f.idempotency.completed)
	})

	t.Run("credit booking confirms and deducts days times duration", func(t *testing.T) {
		f := newFixture()
		f.memberships.snap = &commands.MembershipSnapshot{
			ID:              uuid.New(),
			UserID:          f.userID,
			CategoryID:      f.rooms.snap.CategoryID,
			RemainingCredit: 25,
		}

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "credit"))
		require.NoError(t, err)

		require.Len(t, f.bookings.created, 1)
		assert.Equal(t, booking.StatusConfirmed, f.bookings.created[0].Status())
		assert.Equal(t, 20, f.memberships.deducted) // 4h x 5 days
	})

	t.Run("virtual office booking deducts the meeting room bucket", func(t *testing.T) {
		f := newFixture()
		f.virtualOffice.snap = &commands.BenefitSnapshot{
			ID:               uuid.New(),
			UserID:           f.userID,
			MeetingRoomHours: 30,
		}

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "virtual_office"))
		require.NoError(t, err)
		assert.Equal(t, 20, f.virtualOffice.deducted)
	})

	t.Run("overlapping hours conflict", func(t *testing.T) {
		f := newFixture()
		f.bookings.existing = []*booking.Booking{existingBooking(t, f.roomID, 10, 2)}

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "normal"))
		require.ErrorIs(t, err, commands.ErrBookingConflict)
		assert.Empty(t, f.bookings.created)
		assert.False(t, f.pool.tx.committed)
	})

	t.Run("failed create releases the claim so a retry can proceed", func(t *testing.T) {
		f := newFixture()
		f.bookings.existing = []*booking.Booking{existingBooking(t, f.roomID, 10, 2)}

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "normal"))
		require.ErrorIs(t, err, commands.ErrBookingConflict)
		require.Len(t, f.idempotency.released, 1)
		assert.Equal(t, key, f.idempotency.released[0])
	})

	t.Run("successful create keeps the claim", func(t *testing.T) {
		f := newFixture()

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "normal"))
		require.NoError(t, err)
		assert.Empty(t, f.idempotency.released)
	})

	t.Run("concurrent balance change surfaces as insufficient credit", func(t *testing.T) {
		f := newFixture()
		f.memberships.snap = &commands.MembershipSnapshot{
			ID:              uuid.New(),
			UserID:          f.userID,
			CategoryID:      f.rooms.snap.CategoryID,
			RemainingCredit: 25,
		}
		f.memberships.deductErr = &infra.RepositoryError{Kind: infra.Conflict, Err: errs.New("guard failed")}

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "credit"))
		require.ErrorIs(t, err, commands.ErrInsufficientCredit)
		assert.False(t, f.pool.tx.committed)
	})

	t.Run("completed key with same payload replays the booking", func(t *testing.T) {
		f := newFixture()
		input := createInput(f.roomID, "normal")

		// First call records the canonical request hash.
		_, err := f.commands.Create(ctx, f.userID, key, input)
		require.NoError(t, err)
		bookingID := f.bookings.created[0].ID()

		f.idempotency.state = commands.IdemCompleted
		f.idempotency.record = &commands.IdempotencyRecord{
			Key:         key,
			UserID:      f.userID,
			RequestHash: f.idempotency.lastHash,
			BookingID:   &bookingID,
		}

		view, err := f.commands.Create(ctx, f.userID, key, input)
		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)
		assert.Len(t, f.bookings.created, 1, "no second booking is created")
	})

	t.Run("completed key with different payload is rejected", func(t *testing.T) {
		f := newFixture()
		bookingID := uuid.New()
		f.idempotency.state = commands.IdemCompleted
		f.idempotency.record = &commands.IdempotencyRecord{
			Key:         key,
			UserID:      f.userID,
			RequestHash: "different",
			BookingID:   &bookingID,
		}

		_, err := f.commands.Create(ctx, f.userID, key, createInput(f.roomID, "normal"))
		require.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})

	t.Run("completed key without a booking id fails instead of panicking", func(t *testing.T) {
		f := newFixture()
		input := createInput(f.roomID, "normal")
		_, err := f.commands.Create(ctx, f.userID, key, input)
		require.NoError(t, err)

		f.idempotency.state = commands.IdemCompleted
		f.idempotency.record = &commands.IdempotencyRecord{
			Key:         key,
			UserID:      f.userID,
			RequestHash: f.idempotency.lastHash,
		}

		_, err = f.commands.Create(ctx, f.userID, key, input)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})

	t.Run("processing key backs off", func(t *testing.T) {
		f := newFixture()
		input := createInput(f.roomID, "normal")
		_, err := f.commands.Create(ctx, f.userID, key, input)
		require.NoError(t, err)

		f.bookings.created = nil
		f.idempotency.state = commands.IdemProcessing
		f.idempotency.record = &commands.IdempotencyRecord{
			Key:         key,
			UserID:      f.userID,
			RequestHash: f.idempotency.lastHash,
		}

		_, err = f.commands.Create(ctx, f.userID, key, input)
		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
		assert.Empty(t, f.bookings.created)
	})
}

func existingBooking(t *testing.T, roomID uuid.UUID, startHour, durationHours int) *booking.Booking {
	t.Helper()
	to := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	dateRange, err := booking.NewDateRange(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), &to)
	require.NoError(t, err)
	slot, err := booking.NewHourSlot(startHour, durationHours)
	require.NoError(t, err)
	return booking.ReconstructBooking(
		uuid.New(), roomID, uuid.New(),
		dateRange, slot,
		false, false, 5,
		booking.PaymentNormal, booking.StatusConfirmed,
		0, 0, 0,
		nil, nil, nil,
		"",
		time.Now(), time.Now(),
	)
}
