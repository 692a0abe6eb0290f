package queries

import (
	"time"

	"github.com/google/uuid"

	"cospace-api/internal/domain/room"
)

// Read models returned by the query side. These mirror what the API
// surfaces, not the write-side entities.

type RoomView struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	CategoryID   uuid.UUID          `json:"category_id"`
	CategoryName string             `json:"category_name"`
	HourlyPrice  int64              `json:"hourly_price"`
	PackageTiers []room.PackageTier `json:"package_tiers"`
	Capacity     int                `json:"capacity"`
	Facilities   []string           `json:"facilities"`
}

type BookedHoursView struct {
	RoomID uuid.UUID `json:"room_id"`
	Date   time.Time `json:"date"`
	Hours  []int     `json:"hours"`
}

type PromoView struct {
	ID               uuid.UUID `json:"id"`
	Code             string    `json:"code"`
	Title            string    `json:"title"`
	DiscountValue    int64     `json:"discount_value"`
	MinDurationHours *int      `json:"min_duration_hours,omitempty"`
	StartHour        int       `json:"start_hour"`
	EndHour          int       `json:"end_hour"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Scope            string    `json:"scope"`
}

type MembershipView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	RemainingCredit int        `json:"remaining_credit"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type BenefitView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	MeetingRoomHours  int       `json:"meeting_room_hours"`
	WorkingSpaceHours int       `json:"working_space_hours"`
	ActiveOn          time.Time `json:"active_on"`
}

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomName        string     `json:"room_name"`
	DateFrom        time.Time  `json:"date_from"`
	DateTo          *time.Time `json:"date_to,omitempty"`
	StartHour       int        `json:"start_hour"`
	DurationHours   int        `json:"duration_hours"`
	IncludeSaturday bool       `json:"include_saturday"`
	IncludeSunday   bool       `json:"include_sunday"`
	CountedDays     int        `json:"counted_days"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	TotalPrice      int64      `json:"total_price"`
	CreditCost      int        `json:"credit_cost"`
	BenefitHours    int        `json:"benefit_hours"`
	PromoCode       *string    `json:"promo_code,omitempty"`
	Purpose         string     `json:"purpose"`
	CreatedAt       time.Time  `json:"created_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	RoomName      string    `json:"room_name"`
	DateFrom      time.Time `json:"date_from"`
	StartHour     int       `json:"start_hour"`
	DurationHours int       `json:"duration_hours"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TotalPrice    int64     `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
