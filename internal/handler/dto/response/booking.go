package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"cospace-api/internal/usecase/commands"
	"cospace-api/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	RoomID          uuid.UUID  `json:"roomId"`
	RoomName        string     `json:"roomName"`
	DateFrom        time.Time  `json:"dateFrom"`
	DateTo          *time.Time `json:"dateTo,omitempty"`
	StartHour       int        `json:"startHour"`
	DurationHours   int        `json:"durationHours"`
	IncludeSaturday bool       `json:"includeSaturday"`
	IncludeSunday   bool       `json:"includeSunday"`
	CountedDays     int        `json:"countedDays"`
	PaymentMethod   string     `json:"paymentMethod"`
	Status          string     `json:"status"`
	TotalPrice      int64      `json:"totalPrice"`
	CreditCost      int        `json:"creditCost"`
	BenefitHours    int        `json:"benefitHours"`
	PromoCode       *string    `json:"promoCode,omitempty"`
	Purpose         string     `json:"purpose"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomName      string    `json:"roomName"`
	DateFrom      time.Time `json:"dateFrom"`
	StartHour     int       `json:"startHour"`
	DurationHours int       `json:"durationHours"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	TotalPrice    int64     `json:"totalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

type QuoteResponse struct {
	PaymentMethod        string  `json:"paymentMethod"`
	CountedDays          int     `json:"countedDays"`
	TotalPrice           int64   `json:"totalPrice"`
	CreditCost           int     `json:"creditCost"`
	RequiredBenefitHours int     `json:"requiredBenefitHours"`
	AppliedPromoCode     *string `json:"appliedPromoCode,omitempty"`
	Eligible             bool    `json:"eligible"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	// Field names line up one to one; copier keeps the mapping in sync.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromQuoteResult(result *commands.QuoteResult) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, result)
	return &resp
}
