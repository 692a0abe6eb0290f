package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"cospace-api/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

type QuoteBookingRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	DateFrom        string    `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo          *string   `json:"date_to,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartHour       int       `json:"start_hour" binding:"min=0,max=23"`
	DurationHours   int       `json:"duration_hours" binding:"required,min=1"`
	IncludeSaturday bool      `json:"include_saturday"`
	IncludeSunday   bool      `json:"include_sunday"`
	PaymentMethod   string    `json:"payment_method" binding:"required,oneof=normal credit virtual_office"`
}

func (r *QuoteBookingRequest) ToInput() (commands.QuoteInput, error) {
	dateFrom, err := time.Parse(dateLayout, r.DateFrom)
	if err != nil {
		return commands.QuoteInput{}, err
	}
	var dateTo *time.Time
	if r.DateTo != nil {
		t, err := time.Parse(dateLayout, *r.DateTo)
		if err != nil {
			return commands.QuoteInput{}, err
		}
		dateTo = &t
	}
	return commands.QuoteInput{
		RoomID:          r.RoomID,
		DateFrom:        dateFrom,
		DateTo:          dateTo,
		StartHour:       r.StartHour,
		DurationHours:   r.DurationHours,
		IncludeSaturday: r.IncludeSaturday,
		IncludeSunday:   r.IncludeSunday,
		PaymentMethod:   r.PaymentMethod,
	}, nil
}

type CreateBookingRequest struct {
	QuoteBookingRequest
	Purpose string `json:"purpose" binding:"max=500"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateInput, error) {
	quote, err := r.QuoteBookingRequest.ToInput()
	if err != nil {
		return commands.CreateInput{}, err
	}
	return commands.CreateInput{
		QuoteInput: quote,
		Purpose:    strings.TrimSpace(r.Purpose),
	}, nil
}
