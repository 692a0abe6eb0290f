package response

import (
	"time"

	"github.com/google/uuid"

	"cospace-api/internal/usecase/queries"
)

type PromoResponse struct {
	ID               uuid.UUID `json:"id"`
	Code             string    `json:"code"`
	Title            string    `json:"title"`
	DiscountValue    int64     `json:"discountValue"`
	MinDurationHours *int      `json:"minDurationHours,omitempty"`
	StartHour        int       `json:"startHour"`
	EndHour          int       `json:"endHour"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	Scope            string    `json:"scope"`
}

func FromPromoView(view *queries.PromoView) *PromoResponse {
	return &PromoResponse{
		ID:               view.ID,
		Code:             view.Code,
		Title:            view.Title,
		DiscountValue:    view.DiscountValue,
		MinDurationHours: view.MinDurationHours,
		StartHour:        view.StartHour,
		EndHour:          view.EndHour,
		StartDate:        view.StartDate.Format(time.DateOnly),
		EndDate:          view.EndDate.Format(time.DateOnly),
		Scope:            view.Scope,
	}
}
