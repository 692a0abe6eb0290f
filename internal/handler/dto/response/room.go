package response

import (
	"time"

	"github.com/google/uuid"

	"cospace-api/internal/domain/room"
	"cospace-api/internal/usecase/queries"
)

type RoomResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	CategoryID   uuid.UUID          `json:"categoryId"`
	CategoryName string             `json:"categoryName"`
	HourlyPrice  int64              `json:"hourlyPrice"`
	PackageTiers []room.PackageTier `json:"packageTiers"`
	Capacity     int                `json:"capacity"`
	Facilities   []string           `json:"facilities"`
}

type BookedHoursResponse struct {
	RoomID uuid.UUID `json:"roomId"`
	Date   string    `json:"date"`
	Hours  []int     `json:"bookedHours"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           view.ID,
		Name:         view.Name,
		CategoryID:   view.CategoryID,
		CategoryName: view.CategoryName,
		HourlyPrice:  view.HourlyPrice,
		PackageTiers: view.PackageTiers,
		Capacity:     view.Capacity,
		Facilities:   view.Facilities,
	}
}

func FromBookedHoursView(view *queries.BookedHoursView) *BookedHoursResponse {
	return &BookedHoursResponse{
		RoomID: view.RoomID,
		Date:   view.Date.Format(time.DateOnly),
		Hours:  view.Hours,
	}
}
