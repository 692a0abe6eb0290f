package api

import (
	"errors"
	"net/http"
	"time"

	resdto "cospace-api/internal/handler/dto/response"
	"cospace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(rooms queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{
		rooms:        rooms,
		availability: availability,
	}
}

// @Summary List rooms
// @Description List all bookable rooms with categories and package tiers
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.rooms.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.RoomResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, resdto.FromRoomView(view))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get room
// @Description Get a single room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Get booked hours
// @Description List the hours already booked for a room on a given date
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookedHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/booked-hours/{date} [get]
func (h *RoomHandler) GetBookedHours(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	day, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availability.BookedHours(c.Request.Context(), id, day)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedHoursView(view))
}
