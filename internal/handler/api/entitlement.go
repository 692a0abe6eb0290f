package api

import (
	"errors"
	"net/http"
	"time"

	resdto "cospace-api/internal/handler/dto/response"
	"cospace-api/internal/handler/middleware"
	"cospace-api/internal/pkg/clock"
	"cospace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntitlementHandler struct {
	entitlements queries.EntitlementQueries
	clock        clock.Clock
}

func NewEntitlementHandler(entitlements queries.EntitlementQueries, clk clock.Clock) *EntitlementHandler {
	return &EntitlementHandler{
		entitlements: entitlements,
		clock:        clk,
	}
}

// @Summary Get my membership
// @Description Get the active membership balance for a room category
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param categoryId query string true "Room category ID"
// @Success 200 {object} resdto.MembershipResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /memberships/me [get]
func (h *EntitlementHandler) GetMyMembership(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	categoryID, err := uuid.Parse(c.Query("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	view, err := h.entitlements.MembershipFor(c.Request.Context(), userID, categoryID, h.clock.Now())
	if err != nil {
		if errors.Is(err, queries.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active membership for this category",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMembershipView(view))
}

// @Summary Get my virtual office benefit
// @Description Get the benefit-hour balances active on a date (today by default)
// @Tags virtual-office
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /virtual-office/me [get]
func (h *EntitlementHandler) GetMyBenefit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	day := clock.Today(h.clock)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	view, err := h.entitlements.BenefitFor(c.Request.Context(), userID, day)
	if err != nil {
		if errors.Is(err, queries.ErrBenefitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No virtual office benefit for this date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitView(view))
}
