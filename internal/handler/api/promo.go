package api

import (
	"net/http"
	"time"

	resdto "cospace-api/internal/handler/dto/response"
	"cospace-api/internal/pkg/clock"
	"cospace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	promos queries.PromoQueries
	clock  clock.Clock
}

func NewPromoHandler(promos queries.PromoQueries, clk clock.Clock) *PromoHandler {
	return &PromoHandler{
		promos: promos,
		clock:  clk,
	}
}

// @Summary List active promos
// @Description List room promos active on a date (today by default)
// @Tags promos
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.PromoResponse
// @Failure 400 {object} map[string]string
// @Router /promos [get]
func (h *PromoHandler) ListPromos(c *gin.Context) {
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

	views, err := h.promos.ListActive(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.PromoResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, resdto.FromPromoView(view))
	}
	c.JSON(http.StatusOK, responses)
}
