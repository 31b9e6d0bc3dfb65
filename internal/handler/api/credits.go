package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "shiftcore/internal/handler/dto/response"
	"shiftcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreditHandler struct {
	creditQueries  queries.CreditQueries
	summaryQueries queries.SummaryQueries
}

func NewCreditHandler(creditQueries queries.CreditQueries, summaryQueries queries.SummaryQueries) *CreditHandler {
	return &CreditHandler{
		creditQueries:  creditQueries,
		summaryQueries: summaryQueries,
	}
}

// @Summary Compute credits for an interval
// @Description Evaluate one worked interval against the credit-rate schedule of a year
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param category query string true "Work category ID"
// @Param start query string true "Interval start (RFC3339)"
// @Param end query string true "Interval end (RFC3339)"
// @Param year query int true "Schedule year"
// @Success 200 {object} resdto.CreditsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /credits [get]
func (h *CreditHandler) ComputeCredits(c *gin.Context) {
	category, err := uuid.Parse(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time, expected RFC3339",
		})
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end time, expected RFC3339",
		})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year",
		})
		return
	}

	credits, err := h.creditQueries.ComputeCredits(c.Request.Context(), category, start, end, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewCreditsResponse(category, start, end, year, credits))
}

// @Summary Work summary for a person and year
// @Description Roll a person's worked time into pre-event, event, post-event and other buckets with credits
// @Tags people
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID"
// @Param year query int true "Summary year"
// @Success 200 {object} resdto.WorkSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /people/{id}/work-summary [get]
func (h *CreditHandler) GetWorkSummary(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid person ID format",
		})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year",
		})
		return
	}

	summary, err := h.summaryQueries.WorkSummaryForPersonYear(c.Request.Context(), personID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkSummary(year, summary))
}

// @Summary Clear the credit-rate cache
// @Description Drop every cached rate schedule so rate edits take effect (admin only)
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /credit-rates/cache/clear [post]
func (h *CreditHandler) ClearRateCache(c *gin.Context) {
	h.creditQueries.InvalidateRates()
	c.Status(http.StatusNoContent)
}
