package api

import (
	"errors"
	"net/http"

	resdto "shiftcore/internal/handler/dto/response"
	"shiftcore/internal/pkg/errs"
	"shiftcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotQueries: slotQueries,
	}
}

// @Summary Get slot
// @Description Get a shift slot with its current signup count
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	view, err := h.slotQueries.GetSlot(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary List person schedule
// @Description List the slots a person is signed up for, most recent first
// @Tags people
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /people/{id}/schedule [get]
func (h *SlotHandler) ListPersonSlots(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid person ID format",
		})
		return
	}

	views, err := h.slotQueries.ListPersonSlots(c.Request.Context(), personID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
