package api

import (
	"errors"
	"net/http"

	"shiftcore/internal/domain/slot"
	reqdto "shiftcore/internal/handler/dto/request"
	resdto "shiftcore/internal/handler/dto/response"
	"shiftcore/internal/handler/middleware"
	"shiftcore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SignupHandler struct {
	signupCommands commands.SignupCommands
}

func NewSignupHandler(signupCommands commands.SignupCommands) *SignupHandler {
	return &SignupHandler{
		signupCommands: signupCommands,
	}
}

// signupStatusCode maps the business outcome of a signup attempt onto an
// HTTP status. Every outcome carries a body; only success is 2xx.
func signupStatusCode(status slot.Status) int {
	switch status {
	case slot.StatusSuccess:
		return http.StatusCreated
	case slot.StatusNoSlot:
		return http.StatusNotFound
	case slot.StatusNoEligibility:
		return http.StatusForbidden
	case slot.StatusFull, slot.StatusAlreadyReserved, slot.StatusNotActive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// @Summary Sign up for a slot
// @Description Add a person to a shift slot; admins may force past capacity or act for another person
// @Tags signups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.SignupRequest false "Signup options"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} resdto.SignupResponse
// @Failure 404 {object} resdto.SignupResponse
// @Failure 409 {object} resdto.SignupResponse
// @Router /slots/{id}/signups [post]
func (h *SignupHandler) CreateSignup(c *gin.Context) {
	authedID, ok := middleware.GetPersonID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.SignupRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	role, _ := middleware.GetRole(c)
	isAdmin := role == middleware.RoleAdmin
	personID := req.ResolvePersonID(authedID, isAdmin)
	force := req.Force && isAdmin

	result, err := h.signupCommands.AddToSchedule(c.Request.Context(), personID, slotID, force)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(signupStatusCode(result.Status), resdto.FromSignupResult(result))
}

// @Summary Remove a signup
// @Description Remove one person's reservation from a slot
// @Tags signups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param person path string true "Person ID"
// @Success 200 {object} resdto.RemovalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id}/signups/{person} [delete]
func (h *SignupHandler) DeleteSignup(c *gin.Context) {
	authedID, ok := middleware.GetPersonID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	personID, err := uuid.Parse(c.Param("person"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid person ID format",
		})
		return
	}

	role, _ := middleware.GetRole(c)
	if personID != authedID && role != middleware.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		return
	}

	result, err := h.signupCommands.DeleteFromSchedule(c.Request.Context(), personID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRemovalResult(result))
}

// @Summary Remove all signups from a slot
// @Description Remove every reservation on a slot, writing an audit trail first (admin only)
// @Tags signups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.BulkRemoveRequest false "Removal reason"
// @Success 200 {object} resdto.BulkRemovalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /slots/{id}/signups [delete]
func (h *SignupHandler) BulkDeleteSignups(c *gin.Context) {
	actorID, ok := middleware.GetPersonID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.BulkRemoveRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	removed, err := h.signupCommands.RemoveAllFromSlot(c.Request.Context(), slotID, &actorID, req.GetReason())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, &resdto.BulkRemovalResponse{Removed: removed})
}
