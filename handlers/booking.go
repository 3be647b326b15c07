package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"travelhub/models"
	"travelhub/services/bookingview"
	"travelhub/services/workflow"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
)

// listQueryFromRequest parses the shared pagination and filter parameters.
func listQueryFromRequest(c *gin.Context) (bookingview.ListQuery, bool) {
	q := bookingview.ListQuery{
		Status:     c.Query("status"),
		SourceKind: c.Query("type"),
		Page:       1,
		PageSize:   20,
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "page must be a positive integer")
			return q, false
		}
		q.Page = page
	}
	if raw := c.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > 100 {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "page_size must be between 1 and 100")
			return q, false
		}
		q.PageSize = size
	}
	if q.Status != "" && !models.IsValidStatus(q.Status) {
		utils.JSONError(c, http.StatusBadRequest, "validation_failed", "status must be one of pending, confirmed, cancelled, completed")
		return q, false
	}
	return q, true
}

// ListProviderBookings serves the provider's merged booking list.
func ListProviderBookings(view bookingview.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := listQueryFromRequest(c)
		if !ok {
			return
		}
		page, err := view.ListForProvider(c.Request.Context(), actorID(c), q)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to list bookings")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
	}
}

// ListCustomerBookings serves the customer's merged booking list.
func ListCustomerBookings(view bookingview.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := listQueryFromRequest(c)
		if !ok {
			return
		}
		page, err := view.ListForCustomer(c.Request.Context(), actorID(c), q)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to list bookings")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
	}
}

// TransitionBooking applies a status change to one booking.
func TransitionBooking(engine workflow.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("id")

		var input struct {
			Status          string `json:"status" binding:"required"`
			RejectionReason string `json:"rejection_reason"`
			SourceKind      string `json:"source_kind"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "status is required")
			return
		}

		booking, err := engine.Transition(c.Request.Context(), bookingID, actorID(c), input.Status, workflow.TransitionInput{
			RejectionReason: input.RejectionReason,
			SourceKind:      input.SourceKind,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingview.ErrBookingNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "booking not found")
			case errors.Is(err, workflow.ErrForbidden):
				utils.JSONError(c, http.StatusForbidden, "forbidden", "only the provider may update this booking")
			case errors.Is(err, workflow.ErrUnknownStatus):
				utils.JSONError(c, http.StatusBadRequest, "validation_failed", "unknown target status")
			case errors.Is(err, workflow.ErrInvalidTransition):
				utils.JSONError(c, http.StatusConflict, "invalid_transition", err.Error())
			default:
				utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to update booking")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
	}
}
