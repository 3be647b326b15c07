package handlers

import (
	"errors"
	"net/http"

	"travelhub/services/qualification"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
)

// SubmitProviderRequest files a qualification application for the
// authenticated user. Validation failures return the full field-keyed map.
func SubmitProviderRequest(gate qualification.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input qualification.SubmitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "invalid request payload: "+err.Error())
			return
		}

		req, err := gate.Submit(c.Request.Context(), actorID(c), input)
		if err != nil {
			var verr *qualification.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusBadRequest, gin.H{
					"success":    false,
					"error_kind": "validation_failed",
					"message":    "request validation failed",
					"errors":     verr.Fields,
				})
			case errors.Is(err, qualification.ErrDuplicateRequest):
				utils.JSONError(c, http.StatusConflict, "duplicate_request", "an active request already exists for this provider type")
			case errors.Is(err, qualification.ErrUserNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "user not found")
			default:
				utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to submit request")
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": req})
	}
}

// GetProviderRequest returns one request for admin review.
func GetProviderRequest(gate qualification.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := gate.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, qualification.ErrRequestNotFound) {
				utils.JSONError(c, http.StatusNotFound, "not_found", "provider request not found")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to load request")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": req})
	}
}

// ListProviderRequests returns every request, newest first. Admin only.
func ListProviderRequests(gate qualification.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := gate.ListAll(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to list requests")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
	}
}

// ListMyProviderRequests returns the authenticated user's own requests.
func ListMyProviderRequests(gate qualification.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := gate.ListForUser(c.Request.Context(), actorID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to list requests")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
	}
}

// ApproveProviderRequest approves a pending request. Admin only.
func ApproveProviderRequest(gate qualification.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := gate.Approve(c.Request.Context(), c.Param("id"), actorID(c))
		if err != nil {
			reviewError(c, err, "failed to approve request")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": req})
	}
}

// RejectProviderRequest rejects a pending request with a reason. Admin only.
func RejectProviderRequest(gate qualification.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "invalid rejection payload")
			return
		}

		req, err := gate.Reject(c.Request.Context(), c.Param("id"), actorID(c), input.Reason)
		if err != nil {
			if errors.Is(err, qualification.ErrReasonRequired) {
				utils.JSONError(c, http.StatusBadRequest, "validation_failed", "a rejection reason is required")
				return
			}
			reviewError(c, err, "failed to reject request")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": req})
	}
}

func reviewError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, qualification.ErrRequestNotFound):
		utils.JSONError(c, http.StatusNotFound, "not_found", "provider request not found")
	case errors.Is(err, qualification.ErrNotPending):
		utils.JSONError(c, http.StatusConflict, "invalid_transition", "request has already been reviewed")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", fallback)
	}
}
