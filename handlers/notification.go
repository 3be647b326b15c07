package handlers

import (
	"errors"
	"net/http"

	"travelhub/services/notification"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the authenticated user's notification feed.
func ListNotifications(svc notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, err := svc.ListForRecipient(c.Request.Context(), actorID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to list notifications")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": feed})
	}
}

// MarkNotificationRead flags one of the user's notifications as read.
func MarkNotificationRead(svc notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.MarkRead(c.Request.Context(), actorID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, notification.ErrNotificationNotFound) {
				utils.JSONError(c, http.StatusNotFound, "not_found", "notification not found")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to mark notification read")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
