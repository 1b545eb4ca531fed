package handlers

import (
	"net/http"

	"haviaa/services/notification"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	NotificationSvc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationSvc: svc}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	list, err := h.NotificationSvc.ListNotifications(c.Request.Context(), usr.ID)
	if err != nil {
		utils.RespondError(c, "Failed to load notifications", err)
		return
	}
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list, "unread": unread})
}

// MarkReadHandler handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	n, err := h.NotificationSvc.MarkRead(c.Request.Context(), usr.ID, c.Param("id"))
	if err != nil {
		utils.RespondError(c, "Failed to update notification", err)
		return
	}
	c.JSON(http.StatusOK, n)
}
