package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportsmatch/backend/internal/middleware"
	"github.com/sportsmatch/backend/internal/services"
	"github.com/sportsmatch/backend/pkg/response"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the caller's notifications, newest first
// GET /api/notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, appErr := h.notificationService.List(middleware.GetUserID(c), unreadOnly)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, notifications)
}

// UnreadCount returns the number of unread notifications
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, appErr := h.notificationService.UnreadCount(middleware.GetUserID(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// MarkRead marks one notification as read
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}

	if appErr := h.notificationService.MarkRead(middleware.GetUserID(c), uint(id)); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"message": "marked read"})
}

// MarkAllRead marks every unread notification as read
// PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if appErr := h.notificationService.MarkAllRead(middleware.GetUserID(c)); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"message": "marked read"})
}
