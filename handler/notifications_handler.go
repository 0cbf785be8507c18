package handler

import (
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	notifications *repository.NotificationsRepo
}

func NewNotificationsHandler(notifications *repository.NotificationsRepo) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

func (h *NotificationsHandler) ListNotifications(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	notifications, err := h.notifications.ListNotifications(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch notifications")
		return
	}

	unread, err := h.notifications.UnreadCount(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to count unread notifications")
		return
	}

	utils.Success(c, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	notificationID := c.Param("id")
	if err := h.notifications.MarkRead(c.Request.Context(), notificationID, userID.(string)); err != nil {
		if err.Error() == "notification not found" {
			utils.NotFound(c, "Notification not found")
			return
		}
		utils.InternalError(c, "Failed to update notification")
		return
	}

	utils.Success(c, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if err := h.notifications.MarkAllRead(c.Request.Context(), userID.(string)); err != nil {
		utils.InternalError(c, "Failed to update notifications")
		return
	}

	utils.Success(c, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationsHandler) DeleteNotification(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	notificationID := c.Param("id")
	if err := h.notifications.DeleteNotification(c.Request.Context(), notificationID, userID.(string)); err != nil {
		if err.Error() == "notification not found" {
			utils.NotFound(c, "Notification not found")
			return
		}
		utils.InternalError(c, "Failed to delete notification")
		return
	}

	utils.Success(c, gin.H{"message": "Notification deleted"})
}
