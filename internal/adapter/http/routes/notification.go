package routes

import (
	"ikhaya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNotifications = "/notifications"
)

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/preferences", h.GetPreferences)
		notifications.PUT("/preferences", h.UpdatePreferences)
		notifications.PATCH("/:id/read", h.MarkNotificationRead)
		notifications.POST("/email", h.SendEmailNotification)
	}
}
