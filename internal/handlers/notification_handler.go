package handlers

import (
	"net/http"
	"time"

	"gastropass_backend/internal/middleware"
	"gastropass_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/notifications")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/sweep", h.RunSweep)
		admin.GET("", h.Log)
		admin.DELETE("", h.ClearLog)
	}
}

func (h *NotificationHandler) RunSweep(c *gin.Context) {
	result, err := h.notificationService.RunSweep(time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *NotificationHandler) Log(c *gin.Context) {
	c.JSON(http.StatusOK, h.notificationService.Log())
}

func (h *NotificationHandler) ClearLog(c *gin.Context) {
	h.notificationService.ClearLog()
	c.JSON(http.StatusOK, gin.H{"message": "Notification log cleared"})
}
