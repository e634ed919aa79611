package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"senso-backend/middlewares"
	"senso-backend/services"
	"senso-backend/utils"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NotificationHandler serves the user-facing notification surface.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new instance of NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications returns the authenticated user's newest notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid token"))
	}

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Notifications retrieved successfully", notifications))
}

// MarkNotificationRead flips the read flag on one of the user's
// notifications.
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid token"))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid notification id"))
	}

	if err := h.notificationService.MarkRead(uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, utils.ErrorResponse("notification not found"))
		}
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Marked as read", nil))
}

// DeleteNotification removes one of the user's notifications.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid token"))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid notification id"))
	}

	if err := h.notificationService.Delete(uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, utils.ErrorResponse("notification not found"))
		}
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Deleted", nil))
}
