package handlers

import (
	"net/http"

	"senso-backend/models"
	"senso-backend/services"
	"senso-backend/utils"

	"github.com/labstack/echo/v4"
)

// DeviceHandler serves device status, history and command endpoints.
type DeviceHandler struct {
	deviceService  *services.DeviceService
	commandService *services.CommandService
}

// NewDeviceHandler creates a new instance of DeviceHandler.
func NewDeviceHandler(deviceService *services.DeviceService, commandService *services.CommandService) *DeviceHandler {
	return &DeviceHandler{
		deviceService:  deviceService,
		commandService: commandService,
	}
}

// GetDeviceStatus returns the live/last-known status of a device.
func (h *DeviceHandler) GetDeviceStatus(c echo.Context) error {
	deviceID := c.Param("deviceId")
	status, err := h.deviceService.GetDeviceStatus(c.Request().Context(), deviceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"deviceId": status.DeviceID,
		"status":   status.Status,
		"isOnline": status.IsOnline,
		"lastSeen": status.LastSeen,
		"lastData": status.LastData,
	})
}

// GetDeviceHistory returns readings for a period selector (Day/Week/Month),
// oldest first.
func (h *DeviceHandler) GetDeviceHistory(c echo.Context) error {
	deviceID := c.Param("deviceId")
	period := c.QueryParam("period")

	history, err := h.deviceService.GetDeviceHistory(c.Request().Context(), deviceID, period)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Device history retrieved successfully", history))
}

// SendSceneCommand dispatches a scene activation to a device.
func (h *DeviceHandler) SendSceneCommand(c echo.Context) error {
	deviceID := c.Param("deviceId")

	var req models.SceneCommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid request body"))
	}
	if err := utils.ValidateRequired(map[string]string{"scene_id": req.SceneID}); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse(err.Error()))
	}

	cmdID, err := h.commandService.SendSceneCommand(c.Request().Context(), deviceID, req.SceneID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Scene command sent", echo.Map{"cmd_id": cmdID}))
}

// SendThresholdCommand dispatches care thresholds to a device. Values in
// the request are real-world units; scaling happens server-side.
func (h *DeviceHandler) SendThresholdCommand(c echo.Context) error {
	deviceID := c.Param("deviceId")

	var req models.ThresholdCommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid request body"))
	}
	if len(req.Thresholds) == 0 {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse("thresholds is required"))
	}

	cmdID, err := h.commandService.SendThresholdCommand(c.Request().Context(), deviceID, req.Thresholds)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Threshold command sent", echo.Map{"cmd_id": cmdID}))
}
