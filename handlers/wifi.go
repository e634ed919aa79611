package handlers

import (
	"net/http"

	"senso-backend/models"
	"senso-backend/services"
	"senso-backend/utils"

	"github.com/labstack/echo/v4"
)

// WifiHandler serves the provisioning handshake endpoints. These are
// unauthenticated: the reporting device has no credentials yet.
type WifiHandler struct {
	wifiService *services.WifiService
}

// NewWifiHandler creates a new instance of WifiHandler.
func NewWifiHandler(wifiService *services.WifiService) *WifiHandler {
	return &WifiHandler{
		wifiService: wifiService,
	}
}

// UpdateWifiStatus records the device-reported provisioning outcome.
func (h *WifiHandler) UpdateWifiStatus(c echo.Context) error {
	var req models.WifiStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid request body"))
	}
	if err := utils.ValidateRequired(map[string]string{"deviceId": req.DeviceID, "status": req.Status}); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrorResponse(err.Error()))
	}

	if err := h.wifiService.SetStatus(c.Request().Context(), req.DeviceID, req.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Wi-Fi status updated",
		"deviceId": req.DeviceID,
		"status":   req.Status,
	})
}

// GetWifiStatus is polled by the setup UI until a terminal state appears.
func (h *WifiHandler) GetWifiStatus(c echo.Context) error {
	deviceID := c.Param("deviceId")

	status, err := h.wifiService.GetStatus(c.Request().Context(), deviceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"deviceId": deviceID,
		"status":   status,
	})
}
