package handlers

import (
	"net/http"
	"time"

	"senso-backend/utils"

	"github.com/labstack/echo/v4"
)

// HealthCheck provides a simple health status of the service.
func HealthCheck(c echo.Context) error {
	data := map[string]interface{}{
		"service":   "senso-backend",
		"timestamp": time.Now().Unix(),
	}
	return c.JSON(http.StatusOK, utils.SuccessResponse("Service is healthy", data))
}
