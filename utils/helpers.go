package utils

import (
	"fmt"
	"time"
)

// ===================================================================
// ID GENERATION HELPERS
// ===================================================================

// GenerateCommandID generates a time-derived command id. It is advisory for
// device-side deduplication and logging, not an ordering key, so collision
// under rapid repeated calls is accepted.
func GenerateCommandID() string {
	return fmt.Sprintf("cmd-%d", time.Now().UnixMilli())
}

// ===================================================================
// VALIDATION HELPERS
// ===================================================================

// ValidateRequired checks if required fields are not empty.
func ValidateRequired(fields map[string]string) error {
	for fieldName, value := range fields {
		if value == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}
	return nil
}

// ===================================================================
// RESPONSE HELPERS
// ===================================================================

// StandardResponse represents a standard API response.
type StandardResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse creates a success response.
func SuccessResponse(message string, data interface{}) StandardResponse {
	return StandardResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse creates an error response.
func ErrorResponse(message string) StandardResponse {
	return StandardResponse{
		Success: false,
		Message: message,
	}
}
