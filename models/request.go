package models

// WiFi provisioning states. WAITING is the implicit default; CONNECTED and
// FAILED are terminal, reported once by the device itself.
const (
	WifiStatusWaiting   = "WAITING"
	WifiStatusConnected = "CONNECTED"
	WifiStatusFailed    = "FAILED"
)

// SceneCommandRequest activates a predefined device behavior.
type SceneCommandRequest struct {
	SceneID string `json:"scene_id"`
}

// ThresholdCommandRequest carries care thresholds in real-world units.
// Scaling to wire units happens server-side, never in the client.
type ThresholdCommandRequest struct {
	Thresholds map[string]float64 `json:"thresholds"`
}

// WifiStatusRequest is the device-reported provisioning outcome.
type WifiStatusRequest struct {
	DeviceID string `json:"deviceId"`
	Status   string `json:"status"`
}
