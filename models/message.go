package models

import "math"

// InboundMessage is a raw broker message handed from the bus client to the
// telemetry router.
type InboundMessage struct {
	Topic   string
	Payload []byte
}

// TelemetryMessage is the shared-topic envelope devices publish. A message
// carrying Type "alert" or any AlertType is an alert; everything else is a
// sensor reading. Numeric fields are pointers so absent values survive as
// nil instead of crashing the router or being stored as zero.
type TelemetryMessage struct {
	Mac       string   `json:"mac"`
	DeviceID  string   `json:"deviceId"`
	Sh        *float64 `json:"sh"`
	T         *float64 `json:"t"`
	Lx        *float64 `json:"lx"`
	Bp        *float64 `json:"bp"`
	Type      string   `json:"type"`
	AlertType string   `json:"alert_type"`
	Val       *float64 `json:"val"`
}

// DeviceKey returns the device identifier, preferring the hardware MAC.
// Empty means the message is unattributable and must be dropped.
func (m *TelemetryMessage) DeviceKey() string {
	if m.Mac != "" {
		return m.Mac
	}
	return m.DeviceID
}

// IsAlert reports whether the message takes the alert path.
func (m *TelemetryMessage) IsAlert() bool {
	return m.Type == "alert" || m.AlertType != ""
}

// Reading converts the wire payload into a stored reading snapshot.
func (m *TelemetryMessage) Reading() Reading {
	return Reading{
		Sh: roundToInt(m.Sh),
		T:  roundToInt(m.T),
		Lx: roundToInt(m.Lx),
		Bp: roundToInt(m.Bp),
	}
}

func roundToInt(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(math.Round(*v))
	return &i
}

// DesiredCommand is the desired-state payload a device applies. Threshold
// values are already scaled x10 by the time this struct is built.
type DesiredCommand struct {
	CmdID      string             `json:"cmd_id"`
	SceneID    string             `json:"scene_id,omitempty"`
	Thresholds map[string]float64 `json:"thresholds,omitempty"`
}

// CommandState wraps a desired command in the shadow document shape.
type CommandState struct {
	Desired DesiredCommand `json:"desired"`
}

// CommandEnvelope is the outbound broadcast form of a command. Every device
// on the shared topic receives it and filters by TargetDeviceID.
type CommandEnvelope struct {
	TargetDeviceID string       `json:"targetDeviceId"`
	Type           string       `json:"type"`
	State          CommandState `json:"state"`
}
