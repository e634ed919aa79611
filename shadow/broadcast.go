package shadow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"senso-backend/models"
)

// BroadcastBusDispatcher is the local-cache shadow provider. Connectivity
// reads come from the cache the telemetry router maintains; desired-state
// writes go out as a command envelope on the shared topic, trusting each
// device to filter by its own id.
type BroadcastBusDispatcher struct {
	topic     string
	bus       BusPublisher
	connCache ConnectivityReader
	logger    *slog.Logger
}

// NewBroadcastBusDispatcher creates a dispatcher publishing on the shared
// telemetry topic.
func NewBroadcastBusDispatcher(topic string, bus BusPublisher, connCache ConnectivityReader, logger *slog.Logger) *BroadcastBusDispatcher {
	return &BroadcastBusDispatcher{
		topic:     topic,
		bus:       bus,
		connCache: connCache,
		logger:    logger.With("component", "broadcast_shadow"),
	}
}

// GetShadow returns the locally-cached connectivity status. Empty means no
// observation; the caller falls back to the device state store.
func (d *BroadcastBusDispatcher) GetShadow(ctx context.Context, deviceID string) (string, error) {
	if d.connCache == nil {
		return "", nil
	}
	return d.connCache.GetConnectionStatus(ctx, deviceID)
}

// PublishDesiredState broadcasts the command envelope on the shared topic.
func (d *BroadcastBusDispatcher) PublishDesiredState(ctx context.Context, deviceID string, desired models.DesiredCommand) error {
	envelope := models.CommandEnvelope{
		TargetDeviceID: deviceID,
		Type:           "command",
		State:          models.CommandState{Desired: desired},
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal command envelope: %w", err)
	}

	if err := d.bus.Publish(ctx, d.topic, payload); err != nil {
		return fmt.Errorf("failed to publish command for %s: %w", deviceID, err)
	}

	d.logger.Info("Command broadcast on shared topic", "deviceId", deviceID, "cmdId", desired.CmdID, "topic", d.topic)
	return nil
}
