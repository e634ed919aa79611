package shadow

import (
	"context"
	"log/slog"

	"senso-backend/config"
	"senso-backend/models"
)

// Dispatcher is the contract a device-shadow provider must satisfy: a read
// of live connectivity and a write of desired state. GetShadow returning an
// empty status is not an error; callers fall back to the device state store.
type Dispatcher interface {
	GetShadow(ctx context.Context, deviceID string) (string, error)
	PublishDesiredState(ctx context.Context, deviceID string, desired models.DesiredCommand) error
}

// BusPublisher publishes raw payloads on a broker topic.
type BusPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// ConnectivityReader reads cached connectivity observations.
type ConnectivityReader interface {
	GetConnectionStatus(ctx context.Context, deviceID string) (string, error)
}

// NewDispatcher selects the configured dispatch strategy. Managed mode
// requires SHADOW_API_URL; anything else falls back to broadcasting on the
// shared bus topic.
func NewDispatcher(cfg *config.Config, bus BusPublisher, connCache ConnectivityReader, logger *slog.Logger) Dispatcher {
	if cfg.ShadowMode == config.ShadowModeManaged && cfg.ShadowAPIURL != "" {
		return NewManagedShadowDispatcher(cfg.ShadowAPIURL, cfg.Timeout, logger)
	}
	return NewBroadcastBusDispatcher(cfg.MQTTSharedTopic, bus, connCache, logger)
}
