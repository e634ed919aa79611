package telemetry

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"
)

// AlertSink receives alert messages that resolved to a reporting device.
type AlertSink interface {
	HandleAlert(ctx context.Context, deviceID, alertType string, val *float64) error
}

// ConnectivityCache records live connectivity observations for the shadow
// fallback path.
type ConnectivityCache interface {
	SaveConnectionStatus(ctx context.Context, deviceID, status string) error
}

// Router consumes inbound broker messages and classifies each as an alert
// or a sensor reading. Readings upsert the device record and append a
// history entry; alerts hand off to the notification pipeline. Messages are
// best-effort: anything unattributable or unpersistable is dropped and
// logged, never escalated back to the broker.
type Router struct {
	inbound   <-chan models.InboundMessage
	devices   interfaces.DeviceRepositoryInterface
	history   interfaces.HistoryRepositoryInterface
	alerts    AlertSink
	connCache ConnectivityCache
	timeout   time.Duration
	logger    *slog.Logger
}

// NewRouter creates a router reading from the given inbound channel.
func NewRouter(
	inbound <-chan models.InboundMessage,
	devices interfaces.DeviceRepositoryInterface,
	history interfaces.HistoryRepositoryInterface,
	alerts AlertSink,
	connCache ConnectivityCache,
	timeout time.Duration,
	logger *slog.Logger,
) *Router {
	return &Router{
		inbound:   inbound,
		devices:   devices,
		history:   history,
		alerts:    alerts,
		connCache: connCache,
		timeout:   timeout,
		logger:    logger.With("component", "telemetry_router"),
	}
}

// Run consumes messages until the context is cancelled or the channel
// closes. Each message is handled in its own goroutine; readings are
// idempotent upserts, so no per-device ordering is required.
func (r *Router) Run(ctx context.Context) {
	r.logger.Info("Telemetry router started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Telemetry router stopped")
			return
		case msg, ok := <-r.inbound:
			if !ok {
				r.logger.Info("Inbound channel closed, telemetry router stopped")
				return
			}
			go r.Handle(ctx, msg)
		}
	}
}

// Handle processes a single broker message.
func (r *Router) Handle(ctx context.Context, msg models.InboundMessage) {
	var telemetry models.TelemetryMessage
	if err := json.Unmarshal(msg.Payload, &telemetry); err != nil {
		r.logger.Warn("Dropping malformed payload", "topic", msg.Topic, slog.Any("error", err))
		return
	}

	deviceID := telemetry.DeviceKey()
	if deviceID == "" {
		r.logger.Warn("Dropping message without mac or deviceId", "topic", msg.Topic)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if telemetry.IsAlert() {
		r.handleAlert(ctx, deviceID, &telemetry)
		return
	}
	r.handleReading(ctx, deviceID, &telemetry)
}

func (r *Router) handleReading(ctx context.Context, deviceID string, telemetry *models.TelemetryMessage) {
	logger := r.logger.With("deviceId", deviceID)
	now := time.Now()
	reading := telemetry.Reading()

	if err := r.devices.UpsertReading(deviceID, reading, now); err != nil {
		logger.Error("Failed to upsert device state, reading lost", slog.Any("error", err))
		return
	}

	entry := &models.HistoryEntry{
		DeviceID:  deviceID,
		Sh:        reading.Sh,
		T:         reading.T,
		Lx:        reading.Lx,
		Bp:        reading.Bp,
		Timestamp: now,
	}
	if err := r.history.Append(entry); err != nil {
		logger.Error("Failed to append history entry", slog.Any("error", err))
		return
	}

	if r.connCache != nil {
		if err := r.connCache.SaveConnectionStatus(ctx, deviceID, models.ConnectivityConnected); err != nil {
			logger.Error("Failed to cache connectivity status", slog.Any("error", err))
		}
	}
}

func (r *Router) handleAlert(ctx context.Context, deviceID string, telemetry *models.TelemetryMessage) {
	logger := r.logger.With("deviceId", deviceID, "alertType", telemetry.AlertType)
	if err := r.alerts.HandleAlert(ctx, deviceID, telemetry.AlertType, telemetry.Val); err != nil {
		logger.Error("Failed to process alert", slog.Any("error", err))
	}
}
