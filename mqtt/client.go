package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"senso-backend/config"
	"senso-backend/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

const inboundBufferSize = 256

// Client wraps the PAHO MQTT client. It holds one long-lived connection to
// the broker, subscribed to the shared telemetry topic, and hands every
// inbound message to the router through a buffered channel so broker I/O
// never blocks on processing.
type Client struct {
	client  mqtt.Client
	topic   string
	timeout time.Duration
	inbound chan models.InboundMessage
	logger  *slog.Logger
}

// NewClient creates and connects a new MQTT client. Reconnects are handled
// by the PAHO auto-reconnect loop, backing off exponentially up to the
// configured maximum; the shared topic is re-subscribed on every connect.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	c := &Client{
		topic:   cfg.MQTTSharedTopic,
		timeout: cfg.Timeout,
		inbound: make(chan models.InboundMessage, inboundBufferSize),
		logger:  logger.With("component", "mqtt_client"),
	}

	clientID := fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.NewString()[:8])
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(clientID).
		SetUsername(cfg.MQTTUsername).
		SetPassword(cfg.MQTTPassword).
		SetKeepAlive(60 * time.Second).
		SetPingTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(60 * time.Second).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetCleanSession(true)

	opts.SetOnConnectHandler(c.onConnect)
	opts.SetConnectionLostHandler(c.onConnectionLost)

	c.client = mqtt.NewClient(opts)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return c, nil
}

// Inbound returns the channel the telemetry router consumes from.
func (c *Client) Inbound() <-chan models.InboundMessage {
	return c.inbound
}

// Publish sends a payload on a topic and waits for the broker ack, bounded
// by the configured timeout. Failures surface to the caller so command
// dispatch errors are never silently swallowed.
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	if !c.client.IsConnected() {
		return fmt.Errorf("MQTT client is not connected")
	}

	token := c.client.Publish(topic, 1, false, payload)

	select {
	case <-ctx.Done():
		return fmt.Errorf("MQTT publish cancelled by context: %w", ctx.Err())
	case <-time.After(c.timeout):
		return fmt.Errorf("MQTT publish timed out after %v", c.timeout)
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("MQTT publish failed: %w", err)
		}
		return nil
	}
}

// Disconnect gracefully disconnects the client.
func (c *Client) Disconnect() {
	if c.client.IsConnected() {
		c.client.Unsubscribe(c.topic)
		c.client.Disconnect(250)
		c.logger.Info("MQTT client disconnected")
	}
}

func (c *Client) onConnect(client mqtt.Client) {
	c.logger.Info("Connected to MQTT broker, subscribing to shared topic", "topic", c.topic)
	if token := client.Subscribe(c.topic, 1, c.handleMessage); token.Wait() && token.Error() != nil {
		c.logger.Error("Failed to subscribe to shared topic", "topic", c.topic, slog.Any("error", token.Error()))
	} else {
		c.logger.Info("Successfully subscribed to shared topic", "topic", c.topic)
	}
}

func (c *Client) onConnectionLost(client mqtt.Client, err error) {
	c.logger.Error("Connection lost. Reconnecting...", slog.Any("error", err))
}

// handleMessage enqueues an inbound message without blocking the PAHO
// callback. When the router falls behind and the buffer is full, the
// message is dropped and logged; telemetry is best-effort.
func (c *Client) handleMessage(client mqtt.Client, msg mqtt.Message) {
	m := models.InboundMessage{
		Topic:   msg.Topic(),
		Payload: msg.Payload(),
	}
	select {
	case c.inbound <- m:
	default:
		c.logger.Warn("Inbound buffer full, dropping message", "topic", msg.Topic())
	}
}
