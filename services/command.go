package services

import (
	"context"
	"fmt"
	"log/slog"

	"senso-backend/models"
	"senso-backend/shadow"
	"senso-backend/utils"
)

// CommandService encodes operator intent into the desired-state wire format
// and hands it to the shadow dispatcher. Dispatch errors propagate to the
// caller; there is no internal retry.
type CommandService struct {
	dispatcher shadow.Dispatcher
	logger     *slog.Logger
}

// NewCommandService creates a new instance of CommandService.
func NewCommandService(dispatcher shadow.Dispatcher, logger *slog.Logger) *CommandService {
	return &CommandService{
		dispatcher: dispatcher,
		logger:     logger.With("component", "command_service"),
	}
}

// SendSceneCommand activates a predefined scene on a device. Returns the
// command id for the caller's response.
func (cs *CommandService) SendSceneCommand(ctx context.Context, deviceID, sceneID string) (string, error) {
	desired := models.DesiredCommand{
		CmdID:   utils.GenerateCommandID(),
		SceneID: sceneID,
	}
	if err := cs.dispatcher.PublishDesiredState(ctx, deviceID, desired); err != nil {
		return "", fmt.Errorf("failed to dispatch scene command: %w", err)
	}
	cs.logger.Info("Scene command dispatched", "deviceId", deviceID, "cmdId", desired.CmdID, "sceneId", sceneID)
	return desired.CmdID, nil
}

// SendThresholdCommand dispatches care thresholds. Input values are
// real-world units; every key is scaled x10 before transmission, a contract
// the device firmware depends on.
func (cs *CommandService) SendThresholdCommand(ctx context.Context, deviceID string, thresholds map[string]float64) (string, error) {
	desired := models.DesiredCommand{
		CmdID:      utils.GenerateCommandID(),
		Thresholds: ScaleThresholds(thresholds),
	}
	if err := cs.dispatcher.PublishDesiredState(ctx, deviceID, desired); err != nil {
		return "", fmt.Errorf("failed to dispatch threshold command: %w", err)
	}
	cs.logger.Info("Threshold command dispatched", "deviceId", deviceID, "cmdId", desired.CmdID)
	return desired.CmdID, nil
}

// ScaleThresholds returns a new map with every value multiplied by 10,
// uniformly and with no keys added or dropped.
func ScaleThresholds(thresholds map[string]float64) map[string]float64 {
	scaled := make(map[string]float64, len(thresholds))
	for key, value := range thresholds {
		scaled[key] = value * 10
	}
	return scaled
}
