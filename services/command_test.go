package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"senso-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	shadowStatus string
	shadowErr    error
	publishErr   error

	publishedDeviceID string
	publishedDesired  models.DesiredCommand
	publishCalls      int
}

func (f *fakeDispatcher) GetShadow(ctx context.Context, deviceID string) (string, error) {
	return f.shadowStatus, f.shadowErr
}

func (f *fakeDispatcher) PublishDesiredState(ctx context.Context, deviceID string, desired models.DesiredCommand) error {
	f.publishCalls++
	f.publishedDeviceID = deviceID
	f.publishedDesired = desired
	return f.publishErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScaleThresholds(t *testing.T) {
	t.Run("every key scaled x10, none added or dropped", func(t *testing.T) {
		input := map[string]float64{
			"sh_min": 20,
			"sh_max": 70,
			"t_min":  5.5,
		}
		scaled := ScaleThresholds(input)

		assert.Len(t, scaled, len(input))
		assert.Equal(t, 200.0, scaled["sh_min"])
		assert.Equal(t, 700.0, scaled["sh_max"])
		assert.Equal(t, 55.0, scaled["t_min"])
	})

	t.Run("input map is not mutated", func(t *testing.T) {
		input := map[string]float64{"sh_min": 20}
		ScaleThresholds(input)
		assert.Equal(t, 20.0, input["sh_min"])
	})

	t.Run("empty map stays empty", func(t *testing.T) {
		assert.Empty(t, ScaleThresholds(map[string]float64{}))
	})
}

func TestSendThresholdCommand(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	cs := NewCommandService(dispatcher, testLogger())

	cmdID, err := cs.SendThresholdCommand(context.Background(), "AABBCC", map[string]float64{"sh_min": 20, "sh_max": 70})
	require.NoError(t, err)

	assert.Equal(t, "AABBCC", dispatcher.publishedDeviceID)
	assert.Equal(t, map[string]float64{"sh_min": 200, "sh_max": 700}, dispatcher.publishedDesired.Thresholds)
	assert.Empty(t, dispatcher.publishedDesired.SceneID)
	assert.True(t, strings.HasPrefix(cmdID, "cmd-"))
	assert.Equal(t, cmdID, dispatcher.publishedDesired.CmdID)
}

func TestSendSceneCommand(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	cs := NewCommandService(dispatcher, testLogger())

	cmdID, err := cs.SendSceneCommand(context.Background(), "AABBCC", "night-mode")
	require.NoError(t, err)

	assert.Equal(t, "night-mode", dispatcher.publishedDesired.SceneID)
	assert.Nil(t, dispatcher.publishedDesired.Thresholds)
	assert.True(t, strings.HasPrefix(cmdID, "cmd-"))
}

func TestSendCommandDispatchErrorPropagates(t *testing.T) {
	dispatcher := &fakeDispatcher{publishErr: errors.New("broker unreachable")}
	cs := NewCommandService(dispatcher, testLogger())

	_, err := cs.SendSceneCommand(context.Background(), "AABBCC", "day-mode")
	assert.Error(t, err)

	_, err = cs.SendThresholdCommand(context.Background(), "AABBCC", map[string]float64{"sh_min": 20})
	assert.Error(t, err)
	assert.Equal(t, 2, dispatcher.publishCalls)
}
