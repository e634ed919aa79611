package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"senso-backend/models"
	"senso-backend/push"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDeviceRepo struct {
	devices map[string]*models.Device

	upsertCalls int
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: make(map[string]*models.Device)}
}

func (f *fakeDeviceRepo) UpsertReading(deviceID string, reading models.Reading, seenAt time.Time) error {
	f.upsertCalls++
	device, ok := f.devices[deviceID]
	if !ok {
		device = &models.Device{DeviceID: deviceID, Name: models.DefaultDeviceName}
		f.devices[deviceID] = device
	}
	device.IsOnline = true
	device.LastSeen = &seenAt
	device.LastData = reading
	return nil
}

func (f *fakeDeviceRepo) FindByDeviceID(deviceID string) (*models.Device, error) {
	device, ok := f.devices[deviceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return device, nil
}

func (f *fakeDeviceRepo) FindOrCreate(deviceID string) (*models.Device, error) {
	device, ok := f.devices[deviceID]
	if !ok {
		device = &models.Device{DeviceID: deviceID, Name: models.DefaultDeviceName}
		f.devices[deviceID] = device
	}
	return device, nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id, userID uint) error { return nil }
func (f *fakeNotificationRepo) Delete(id, userID uint) error   { return nil }

func floatPtr(v float64) *float64 { return &v }

func TestFormatAlertMessage(t *testing.T) {
	t.Run("wire value is unscaled for display", func(t *testing.T) {
		msg := FormatAlertMessage("Basil", "low_humidity", floatPtr(455))
		assert.Equal(t, "Alert for Basil: low_humidity. Value: 45.5", msg)
	})

	t.Run("whole values render without decimals", func(t *testing.T) {
		msg := FormatAlertMessage("Basil", "low_humidity", floatPtr(450))
		assert.Equal(t, "Alert for Basil: low_humidity. Value: 45", msg)
	})

	t.Run("missing value renders N/A", func(t *testing.T) {
		msg := FormatAlertMessage("Basil", "low_battery", nil)
		assert.Equal(t, "Alert for Basil: low_battery. Value: N/A", msg)
	})
}

func newAlertFixture(t *testing.T, pushHandler http.HandlerFunc) (*AlertService, *fakeDeviceRepo, *fakeUserRepo, *fakeNotificationRepo) {
	t.Helper()
	server := httptest.NewServer(pushHandler)
	t.Cleanup(server.Close)

	devices := newFakeDeviceRepo()
	users := &fakeUserRepo{users: make(map[uint]*models.User)}
	notifications := &fakeNotificationRepo{}
	pusher := push.NewExpoClient(server.URL, time.Second, testLogger())
	return NewAlertService(devices, users, notifications, pusher, testLogger()), devices, users, notifications
}

func TestHandleAlertPersistsAndPushes(t *testing.T) {
	pushed := 0
	as, devices, users, notifications := newAlertFixture(t, func(w http.ResponseWriter, r *http.Request) {
		pushed++
		w.WriteHeader(http.StatusOK)
	})

	devices.devices["AABBCC"] = &models.Device{DeviceID: "AABBCC", Name: "Basil", UserID: 7}
	users.users[7] = &models.User{ID: 7, PushToken: "ExponentPushToken[xxx]"}

	err := as.HandleAlert(context.Background(), "AABBCC", "low_humidity", floatPtr(120))
	require.NoError(t, err)

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.Equal(t, uint(7), n.UserID)
	assert.Equal(t, models.NotificationTypeAlert, n.Type)
	assert.Equal(t, "Plant Alert", n.Title)
	assert.Contains(t, n.Message, "low_humidity")
	assert.Contains(t, n.Message, "12")
	assert.Equal(t, "AABBCC", n.Metadata["deviceId"])
	assert.Equal(t, 1, pushed)
}

func TestHandleAlertUnknownDeviceDropped(t *testing.T) {
	as, _, _, notifications := newAlertFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("push should not be attempted")
	})

	err := as.HandleAlert(context.Background(), "UNKNOWN", "low_humidity", floatPtr(120))
	assert.NoError(t, err)
	assert.Empty(t, notifications.created)
}

func TestHandleAlertNoPushTokenStillPersists(t *testing.T) {
	as, devices, users, notifications := newAlertFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("push should not be attempted")
	})

	devices.devices["AABBCC"] = &models.Device{DeviceID: "AABBCC", Name: "Basil", UserID: 7}
	users.users[7] = &models.User{ID: 7}

	err := as.HandleAlert(context.Background(), "AABBCC", "low_humidity", nil)
	require.NoError(t, err)
	assert.Len(t, notifications.created, 1)
}

func TestHandleAlertPushFailureDoesNotFail(t *testing.T) {
	as, devices, users, notifications := newAlertFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	devices.devices["AABBCC"] = &models.Device{DeviceID: "AABBCC", Name: "Basil", UserID: 7}
	users.users[7] = &models.User{ID: 7, PushToken: "ExponentPushToken[xxx]"}

	err := as.HandleAlert(context.Background(), "AABBCC", "low_humidity", floatPtr(120))
	assert.NoError(t, err)
	assert.Len(t, notifications.created, 1)
}
