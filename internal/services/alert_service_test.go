package services

import (
	"context"
	"testing"

	"github.com/fathima-sithara/alert-service/internal/models"
	"github.com/fathima-sithara/alert-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newAlertFixture() (*fakeUserRepo, *fakeAlertRepo, *AlertService) {
	users := newFakeUserRepo()
	alerts := newFakeAlertRepo()
	return users, alerts, NewAlertService(users, alerts, zap.NewNop().Sugar())
}

func seedUser(users *fakeUserRepo, u models.User) string {
	id, _ := users.Create(context.Background(), &u)
	return id
}

func TestTriggerUsesRequestMessage(t *testing.T) {
	users, _, svc := newAlertFixture()
	id := seedUser(users, models.User{Name: "A", Phone: "555", DefaultMessage: "stored default"})

	alert, err := svc.Trigger(context.Background(), id, "explicit message", nil)
	require.NoError(t, err)
	assert.Equal(t, "explicit message", alert.Message)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Empty(t, alert.ShareURL)
}

func TestTriggerFallsBackToUserDefault(t *testing.T) {
	users, _, svc := newAlertFixture()
	id := seedUser(users, models.User{Name: "A", Phone: "555", DefaultMessage: "stored default"})

	alert, err := svc.Trigger(context.Background(), id, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "stored default", alert.Message)
}

func TestTriggerFallsBackToFixedMessage(t *testing.T) {
	users, _, svc := newAlertFixture()
	// user record with no default_message at all
	id := seedUser(users, models.User{Name: "A", Phone: "555"})

	alert, err := svc.Trigger(context.Background(), id, "", nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSOSMessage, alert.Message)
}

func TestTriggerStoresLocationVerbatim(t *testing.T) {
	users, alerts, svc := newAlertFixture()
	id := seedUser(users, models.User{Name: "A", Phone: "555"})

	acc := 5.5
	loc := &models.Location{Lat: 45.0, Lng: -122.0, Accuracy: &acc}
	created, err := svc.Trigger(context.Background(), id, "msg", loc)
	require.NoError(t, err)

	stored, err := alerts.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Location)
	assert.Equal(t, 45.0, stored.Location.Lat)
	assert.Equal(t, -122.0, stored.Location.Lng)
	require.NotNil(t, stored.Location.Accuracy)
	assert.Equal(t, 5.5, *stored.Location.Accuracy)
}

func TestTriggerUnknownUser(t *testing.T) {
	_, _, svc := newAlertFixture()

	_, err := svc.Trigger(context.Background(), primitive.NewObjectID().Hex(), "", nil)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTriggerMalformedUserID(t *testing.T) {
	_, _, svc := newAlertFixture()

	_, err := svc.Trigger(context.Background(), "nope", "", nil)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestCancelWithPin(t *testing.T) {
	users, alerts, svc := newAlertFixture()
	userID := seedUser(users, models.User{Name: "A", Phone: "555", Pin: "1234"})

	created, err := svc.Trigger(context.Background(), userID, "", nil)
	require.NoError(t, err)

	// wrong pin
	_, err = svc.Cancel(context.Background(), created.ID.Hex(), "0000")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	// omitted pin
	_, err = svc.Cancel(context.Background(), created.ID.Hex(), "")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	stored, _ := alerts.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.AlertStatusActive, stored.Status, "status unchanged after rejected cancellation")

	// correct pin
	canceled, err := svc.Cancel(context.Background(), created.ID.Hex(), "1234")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCanceled, canceled.Status)

	stored, _ = alerts.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.AlertStatusCanceled, stored.Status)
}

func TestCancelWithoutPinConfigured(t *testing.T) {
	users, _, svc := newAlertFixture()
	userID := seedUser(users, models.User{Name: "A", Phone: "555"})

	created, err := svc.Trigger(context.Background(), userID, "", nil)
	require.NoError(t, err)

	// any pin value, or none, is fine when the user has no pin set
	canceled, err := svc.Cancel(context.Background(), created.ID.Hex(), "9999")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCanceled, canceled.Status)
}

// Canceling twice succeeds; the second call rewrites status without looking
// at the current value.
func TestCancelIsUnchecked(t *testing.T) {
	users, _, svc := newAlertFixture()
	userID := seedUser(users, models.User{Name: "A", Phone: "555"})

	created, err := svc.Trigger(context.Background(), userID, "", nil)
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), created.ID.Hex(), "")
	require.NoError(t, err)
	again, err := svc.Cancel(context.Background(), created.ID.Hex(), "")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCanceled, again.Status)
}

func TestCancelMissingAlert(t *testing.T) {
	_, _, svc := newAlertFixture()

	_, err := svc.Cancel(context.Background(), primitive.NewObjectID().Hex(), "")
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}

func TestCancelMalformedID(t *testing.T) {
	_, _, svc := newAlertFixture()

	_, err := svc.Cancel(context.Background(), "xyz", "")
	assert.ErrorIs(t, err, ErrInvalidID)
}

// An alert whose owner record has vanished cancels like a no-pin user.
func TestCancelOrphanedAlert(t *testing.T) {
	_, alerts, svc := newAlertFixture()

	orphan := &models.Alert{UserID: primitive.NewObjectID().Hex(), Message: "m", Status: models.AlertStatusActive}
	id, err := alerts.Create(context.Background(), orphan)
	require.NoError(t, err)

	canceled, err := svc.Cancel(context.Background(), id, "")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCanceled, canceled.Status)
}

func TestListAlerts(t *testing.T) {
	users, alerts, svc := newAlertFixture()
	userID := seedUser(users, models.User{Name: "A", Phone: "555"})
	otherID := seedUser(users, models.User{Name: "B", Phone: "666"})

	_, err := svc.Trigger(context.Background(), userID, "one", nil)
	require.NoError(t, err)
	_, err = svc.Trigger(context.Background(), userID, "two", nil)
	require.NoError(t, err)
	_, err = svc.Trigger(context.Background(), otherID, "other", nil)
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	_, err = svc.List(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, 1, alerts.finds, "malformed id never reaches the store")
}
