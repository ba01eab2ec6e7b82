package services

import (
	"context"
	"errors"

	"github.com/fathima-sithara/alert-service/internal/metrics"
	"github.com/fathima-sithara/alert-service/internal/models"
	"github.com/fathima-sithara/alert-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AlertService struct {
	users  repository.UserRepository
	alerts repository.AlertRepository
	logger *zap.SugaredLogger
}

func NewAlertService(users repository.UserRepository, alerts repository.AlertRepository, logger *zap.SugaredLogger) *AlertService {
	return &AlertService{users: users, alerts: alerts, logger: logger}
}

// Trigger creates an active alert for the user. Message precedence: request
// message, then the user's stored default_message, then the fixed SOS
// fallback. share_url stays unset.
func (s *AlertService) Trigger(ctx context.Context, userID, message string, location *models.Location) (*models.Alert, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if message == "" {
		message = user.DefaultMessage
	}
	if message == "" {
		message = models.DefaultSOSMessage
	}

	alert := &models.Alert{
		UserID:   userID,
		Message:  message,
		Location: location,
		Status:   models.AlertStatusActive,
	}
	if _, err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	metrics.AlertsTriggered.Inc()
	s.logger.Infow("alert triggered", "alert_id", alert.ID.Hex(), "user_id", userID)
	return alert, nil
}

// Cancel flips the alert status to canceled. If the owning user has a PIN
// set, the supplied pin must match exactly. The current status is not
// checked first: canceling an already-canceled alert succeeds and rewrites
// the field.
func (s *AlertService) Cancel(ctx context.Context, alertID, pin string) (*models.Alert, error) {
	oid, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		return nil, ErrInvalidID
	}

	alert, err := s.alerts.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	// A missing or malformed owner reference behaves like a user with no
	// PIN: cancellation is allowed unconditionally.
	var user *models.User
	if userOID, err := primitive.ObjectIDFromHex(alert.UserID); err == nil {
		user, err = s.users.FindByID(ctx, userOID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	if user != nil && user.Pin != "" {
		if pin != user.Pin {
			return nil, ErrInvalidPIN
		}
	}

	if err := s.alerts.UpdateStatus(ctx, oid, models.AlertStatusCanceled); err != nil {
		return nil, err
	}
	alert.Status = models.AlertStatusCanceled

	metrics.AlertsCanceled.Inc()
	s.logger.Infow("alert canceled", "alert_id", alertID, "user_id", alert.UserID)
	return alert, nil
}

// List returns every alert stored against the user id, no status filter and
// no ordering guarantee. Format check only, same as Contacts.
func (s *AlertService) List(ctx context.Context, userID string) ([]models.Alert, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, ErrInvalidID
	}
	return s.alerts.FindByUserID(ctx, userID)
}
