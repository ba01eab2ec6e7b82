package repository

import (
	"context"
	"errors"

	"github.com/fathima-sithara/alert-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrAlertNotFound = errors.New("alert not found")
)

// UserRepository exposes the typed finders the handlers need. Cross-entity
// references stay loose: contacts and alerts store the owner id as a plain
// hex string with no existence check.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) (string, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Contact, error)
}

type AlertRepository interface {
	Create(ctx context.Context, a *models.Alert) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Alert, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Alert, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AlertStatus) error
}
