package services

import (
	"context"

	"github.com/fathima-sithara/alert-service/internal/models"
	"github.com/fathima-sithara/alert-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService struct {
	users    repository.UserRepository
	contacts repository.ContactRepository
	logger   *zap.SugaredLogger
}

func NewUserService(users repository.UserRepository, contacts repository.ContactRepository, logger *zap.SugaredLogger) *UserService {
	return &UserService{users: users, contacts: contacts, logger: logger}
}

// Register persists the user, then each contact with the new user id
// injected. There is no transaction: if a contact insert fails the user (and
// any earlier contacts) stay persisted and the error is surfaced as-is.
func (s *UserService) Register(ctx context.Context, user *models.User, contacts []models.Contact) (string, error) {
	if user.DefaultMessage == "" {
		user.DefaultMessage = models.DefaultSOSMessage
	}

	userID, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	for i := range contacts {
		contacts[i].UserID = userID
		if _, err := s.contacts.Create(ctx, &contacts[i]); err != nil {
			s.logger.Errorw("contact insert failed after user creation", "user_id", userID, "error", err)
			return "", err
		}
	}

	return userID, nil
}

// Contacts lists contacts stored against the given user id. The id is only
// checked for ObjectID syntax; a well-formed id for a nonexistent user
// returns an empty list, not an error.
func (s *UserService) Contacts(ctx context.Context, userID string) ([]models.Contact, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, ErrInvalidID
	}
	return s.contacts.FindByUserID(ctx, userID)
}
