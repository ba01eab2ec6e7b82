package services

import (
	"context"
	"errors"

	"github.com/fathima-sithara/alert-service/internal/models"
	"github.com/fathima-sithara/alert-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("server selection timeout")

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) (string, error) {
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = *u
	return u.ID.Hex(), nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id.Hex()]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

type fakeContactRepo struct {
	contacts  []models.Contact
	failAfter int // fail the insert at this index, -1 to disable
	finds     int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{failAfter: -1}
}

func (f *fakeContactRepo) Create(_ context.Context, c *models.Contact) (string, error) {
	if f.failAfter >= 0 && len(f.contacts) == f.failAfter {
		return "", errStoreDown
	}
	c.ID = primitive.NewObjectID()
	f.contacts = append(f.contacts, *c)
	return c.ID.Hex(), nil
}

func (f *fakeContactRepo) FindByUserID(_ context.Context, userID string) ([]models.Contact, error) {
	f.finds++
	out := make([]models.Contact, 0)
	for _, c := range f.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts map[string]models.Alert
	finds  int
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]models.Alert)}
}

func (f *fakeAlertRepo) Create(_ context.Context, a *models.Alert) (string, error) {
	a.ID = primitive.NewObjectID()
	f.alerts[a.ID.Hex()] = *a
	return a.ID.Hex(), nil
}

func (f *fakeAlertRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Alert, error) {
	a, ok := f.alerts[id.Hex()]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}
	return &a, nil
}

func (f *fakeAlertRepo) FindByUserID(_ context.Context, userID string) ([]models.Alert, error) {
	f.finds++
	out := make([]models.Alert, 0)
	for _, a := range f.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.AlertStatus) error {
	a, ok := f.alerts[id.Hex()]
	if !ok {
		return nil // unchecked overwrite semantics, no matched-count check
	}
	a.Status = status
	f.alerts[id.Hex()] = a
	return nil
}
