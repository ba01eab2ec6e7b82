package repository

import (
	"context"

	"github.com/fathima-sithara/alert-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAlertRepo struct {
	col *mongo.Collection
}

func NewMongoAlertRepo(db *mongo.Database, collection string) AlertRepository {
	return &mongoAlertRepo{col: db.Collection(collection)}
}

func (r *mongoAlertRepo) Create(ctx context.Context, a *models.Alert) (string, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	a.ID = oid
	return oid.Hex(), nil
}

func (r *mongoAlertRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Alert, error) {
	var a models.Alert
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAlertRepo) FindByUserID(ctx context.Context, userID string) ([]models.Alert, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	alerts := make([]models.Alert, 0)
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// UpdateStatus overwrites status unconditionally. Canceling an alert that is
// already canceled (or resolved) succeeds and simply rewrites the field.
func (r *mongoAlertRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AlertStatus) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	return err
}
