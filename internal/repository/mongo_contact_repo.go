package repository

import (
	"context"

	"github.com/fathima-sithara/alert-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoContactRepo struct {
	col *mongo.Collection
}

func NewMongoContactRepo(db *mongo.Database, collection string) ContactRepository {
	return &mongoContactRepo{col: db.Collection(collection)}
}

func (r *mongoContactRepo) Create(ctx context.Context, c *models.Contact) (string, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	c.ID = oid
	return oid.Hex(), nil
}

func (r *mongoContactRepo) FindByUserID(ctx context.Context, userID string) ([]models.Contact, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	contacts := make([]models.Contact, 0)
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
