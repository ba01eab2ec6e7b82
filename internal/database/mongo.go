package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectMongo builds the client and pings it once. A failed ping is returned
// to the caller but the handles are still usable: the server keeps running and
// store operations surface their own errors per request.
func ConnectMongo(uri, dbName string, logger *zap.SugaredLogger) (*mongo.Database, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("MongoDB connection failed: %v", err)
		return nil, nil, err
	}

	db := client.Database(dbName)

	if err := client.Ping(ctx, nil); err != nil {
		logger.Warnf("MongoDB ping failed: %v", err)
		return db, client, err
	}

	logger.Info("MongoDB connected successfully")
	return db, client, nil
}
