package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the collection indexes the service queries against.
// Safe to run on every startup; CreateMany is a no-op for existing indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if db == nil {
		logger.Warn("no database handle; skipping index bootstrap")
		return nil
	}

	specs := map[string][]mongo.IndexModel{
		"AppUser": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userType", Value: 1}}},
		},
		"Reclamation": {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "syndicId", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		"AppNotification": {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		"Sponsorship": {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		"AccessRequest": {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
		logger.Debug("ensured indexes", zap.String("collection", collection), zap.Int("count", len(models)))
	}

	logger.Info("index bootstrap complete")
	return nil
}
