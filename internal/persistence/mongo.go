package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/spec-kit/verve-admin/internal/config"
)

// Mongo wraps access to the remote document database.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongo establishes a client when a URI is provided.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	if cfg.URI == "" {
		logger.Warn("MONGO_URI not provided; skipping database connection")
		return &Mongo{}, nil
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{client: client, database: client.Database(cfg.Database)}, nil
}

// Close releases client resources.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.client != nil {
		_ = m.client.Disconnect(ctx)
	}
}

// Database returns the underlying database handle.
func (m *Mongo) Database() *mongo.Database {
	if m == nil {
		return nil
	}
	return m.database
}

// Ping verifies database connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.client == nil {
		return mongo.ErrClientDisconnected
	}
	return m.client.Ping(ctx, readpref.Primary())
}
