package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// NotificationRepository encapsulates notification persistence.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.AppNotification, error)
	InsertMany(ctx context.Context, notifications []domain.AppNotification) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type notificationRepository struct {
	c *mongo.Collection
}

// NewNotificationRepository instantiates the repository.
func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{c: db.Collection("AppNotification")}
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.AppNotification, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notifications := []domain.AppNotification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// InsertMany writes the whole fan-out batch in one call.
func (r *notificationRepository) InsertMany(ctx context.Context, notifications []domain.AppNotification) error {
	docs := make([]any, 0, len(notifications))
	for i := range notifications {
		if notifications[i].ID.IsZero() {
			notifications[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, notifications[i])
	}
	_, err := r.c.InsertMany(ctx, docs)
	return err
}

func (r *notificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
