package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// AccessRequestRepository encapsulates access-request persistence. Requests
// are created by candidates outside this service.
type AccessRequestRepository interface {
	List(ctx context.Context) ([]domain.AccessRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type accessRequestRepository struct {
	c *mongo.Collection
}

// NewAccessRequestRepository instantiates the repository.
func NewAccessRequestRepository(db *mongo.Database) AccessRequestRepository {
	return &accessRequestRepository{c: db.Collection("AccessRequest")}
}

func (r *accessRequestRepository) List(ctx context.Context) ([]domain.AccessRequest, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []domain.AccessRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *accessRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *accessRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
