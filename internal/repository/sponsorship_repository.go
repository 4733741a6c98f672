package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// SponsorshipRepository encapsulates sponsorship persistence. Sponsorships are
// created by residents outside this service.
type SponsorshipRepository interface {
	List(ctx context.Context) ([]domain.Sponsorship, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type sponsorshipRepository struct {
	c *mongo.Collection
}

// NewSponsorshipRepository instantiates the repository.
func NewSponsorshipRepository(db *mongo.Database) SponsorshipRepository {
	return &sponsorshipRepository{c: db.Collection("Sponsorship")}
}

func (r *sponsorshipRepository) List(ctx context.Context) ([]domain.Sponsorship, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sponsorships := []domain.Sponsorship{}
	if err := cur.All(ctx, &sponsorships); err != nil {
		return nil, err
	}
	return sponsorships, nil
}

func (r *sponsorshipRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
