package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// ReclamationRepository encapsulates réclamation persistence. Réclamations are
// created by residents outside this service, so there is no Insert.
type ReclamationRepository interface {
	List(ctx context.Context) ([]domain.Reclamation, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reclamation, error)
	UpdateTreatment(ctx context.Context, id primitive.ObjectID, treatment domain.ReclamationTreatment) error
	AssignSyndic(ctx context.Context, id, syndicID primitive.ObjectID) error
}

type reclamationRepository struct {
	c *mongo.Collection
}

// NewReclamationRepository instantiates the repository.
func NewReclamationRepository(db *mongo.Database) ReclamationRepository {
	return &reclamationRepository{c: db.Collection("Reclamation")}
}

func (r *reclamationRepository) List(ctx context.Context) ([]domain.Reclamation, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recs := []domain.Reclamation{}
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *reclamationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reclamation, error) {
	var rec domain.Reclamation
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *reclamationRepository) UpdateTreatment(ctx context.Context, id primitive.ObjectID, treatment domain.ReclamationTreatment) error {
	set := bson.M{
		"syndicComment":     treatment.SyndicComment,
		"imageConfirmedUrl": treatment.ImageConfirmedURL,
		"status":            treatment.Status,
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *reclamationRepository) AssignSyndic(ctx context.Context, id, syndicID primitive.ObjectID) error {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"syndicId": syndicID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
