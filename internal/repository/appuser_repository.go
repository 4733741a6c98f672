package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// AppUserRepository encapsulates user persistence.
type AppUserRepository interface {
	List(ctx context.Context) ([]domain.AppUser, error)
	ListByUserType(ctx context.Context, userType domain.UserType) ([]domain.AppUser, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.AppUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AppUser, error)
	Insert(ctx context.Context, user *domain.AppUser) error
	Update(ctx context.Context, id primitive.ObjectID, update domain.AppUserUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type appUserRepository struct {
	c *mongo.Collection
}

// NewAppUserRepository instantiates the repository.
func NewAppUserRepository(db *mongo.Database) AppUserRepository {
	return &appUserRepository{c: db.Collection("AppUser")}
}

// readProjection excludes the credential hash from every read path.
var readProjection = bson.M{"passwordHash": 0}

func (r *appUserRepository) List(ctx context.Context) ([]domain.AppUser, error) {
	return r.find(ctx, bson.M{})
}

func (r *appUserRepository) ListByUserType(ctx context.Context, userType domain.UserType) ([]domain.AppUser, error) {
	return r.find(ctx, bson.M{"userType": userType})
}

func (r *appUserRepository) find(ctx context.Context, filter bson.M) ([]domain.AppUser, error) {
	cur, err := r.c.Find(ctx, filter, options.Find().SetProjection(readProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []domain.AppUser{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *appUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.AppUser, error) {
	var u domain.AppUser
	err := r.c.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(readProjection)).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *appUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AppUser, error) {
	var u domain.AppUser
	err := r.c.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *appUserRepository) Insert(ctx context.Context, user *domain.AppUser) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	_, err := r.c.InsertOne(ctx, user)
	return err
}

func (r *appUserRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.AppUserUpdate) error {
	set := bson.M{}
	if update.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Surname != nil {
		set["surname"] = *update.Surname
	}
	if update.PhoneNumber != nil {
		set["phoneNumber"] = *update.PhoneNumber
	}
	if update.UserType != nil {
		set["userType"] = *update.UserType
	}
	if len(set) == 0 {
		return nil
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

func (r *appUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
