package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
	"furniture-catalog/internal/validation"
)

const userResource = "user"

// UserRepository guarda la copia local de las identidades del proveedor de autenticación.
type UserRepository struct {
	collection *mongo.Collection
	validator  *validation.Validator
	now        func() time.Time
}

func NewUserRepository(collection *mongo.Collection, v *validation.Validator) *UserRepository {
	return &UserRepository{
		collection: collection,
		validator:  v,
		now:        time.Now,
	}
}

func (r *UserRepository) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := r.validator.Struct(in); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	now := timestamp(r.now)
	user := &models.User{
		ID:             primitive.NewObjectID(),
		ExternalAuthID: in.ExternalAuthID,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           role,
		IsActive:       boolOr(in.IsActive, true),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict(userResource, err)
		}
		return nil, apperrors.Fault("insert user", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return findOneByID[models.User](ctx, r.collection, userResource, id)
}

// FindByExternalAuthID busca el usuario vinculado al "sub" del token
func (r *UserRepository) FindByExternalAuthID(ctx context.Context, externalID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"externalAuthId": externalID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(userResource, externalID)
		}
		return nil, apperrors.Fault("find user by external id", err)
	}
	return &user, nil
}

func (r *UserRepository) FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.User, int64, error) {
	users, total, err := findPage[models.User](ctx, r.collection, filter, win)
	if err != nil {
		return nil, 0, apperrors.Fault("list users", err)
	}
	return users, total, nil
}

func (r *UserRepository) Patch(ctx context.Context, id string, p models.UserPatch) (*models.User, error) {
	if p.IsEmpty() {
		return nil, apperrors.NewValidationError("body", "no valid fields to update")
	}
	if err := r.validator.Struct(p); err != nil {
		return nil, err
	}

	set := bson.M{}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.FirstName != nil {
		set["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		set["lastName"] = *p.LastName
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}

	return updateOneByID[models.User](ctx, r.collection, userResource, id, set, nil, timestamp(r.now))
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, userResource, id)
}

func (r *UserRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return count(ctx, r.collection, userResource, filter)
}
