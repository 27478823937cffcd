package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
	"furniture-catalog/internal/validation"
)

const testimonialResource = "testimonial"

type TestimonialRepository struct {
	collection *mongo.Collection
	validator  *validation.Validator
	now        func() time.Time
}

func NewTestimonialRepository(collection *mongo.Collection, v *validation.Validator) *TestimonialRepository {
	return &TestimonialRepository{
		collection: collection,
		validator:  v,
		now:        time.Now,
	}
}

// Create valida y guarda una reseña
func (r *TestimonialRepository) Create(ctx context.Context, in models.TestimonialInput) (*models.Testimonial, error) {
	if err := r.validator.Struct(in); err != nil {
		return nil, err
	}

	now := timestamp(r.now)
	testimonial := &models.Testimonial{
		ID:           primitive.NewObjectID(),
		CustomerName: in.CustomerName,
		Review:       in.Review,
		Rating:       in.Rating,
		Image:        in.Image,
		Featured:     boolOr(in.Featured, false),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, testimonial); err != nil {
		return nil, apperrors.Fault("insert testimonial", err)
	}
	return testimonial, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	return findOneByID[models.Testimonial](ctx, r.collection, testimonialResource, id)
}

// FindMany lista reseñas, las más recientes primero
func (r *TestimonialRepository) FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.Testimonial, int64, error) {
	testimonials, total, err := findPage[models.Testimonial](ctx, r.collection, filter, win)
	if err != nil {
		return nil, 0, apperrors.Fault("list testimonials", err)
	}
	return testimonials, total, nil
}

// Patch actualiza solo los campos presentes
func (r *TestimonialRepository) Patch(ctx context.Context, id string, p models.TestimonialPatch) (*models.Testimonial, error) {
	if p.IsEmpty() {
		return nil, apperrors.NewValidationError("body", "no valid fields to update")
	}
	if err := r.validator.Struct(p); err != nil {
		return nil, err
	}

	set := bson.M{}
	if p.CustomerName != nil {
		set["customerName"] = *p.CustomerName
	}
	if p.Review != nil {
		set["review"] = *p.Review
	}
	if p.Rating != nil {
		set["rating"] = *p.Rating
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Featured != nil {
		set["featured"] = *p.Featured
	}

	return updateOneByID[models.Testimonial](ctx, r.collection, testimonialResource, id, set, nil, timestamp(r.now))
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, testimonialResource, id)
}

func (r *TestimonialRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return count(ctx, r.collection, testimonialResource, filter)
}
