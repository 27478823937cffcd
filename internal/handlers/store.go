package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
)

type ProductStore interface {
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.Product, int64, error)
	Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	Patch(ctx context.Context, id string, p models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type TestimonialStore interface {
	Create(ctx context.Context, in models.TestimonialInput) (*models.Testimonial, error)
	FindByID(ctx context.Context, id string) (*models.Testimonial, error)
	FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.Testimonial, int64, error)
	Patch(ctx context.Context, id string, p models.TestimonialPatch) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.User, int64, error)
	Patch(ctx context.Context, id string, p models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Counter cuenta documentos de una colección; lo usa el resumen del panel.
type Counter interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
}
