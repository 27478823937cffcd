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

const productResource = "product"

type ProductRepository struct {
	collection *mongo.Collection
	validator  *validation.Validator
	now        func() time.Time
}

func NewProductRepository(collection *mongo.Collection, v *validation.Validator) *ProductRepository {
	return &ProductRepository{
		collection: collection,
		validator:  v,
		now:        time.Now,
	}
}

// Create valida y guarda un nuevo producto
func (r *ProductRepository) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	if err := r.validator.Struct(in); err != nil {
		return nil, err
	}

	now := timestamp(r.now)
	product := &models.Product{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Size:        in.Size,
		Images:      imagesOrEmpty(in.Images),
		Notes:       in.Notes,
		Featured:    boolOr(in.Featured, false),
		InStock:     boolOr(in.InStock, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return nil, apperrors.Fault("insert product", err)
	}
	return product, nil
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return findOneByID[models.Product](ctx, r.collection, productResource, id)
}

// FindMany lista productos con paginación y filtros
func (r *ProductRepository) FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.Product, int64, error) {
	products, total, err := findPage[models.Product](ctx, r.collection, filter, win)
	if err != nil {
		return nil, 0, apperrors.Fault("list products", err)
	}
	return products, total, nil
}

// Update reemplaza todos los campos editables. Los opcionales ausentes se eliminan.
func (r *ProductRepository) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	if err := r.validator.Struct(in); err != nil {
		return nil, err
	}

	set := bson.M{
		"title":       in.Title,
		"description": in.Description,
		"category":    in.Category,
		"images":      imagesOrEmpty(in.Images),
		"featured":    boolOr(in.Featured, false),
		"inStock":     boolOr(in.InStock, true),
	}
	var unset []string

	if in.Price != nil {
		set["price"] = *in.Price
	} else {
		unset = append(unset, "price")
	}
	if in.Size != "" {
		set["size"] = in.Size
	} else {
		unset = append(unset, "size")
	}
	if in.Notes != "" {
		set["notes"] = in.Notes
	} else {
		unset = append(unset, "notes")
	}

	return updateOneByID[models.Product](ctx, r.collection, productResource, id, set, unset, timestamp(r.now))
}

// Patch actualiza parcialmente un producto
func (r *ProductRepository) Patch(ctx context.Context, id string, p models.ProductPatch) (*models.Product, error) {
	if p.IsEmpty() {
		return nil, apperrors.NewValidationError("body", "no valid fields to update")
	}
	if err := r.validator.Struct(p); err != nil {
		return nil, err
	}

	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Size != nil {
		set["size"] = *p.Size
	}
	if p.Images != nil {
		set["images"] = p.Images
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if p.Featured != nil {
		set["featured"] = *p.Featured
	}
	if p.InStock != nil {
		set["inStock"] = *p.InStock
	}

	return updateOneByID[models.Product](ctx, r.collection, productResource, id, set, nil, timestamp(r.now))
}

// Delete elimina un producto
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return deleteOneByID(ctx, r.collection, productResource, id)
}

func (r *ProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return count(ctx, r.collection, productResource, filter)
}

func imagesOrEmpty(images []models.Image) []models.Image {
	if images == nil {
		return []models.Image{}
	}
	return images
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
