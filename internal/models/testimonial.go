package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRating = 1
	MaxRating = 5
)

// TestimonialImage es la foto opcional del cliente; url y alt son independientes.
type TestimonialImage struct {
	URL string `json:"url,omitempty" bson:"url,omitempty"`
	Alt string `json:"alt,omitempty" bson:"alt,omitempty"`
}

// Testimonial es la reseña de un cliente.
type Testimonial struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Review       string             `json:"review" bson:"review"`
	Rating       int                `json:"rating" bson:"rating"`
	Image        *TestimonialImage  `json:"image,omitempty" bson:"image,omitempty"`
	Featured     bool               `json:"featured" bson:"featured"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type TestimonialInput struct {
	CustomerName string            `json:"customerName" validate:"required,max=50"`
	Review       string            `json:"review" validate:"required,max=300"`
	Rating       int               `json:"rating" validate:"required,min=1,max=5"`
	Image        *TestimonialImage `json:"image"`
	Featured     *bool             `json:"featured"`
}

// TestimonialPatch se aplica campo a campo; nil significa "sin cambios".
type TestimonialPatch struct {
	CustomerName *string           `json:"customerName" validate:"omitnil,min=1,max=50"`
	Review       *string           `json:"review" validate:"omitnil,min=1,max=300"`
	Rating       *int              `json:"rating" validate:"omitnil,min=1,max=5"`
	Image        *TestimonialImage `json:"image"`
	Featured     *bool             `json:"featured"`
}

func (p TestimonialPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.Review == nil && p.Rating == nil &&
		p.Image == nil && p.Featured == nil
}
