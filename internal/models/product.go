package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories es el conjunto cerrado de categorías de producto.
var Categories = []string{
	"Chairs",
	"Tables",
	"Beds",
	"Cabinets",
	"Sofas",
	"Dining Sets",
	"Office Furniture",
	"Custom Pieces",
	"Other",
}

// IsCategory indica si c pertenece a Categories.
func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Image es una imagen alojada en el servidor de assets. URL y Alt van siempre juntos.
type Image struct {
	URL string `json:"url" bson:"url" validate:"required"`
	Alt string `json:"alt" bson:"alt" validate:"required"`
}

// Product representa un mueble del catálogo
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Price       *float64           `json:"price,omitempty" bson:"price,omitempty"`
	Size        string             `json:"size,omitempty" bson:"size,omitempty"`
	Images      []Image            `json:"images" bson:"images"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Featured    bool               `json:"featured" bson:"featured"`
	InStock     bool               `json:"inStock" bson:"inStock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput es el cuerpo de creación y de reemplazo completo (PUT).
type ProductInput struct {
	Title       string   `json:"title" validate:"required,max=60"`
	Description string   `json:"description" validate:"required,max=500"`
	Category    string   `json:"category" validate:"required,category"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Size        string   `json:"size"`
	Images      []Image  `json:"images" validate:"dive"`
	Notes       string   `json:"notes" validate:"max=200"`
	Featured    *bool    `json:"featured"`
	InStock     *bool    `json:"inStock"`
}

// ProductPatch representa los campos actualizables de un producto (PATCH).
// Un campo nil no se modifica.
type ProductPatch struct {
	Title       *string  `json:"title" validate:"omitnil,min=1,max=60"`
	Description *string  `json:"description" validate:"omitnil,min=1,max=500"`
	Category    *string  `json:"category" validate:"omitnil,category"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Size        *string  `json:"size"`
	Images      []Image  `json:"images" validate:"dive"`
	Notes       *string  `json:"notes" validate:"omitnil,max=200"`
	Featured    *bool    `json:"featured"`
	InStock     *bool    `json:"inStock"`
}

// IsEmpty indica si el patch no trae ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Price == nil && p.Size == nil && p.Images == nil && p.Notes == nil &&
		p.Featured == nil && p.InStock == nil
}
