package query

import (
	"math"
	"net/url"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultPage             = 1
	DefaultProductLimit     = 12
	DefaultTestimonialLimit = 10
	DefaultUserLimit        = 20
	MaxLimit                = 100

	// AllCategories desactiva el filtro por categoría.
	AllCategories = "all"
)

// Window es la ventana de paginación (página 1-indexada y tamaño).
type Window struct {
	Page  int
	Limit int
}

// Skip devuelve cuántos documentos saltar antes de la página.
func (w Window) Skip() int64 {
	return int64(w.Page-1) * int64(w.Limit)
}

// Pagination es el bloque de metadatos que acompaña a cada listado.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// ParseWindow obtiene y normaliza los parámetros page y limit.
// Valores ausentes o no numéricos usan los valores por defecto; page < 1 pasa a 1,
// limit < 1 al valor por defecto y limit > MaxLimit a MaxLimit.
// page se acota para que Skip no desborde; una página tan lejana simplemente llega vacía.
func ParseWindow(values url.Values, defaultLimit int) Window {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(values.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return Window{Page: page, Limit: limit}
}

// NewPagination calcula los metadatos para total documentos coincidentes.
func NewPagination(w Window, total int64) Pagination {
	pages := total / int64(w.Limit)
	if total%int64(w.Limit) != 0 {
		pages++
	}
	return Pagination{
		CurrentPage:  w.Page,
		TotalPages:   int(pages),
		TotalItems:   total,
		ItemsPerPage: w.Limit,
	}
}

// NewestFirst es el único orden soportado: createdAt descendente.
func NewestFirst() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}

// ProductFilter construye el filtro de MongoDB para el listado de productos.
func ProductFilter(values url.Values) bson.M {
	filter := bson.M{}

	if cat := values.Get("category"); cat != "" && cat != AllCategories {
		filter["category"] = cat
	}

	addFeatured(filter, values)
	addSearch(filter, values.Get("search"), "title", "description", "category")

	return filter
}

// TestimonialFilter construye el filtro para el listado de reseñas.
func TestimonialFilter(values url.Values) bson.M {
	filter := bson.M{}
	addFeatured(filter, values)
	return filter
}

// UserFilter construye el filtro para el listado de usuarios del área de administración.
func UserFilter(values url.Values) bson.M {
	filter := bson.M{}

	if role := values.Get("role"); role != "" {
		filter["role"] = role
	}
	if active := values.Get("active"); active != "" {
		filter["isActive"] = active == "true"
	}
	addSearch(filter, values.Get("search"), "email", "firstName", "lastName")

	return filter
}

func addFeatured(filter bson.M, values url.Values) {
	if values.Get("featured") == "true" {
		filter["featured"] = true
	}
}

// addSearch agrega una búsqueda por subcadena literal, sin distinguir mayúsculas.
func addSearch(filter bson.M, term string, fields ...string) {
	if term == "" {
		return
	}

	pattern := containsPattern(term)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	filter["$or"] = or
}

func containsPattern(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}
