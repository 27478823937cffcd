package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
)

type ProductHandler struct {
	store ProductStore
	log   zerolog.Logger
}

func NewProductHandler(store ProductStore, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

// ListProducts lista productos con paginación y filtros
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := c.Request.URL.Query()
	win := query.ParseWindow(params, query.DefaultProductLimit)

	products, total, err := h.store.FindMany(c.Request.Context(), query.ProductFilter(params), win)
	if err != nil {
		respondError(c, h.log, "Products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": query.NewPagination(win, total),
	})
}

// CreateProduct crea un nuevo producto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if in.Title == "" || in.Description == "" || in.Category == "" {
		badRequest(c, "Title, description, and category are required")
		return
	}

	product, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, "Product", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// GetProduct obtiene un producto por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct reemplaza los campos editables de un producto (PUT)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if in.Title == "" || in.Description == "" || in.Category == "" {
		badRequest(c, "Title, description, and category are required")
		return
	}

	product, err := h.store.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.log, "Product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// PatchProduct actualiza parcialmente un producto
func (h *ProductHandler) PatchProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if patch.IsEmpty() {
		badRequest(c, "no valid fields to update")
		return
	}

	product, err := h.store.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, "Product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct elimina un producto
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "Product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
