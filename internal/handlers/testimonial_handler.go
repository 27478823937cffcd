package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
)

const msgRatingRange = "Rating must be between 1 and 5"

type TestimonialHandler struct {
	store TestimonialStore
	log   zerolog.Logger
}

func NewTestimonialHandler(store TestimonialStore, log zerolog.Logger) *TestimonialHandler {
	return &TestimonialHandler{store: store, log: log}
}

func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	params := c.Request.URL.Query()
	win := query.ParseWindow(params, query.DefaultTestimonialLimit)

	testimonials, total, err := h.store.FindMany(c.Request.Context(), query.TestimonialFilter(params), win)
	if err != nil {
		respondError(c, h.log, "Testimonials", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"testimonials": testimonials,
		"pagination":   query.NewPagination(win, total),
	})
}

// CreateTestimonial valida la calificación antes de llegar a la base de datos
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var in models.TestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if in.CustomerName == "" || in.Review == "" {
		badRequest(c, "Customer name, review, and rating are required")
		return
	}
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		badRequest(c, msgRatingRange)
		return
	}

	testimonial, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, "Testimonial", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Testimonial created successfully",
		"testimonial": testimonial,
	})
}

func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	testimonial, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Testimonial", err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// UpdateTestimonial aplica solo los campos enviados
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var patch models.TestimonialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if patch.IsEmpty() {
		badRequest(c, "no valid fields to update")
		return
	}
	if patch.Rating != nil && (*patch.Rating < models.MinRating || *patch.Rating > models.MaxRating) {
		badRequest(c, msgRatingRange)
		return
	}

	testimonial, err := h.store.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, "Testimonial", err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "Testimonial", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
