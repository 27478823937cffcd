package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
)

func testimonialRouter(store TestimonialStore) *gin.Engine {
	h := NewTestimonialHandler(store, zerolog.Nop())
	r := gin.New()
	r.GET("/api/testimonials", h.ListTestimonials)
	r.POST("/api/testimonials", h.CreateTestimonial)
	r.GET("/api/testimonials/:id", h.GetTestimonial)
	r.PUT("/api/testimonials/:id", h.UpdateTestimonial)
	r.DELETE("/api/testimonials/:id", h.DeleteTestimonial)
	return r
}

func sampleTestimonial(rating int) *models.Testimonial {
	return &models.Testimonial{
		ID:           primitive.NewObjectID(),
		CustomerName: "Ana",
		Review:       "Beautiful work",
		Rating:       rating,
	}
}

func TestListTestimonialsFeatured(t *testing.T) {
	store := new(mockTestimonialStore)
	store.On("FindMany", mock.Anything, bson.M{"featured": true}, query.Window{Page: 1, Limit: 10}).
		Return([]models.Testimonial{*sampleTestimonial(5)}, int64(1), nil)

	w := perform(testimonialRouter(store), http.MethodGet, "/api/testimonials?featured=true", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["testimonials"], 1)
	assert.Equal(t, float64(1), body["pagination"].(map[string]interface{})["totalPages"])
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	for _, rating := range []int{1, 5} {
		store := new(mockTestimonialStore)
		in := models.TestimonialInput{CustomerName: "Ana", Review: "Great", Rating: rating}
		store.On("Create", mock.Anything, in).Return(sampleTestimonial(rating), nil)

		w := perform(testimonialRouter(store), http.MethodPost, "/api/testimonials", jsonBody(t, in))

		require.Equal(t, http.StatusCreated, w.Code, "rating %d", rating)
		body := decode(t, w)
		assert.Equal(t, "Testimonial created successfully", body["message"])
		assert.Contains(t, body, "testimonial")
	}

	for _, rating := range []int{0, 6, -1} {
		store := new(mockTestimonialStore)
		in := models.TestimonialInput{CustomerName: "Ana", Review: "Great", Rating: rating}

		w := perform(testimonialRouter(store), http.MethodPost, "/api/testimonials", jsonBody(t, in))

		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
		assert.Equal(t, msgRatingRange, decode(t, w)["error"])
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCreateTestimonialMissingFields(t *testing.T) {
	store := new(mockTestimonialStore)

	w := perform(testimonialRouter(store), http.MethodPost, "/api/testimonials",
		strings.NewReader(`{"rating":5}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetTestimonialReturnsBareRecord(t *testing.T) {
	store := new(mockTestimonialStore)
	tm := sampleTestimonial(4)
	store.On("FindByID", mock.Anything, tm.ID.Hex()).Return(tm, nil)
	store.On("FindByID", mock.Anything, "nope").Return(nil, apperrors.NotFound("testimonial", "nope"))

	r := testimonialRouter(store)

	w := perform(r, http.MethodGet, "/api/testimonials/"+tm.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Ana", body["customerName"])
	assert.Equal(t, float64(4), body["rating"])

	w = perform(r, http.MethodGet, "/api/testimonials/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Testimonial not found", decode(t, w)["error"])
}

func TestUpdateTestimonial(t *testing.T) {
	store := new(mockTestimonialStore)
	review := "Even better"
	store.On("Patch", mock.Anything, "abc", models.TestimonialPatch{Review: &review}).
		Return(sampleTestimonial(5), nil)

	r := testimonialRouter(store)

	w := perform(r, http.MethodPut, "/api/testimonials/abc", strings.NewReader(`{"review":"Even better"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "customerName")

	w = perform(r, http.MethodPut, "/api/testimonials/abc", strings.NewReader(`{"rating":9}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgRatingRange, decode(t, w)["error"])

	store.AssertNumberOfCalls(t, "Patch", 1)
}

func TestDeleteTestimonial(t *testing.T) {
	store := new(mockTestimonialStore)
	store.On("Delete", mock.Anything, "abc").Return(nil)

	w := perform(testimonialRouter(store), http.MethodDelete, "/api/testimonials/abc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Testimonial deleted successfully", decode(t, w)["message"])
}
