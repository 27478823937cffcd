package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, in)
	return productArg(args, 0), args.Error(1)
}

func (m *mockProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	return productArg(args, 0), args.Error(1)
}

func (m *mockProductStore) FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.Product, int64, error) {
	args := m.Called(ctx, filter, win)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductStore) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, id, in)
	return productArg(args, 0), args.Error(1)
}

func (m *mockProductStore) Patch(ctx context.Context, id string, p models.ProductPatch) (*models.Product, error) {
	args := m.Called(ctx, id, p)
	return productArg(args, 0), args.Error(1)
}

func (m *mockProductStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func productArg(args mock.Arguments, i int) *models.Product {
	p, _ := args.Get(i).(*models.Product)
	return p
}

type mockTestimonialStore struct {
	mock.Mock
}

func (m *mockTestimonialStore) Create(ctx context.Context, in models.TestimonialInput) (*models.Testimonial, error) {
	args := m.Called(ctx, in)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialStore) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialStore) FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.Testimonial, int64, error) {
	args := m.Called(ctx, filter, win)
	items, _ := args.Get(0).([]models.Testimonial)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockTestimonialStore) Patch(ctx context.Context, id string, p models.TestimonialPatch) (*models.Testimonial, error) {
	args := m.Called(ctx, id, p)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) FindMany(ctx context.Context, filter bson.M, win query.Window) ([]models.User, int64, error) {
	args := m.Called(ctx, filter, win)
	users, _ := args.Get(0).([]models.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserStore) Patch(ctx context.Context, id string, p models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, p)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func perform(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
