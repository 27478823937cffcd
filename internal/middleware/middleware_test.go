package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/auth"
	"furniture-catalog/internal/models"
)

const secret = "middleware-secret"

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) FindByExternalAuthID(ctx context.Context, externalID string) (*models.User, error) {
	args := m.Called(ctx, externalID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, sub, role string) string {
	t.Helper()
	claims := auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func adminRouter(lookup AdminLookup) *gin.Engine {
	r := gin.New()
	r.Use(AdminRequired(auth.NewVerifier(secret, ""), lookup, zerolog.Nop()))
	r.GET("/admin", func(c *gin.Context) {
		claims := c.MustGet(ClaimsKey).(*auth.Claims)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject})
	})
	return r
}

func doAdmin(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiredMissingOrBadToken(t *testing.T) {
	lookup := new(mockLookup)
	r := adminRouter(lookup)

	assert.Equal(t, http.StatusUnauthorized, doAdmin(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doAdmin(r, "Bearer nope").Code)
	assert.Equal(t, http.StatusUnauthorized, doAdmin(r, "Basic dXNlcjpwYXNz").Code)
	lookup.AssertNotCalled(t, "FindByExternalAuthID", mock.Anything, mock.Anything)
}

func TestAdminRequiredRoleClaim(t *testing.T) {
	lookup := new(mockLookup)
	r := adminRouter(lookup)

	w := doAdmin(r, "Bearer "+token(t, "user_admin", models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sub":"user_admin"}`, w.Body.String())
	lookup.AssertNotCalled(t, "FindByExternalAuthID", mock.Anything, mock.Anything)
}

func TestAdminRequiredMirroredUser(t *testing.T) {
	tests := []struct {
		name   string
		user   *models.User
		err    error
		status int
	}{
		{"active admin", &models.User{Role: models.RoleAdmin, IsActive: true}, nil, http.StatusOK},
		{"inactive admin", &models.User{Role: models.RoleAdmin, IsActive: false}, nil, http.StatusForbidden},
		{"plain user", &models.User{Role: models.RoleUser, IsActive: true}, nil, http.StatusForbidden},
		{"unknown", nil, apperrors.NotFound("user", "user_1"), http.StatusForbidden},
		{"lookup failure", nil, apperrors.Fault("find user", errors.New("timeout")), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lookup := new(mockLookup)
			lookup.On("FindByExternalAuthID", mock.Anything, "user_1").Return(tc.user, tc.err)

			w := doAdmin(adminRouter(lookup), "Bearer "+token(t, "user_1", ""))

			assert.Equal(t, tc.status, w.Code)
			lookup.AssertExpectations(t)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "", bearerToken("Bearer "))
	assert.Equal(t, "", bearerToken("Token abc"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, id, entry["request_id"])
		assert.Equal(t, "/ping", entry["path"])
		assert.Equal(t, float64(200), entry["status"])
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})
}
