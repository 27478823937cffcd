package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/auth"
	"furniture-catalog/internal/models"
)

const ClaimsKey = "claims"

// AdminLookup resuelve el usuario local asociado al "sub" del token.
type AdminLookup interface {
	FindByExternalAuthID(ctx context.Context, externalID string) (*models.User, error)
}

// AdminRequired deja pasar solo a administradores.
// Sin token válido responde 401; con token válido pero sin rol admin, 403.
func AdminRequired(verifier *auth.Verifier, users AdminLookup, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.Verify(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if claims.Role != models.RoleAdmin {
			user, err := users.FindByExternalAuthID(c.Request.Context(), claims.Subject)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			case err != nil:
				log.Error().Err(err).
					Str("request_id", c.GetString(RequestIDKey)).
					Str("subject", claims.Subject).
					Msg("❌ admin lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			case !user.IsAdmin():
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
