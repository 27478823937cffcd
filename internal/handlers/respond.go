package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/middleware"
)

const msgInternal = "Internal server error"

// respondError traduce los errores de la capa de datos a respuestas HTTP.
// label es el nombre del recurso tal como se muestra al cliente ("Product").
func respondError(c *gin.Context, log zerolog.Logger, label string, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "details": ve.Fields})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": label + " not found"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": label + " already exists"})
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("❌ request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
