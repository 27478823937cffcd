package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"furniture-catalog/internal/middleware"
)

// multipartOverhead es el margen para cabeceras y límites del formulario.
const multipartOverhead = 1 << 20

type Uploader interface {
	Upload(ctx context.Context, filename string, body io.Reader) (string, error)
}

type UploadHandler struct {
	uploader Uploader
	maxBytes int64
	log      zerolog.Logger
}

func NewUploadHandler(uploader Uploader, maxBytes int64, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, maxBytes: maxBytes, log: log}
}

// UploadImage recibe una imagen (campo "file") y la reenvía al servidor de assets
func (h *UploadHandler) UploadImage(c *gin.Context) {
	limit := h.maxBytes + multipartOverhead
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || c.Request.ContentLength > limit {
			h.tooLarge(c)
			return
		}
		badRequest(c, "No file provided")
		return
	}
	if header.Size > h.maxBytes {
		h.tooLarge(c)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.log, "Upload", err)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		badRequest(c, "Only image files are allowed")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(c, h.log, "Upload", err)
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		h.log.Error().Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("filename", header.Filename).
			Str("mime", mtype.String()).
			Msg("❌ image upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *UploadHandler) tooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
}
