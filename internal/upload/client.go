package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var ErrUploadFailed = errors.New("asset host rejected upload")

// Client reenvía imágenes al servidor de assets y devuelve la URL pública.
type Client struct {
	url     string
	preset  string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(url, preset string, perSecond float64) *Client {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		url:     url,
		preset:  preset,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

type hostResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Upload envía el archivo como multipart (campo "file") y espera la URL en la respuesta.
func (c *Client) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("upload throttled: %w", err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, filename, c.preset, body))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, pr)
	if err != nil {
		pr.Close()
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode)
	}

	var out hostResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}

	switch {
	case out.SecureURL != "":
		return out.SecureURL, nil
	case out.URL != "":
		return out.URL, nil
	default:
		return "", fmt.Errorf("%w: response has no url", ErrUploadFailed)
	}
}

func writeForm(mw *multipart.Writer, filename, preset string, body io.Reader) error {
	if preset != "" {
		if err := mw.WriteField("upload_preset", preset); err != nil {
			return err
		}
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, body); err != nil {
		return err
	}
	return mw.Close()
}
