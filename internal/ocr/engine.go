package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Engine transcribes an image region to plain text. Implementations wrap an
// external recognition service; the label reader treats any failure as "no
// text detected".
type Engine interface {
	Recognize(ctx context.Context, img image.Image, lang string) (string, error)
}

// HTTPEngine sends PNG-encoded image regions to an external recognition
// endpoint and returns the plain-text body.
type HTTPEngine struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewHTTPEngine creates an engine for the given endpoint.
func NewHTTPEngine(endpoint string, logger *zap.Logger) *HTTPEngine {
	return &HTTPEngine{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

func (e *HTTPEngine) Recognize(ctx context.Context, img image.Image, lang string) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode region: %w", err)
	}

	target := e.endpoint + "?lang=" + url.QueryEscape(lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, &buf)
	if err != nil {
		return "", fmt.Errorf("build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognition request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recognition endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read recognition response: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
