package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Vyshusym/image-encryption/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) EncryptImage(ctx context.Context, passphrase string, payload []byte) ([]byte, error) {
	resp, err := h.cipherRequest(ctx, passphrase, "image", payload).
		Post("/api/encrypt")
	if err != nil {
		return nil, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) DecryptImage(ctx context.Context, passphrase string, payload []byte) (models.Image, error) {
	resp, err := h.cipherRequest(ctx, passphrase, "image.enc", payload).
		Post("/api/decrypt")
	if err != nil {
		return models.Image{}, fmt.Errorf("decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Image{}, err
	}

	img := models.Image{Data: resp.Body()}
	if format := resp.Header().Get("X-Image-Format"); format != "" && format != "unknown" {
		img.Format = format
	}
	return img, nil
}

func (h *httpServerAdapter) DeriveKey(ctx context.Context, passphrase string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeriveKeyRequest{Passphrase: passphrase}).
		Post("/api/key")
	if err != nil {
		return "", fmt.Errorf("derive key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var keyResp models.DeriveKeyResponse
	if err = json.Unmarshal(resp.Body(), &keyResp); err != nil {
		return "", fmt.Errorf("decode derive key response: %w", err)
	}

	return keyResp.Key, nil
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// cipherRequest builds the multipart request shared by the encrypt and
// decrypt endpoints: a "passphrase" form field plus a "file" part.
func (h *httpServerAdapter) cipherRequest(ctx context.Context, passphrase, filename string, payload []byte) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"passphrase": passphrase}).
		SetFileReader("file", filename, bytes.NewReader(payload))
}
