// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vyshusym/image-encryption/internal/config"
	"github.com/Vyshusym/image-encryption/internal/crypto"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/internal/service"
	"github.com/Vyshusym/image-encryption/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ImageCipherService
// ─────────────────────────────────────────────

// mockImageCipherService implements service.ImageCipherService for unit
// tests. Each method field can be overridden per test case.
type mockImageCipherService struct {
	deriveKeyFn    func(ctx context.Context, passphrase string) string
	encryptImageFn func(ctx context.Context, passphrase string, payload []byte) ([]byte, error)
	decryptImageFn func(ctx context.Context, passphrase string, token []byte) (models.Image, error)
}

func (m *mockImageCipherService) DeriveKey(ctx context.Context, passphrase string) string {
	return m.deriveKeyFn(ctx, passphrase)
}

func (m *mockImageCipherService) EncryptImage(ctx context.Context, passphrase string, payload []byte) ([]byte, error) {
	return m.encryptImageFn(ctx, passphrase, payload)
}

func (m *mockImageCipherService) DecryptImage(ctx context.Context, passphrase string, token []byte) (models.Image, error) {
	return m.decryptImageFn(ctx, passphrase, token)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler backed by the real keyring and cipher
// service, suitable for end-to-end round-trips over httptest.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	svcs := &service.Services{
		ImageCipherService: service.NewImageCipherService(crypto.NewKeyringService(), logger.Nop()),
		AppInfoService:     &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, config.Server{MaxUploadBytes: 1 << 20}, logger.Nop())
}

// newMockedHandler builds a Handler around a mocked cipher service.
func newMockedHandler(t *testing.T, cipher service.ImageCipherService) *Handler {
	t.Helper()

	svcs := &service.Services{
		ImageCipherService: cipher,
		AppInfoService:     &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, config.Server{MaxUploadBytes: 1 << 20}, logger.Nop())
}

// multipartBody builds a multipart form with an optional passphrase field
// and an optional file part, returning the body and its content type.
func multipartBody(t *testing.T, passphrase string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	require.NoError(t, mw.WriteField("passphrase", passphrase))

	if file != nil {
		part, err := mw.CreateFormFile("file", "upload.bin")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// redPNG encodes a w×h PNG filled with opaque red.
func redPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func doMultipart(t *testing.T, h *Handler, url, passphrase string, file []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, passphrase, file)
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// encrypt / decrypt round trip
// ─────────────────────────────────────────────

// TestEncryptDecrypt_RoundTripOverHTTP uploads a 10×10 red PNG, downloads
// the token, uploads it back with the same passphrase and verifies the
// original bytes and format come back.
func TestEncryptDecrypt_RoundTripOverHTTP(t *testing.T) {
	h := newTestHandler(t)
	original := redPNG(t, 10, 10)

	encRec := doMultipart(t, h, "/api/encrypt", "secret", original)
	require.Equal(t, http.StatusOK, encRec.Code)
	assert.Equal(t, "application/octet-stream", encRec.Header().Get("Content-Type"))
	assert.Contains(t, encRec.Header().Get("Content-Disposition"), "encrypted_image.enc")

	token := encRec.Body.Bytes()
	require.NotEmpty(t, token)
	assert.NotContains(t, string(token), string(original[:8]))

	decRec := doMultipart(t, h, "/api/decrypt", "secret", token)
	require.Equal(t, http.StatusOK, decRec.Code)
	assert.Equal(t, "image/png", decRec.Header().Get("Content-Type"))
	assert.Equal(t, "png", decRec.Header().Get(imageFormatHeader))
	assert.Contains(t, decRec.Header().Get("Content-Disposition"), "decrypted_image.png")
	assert.Equal(t, original, decRec.Body.Bytes())
}

func TestDecrypt_WrongPassphraseIs422(t *testing.T) {
	h := newTestHandler(t)

	encRec := doMultipart(t, h, "/api/encrypt", "secret", redPNG(t, 4, 4))
	require.Equal(t, http.StatusOK, encRec.Code)

	decRec := doMultipart(t, h, "/api/decrypt", "wrong", encRec.Body.Bytes())
	require.Equal(t, http.StatusUnprocessableEntity, decRec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(decRec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "decryption failed")
}

func TestDecrypt_CorruptedTokenIs422(t *testing.T) {
	h := newTestHandler(t)

	decRec := doMultipart(t, h, "/api/decrypt", "secret", []byte("garbage, not a token"))
	assert.Equal(t, http.StatusUnprocessableEntity, decRec.Code)
}

// ─────────────────────────────────────────────
// input validation
// ─────────────────────────────────────────────

func TestEncrypt_MissingPassphraseIs400(t *testing.T) {
	h := newTestHandler(t)

	rec := doMultipart(t, h, "/api/encrypt", "", redPNG(t, 2, 2))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "passphrase")
}

func TestEncrypt_MissingFileIs400(t *testing.T) {
	h := newTestHandler(t)

	rec := doMultipart(t, h, "/api/encrypt", "secret", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncrypt_NonImageUploadIs400(t *testing.T) {
	h := newTestHandler(t)

	rec := doMultipart(t, h, "/api/encrypt", "secret", []byte("just some text"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncrypt_OversizeUploadIsRejected(t *testing.T) {
	svcs := &service.Services{
		ImageCipherService: service.NewImageCipherService(crypto.NewKeyringService(), logger.Nop()),
		AppInfoService:     &mockAppInfoService{version: "test"},
	}
	h := NewHandler(svcs, config.Server{MaxUploadBytes: 256}, logger.Nop())

	rec := doMultipart(t, h, "/api/encrypt", "secret", bytes.Repeat([]byte{0xAA}, 4096))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// ─────────────────────────────────────────────
// unknown-format warning path
// ─────────────────────────────────────────────

// TestDecrypt_UnknownFormatReturnsBytesWithWarningHeader covers the
// redesigned fallback: bytes that decrypt fine but carry no image signature
// are returned as an octet-stream flagged "unknown" instead of being
// mislabelled as PNG.
func TestDecrypt_UnknownFormatReturnsBytesWithWarningHeader(t *testing.T) {
	payload := []byte("opaque non-image payload")
	cipher := &mockImageCipherService{
		decryptImageFn: func(_ context.Context, _ string, _ []byte) (models.Image, error) {
			return models.Image{Data: payload}, nil
		},
	}
	h := newMockedHandler(t, cipher)

	rec := doMultipart(t, h, "/api/decrypt", "secret", []byte{0x01})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, unknownFormat, rec.Header().Get(imageFormatHeader))
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "decrypted_image.bin")
	assert.Equal(t, payload, rec.Body.Bytes())
}

// ─────────────────────────────────────────────
// unexpected failures
// ─────────────────────────────────────────────

func TestEncrypt_UnexpectedServiceErrorIs500(t *testing.T) {
	cipher := &mockImageCipherService{
		encryptImageFn: func(_ context.Context, _ string, _ []byte) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	h := newMockedHandler(t, cipher)

	rec := doMultipart(t, h, "/api/encrypt", "secret", []byte{0x01})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDecrypt_ResponseBodyIsNotGzipped(t *testing.T) {
	h := newTestHandler(t)
	original := redPNG(t, 3, 3)

	encRec := doMultipart(t, h, "/api/encrypt", "secret", original)
	require.Equal(t, http.StatusOK, encRec.Code)

	body, contentType := multipartBody(t, "secret", encRec.Body.Bytes())
	req := httptest.NewRequest(http.MethodPost, "/api/decrypt", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	// Image payloads skip response compression even for gzip-capable clients.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	raw, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, original, raw)
}
