package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Vyshusym/image-encryption/internal/crypto"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeKeyring implements crypto.KeyringService for unit tests.
// Each method field can be overridden per test case; nil fields fall back to
// the real implementation.
type fakeKeyring struct {
	real      crypto.KeyringService
	encryptFn func(plaintext []byte, key string) ([]byte, error)
	decryptFn func(token []byte, key string) ([]byte, error)
}

func (f *fakeKeyring) DeriveKey(passphrase string) string {
	return f.real.DeriveKey(passphrase)
}

func (f *fakeKeyring) Encrypt(plaintext []byte, key string) ([]byte, error) {
	if f.encryptFn != nil {
		return f.encryptFn(plaintext, key)
	}
	return f.real.Encrypt(plaintext, key)
}

func (f *fakeKeyring) Decrypt(token []byte, key string) ([]byte, error) {
	if f.decryptFn != nil {
		return f.decryptFn(token, key)
	}
	return f.real.Decrypt(token, key)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

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

func newService(t *testing.T) ImageCipherService {
	t.Helper()
	return NewImageCipherService(crypto.NewKeyringService(), logger.Nop())
}

// ─────────────────────────────────────────────
// EncryptImage / DecryptImage
// ─────────────────────────────────────────────

// TestEncryptDecrypt_RedPNGRoundTrip covers the canonical scenario: a 10×10
// red PNG encrypted and decrypted under the passphrase "secret" comes back
// byte-identical with matching dimensions and format.
func TestEncryptDecrypt_RedPNGRoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	original := redPNG(t, 10, 10)

	token, err := svc.EncryptImage(ctx, "secret", original)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	img, err := svc.DecryptImage(ctx, "secret", token)
	require.NoError(t, err)

	assert.Equal(t, original, img.Data)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 10, img.Width)
	assert.Equal(t, 10, img.Height)
	assert.True(t, img.Known())
}

func TestDecryptImage_WrongPassphrase(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, err := svc.EncryptImage(ctx, "secret", redPNG(t, 4, 4))
	require.NoError(t, err)

	_, err = svc.DecryptImage(ctx, "other-secret", token)
	require.Error(t, err)

	var decErr *DecryptionError
	assert.ErrorAs(t, err, &decErr)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestDecryptImage_CorruptedToken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, err := svc.EncryptImage(ctx, "secret", redPNG(t, 4, 4))
	require.NoError(t, err)

	corrupted := bytes.Clone(token)
	corrupted[len(corrupted)/3] ^= 0x5A

	_, err = svc.DecryptImage(ctx, "secret", corrupted)

	var decErr *DecryptionError
	assert.ErrorAs(t, err, &decErr)
}

// TestDecryptImage_UnknownFormatIsWarningNotError checks the redesigned
// behaviour for undetectable formats: the raw bytes come back with an empty
// Format instead of a silent PNG default or a hard failure.
func TestDecryptImage_UnknownFormatIsWarningNotError(t *testing.T) {
	keyring := crypto.NewKeyringService()
	svc := NewImageCipherService(keyring, logger.Nop())
	ctx := context.Background()

	// Seal non-image bytes directly through the keyring, bypassing the
	// upload-side image validation.
	payload := []byte("plain text, not an image")
	token, err := keyring.Encrypt(payload, keyring.DeriveKey("secret"))
	require.NoError(t, err)

	img, err := svc.DecryptImage(ctx, "secret", token)
	require.NoError(t, err)

	assert.Equal(t, payload, img.Data)
	assert.Empty(t, img.Format)
	assert.False(t, img.Known())
}

// ─────────────────────────────────────────────
// Input validation
// ─────────────────────────────────────────────

func TestEncryptImage_EmptyPassphrase(t *testing.T) {
	svc := newService(t)

	_, err := svc.EncryptImage(context.Background(), "", redPNG(t, 2, 2))
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestEncryptImage_EmptyPayload(t *testing.T) {
	svc := newService(t)

	_, err := svc.EncryptImage(context.Background(), "secret", nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestEncryptImage_RejectsNonImagePayload(t *testing.T) {
	svc := newService(t)

	_, err := svc.EncryptImage(context.Background(), "secret", []byte("not an image"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestDecryptImage_EmptyPassphrase(t *testing.T) {
	svc := newService(t)

	_, err := svc.DecryptImage(context.Background(), "", []byte{0x80})
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestDecryptImage_EmptyPayload(t *testing.T) {
	svc := newService(t)

	_, err := svc.DecryptImage(context.Background(), "secret", nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

// ─────────────────────────────────────────────
// Cipher failure wrapping
// ─────────────────────────────────────────────

func TestEncryptImage_WrapsCipherFailure(t *testing.T) {
	cipherErr := errors.New("csprng unavailable")
	keyring := &fakeKeyring{
		real: crypto.NewKeyringService(),
		encryptFn: func(_ []byte, _ string) ([]byte, error) {
			return nil, cipherErr
		},
	}

	svc := NewImageCipherService(keyring, logger.Nop())

	_, err := svc.EncryptImage(context.Background(), "secret", redPNG(t, 2, 2))

	var encErr *EncryptionError
	require.ErrorAs(t, err, &encErr)
	assert.ErrorIs(t, err, cipherErr)
}

func TestDeriveKey_MatchesKeyring(t *testing.T) {
	keyring := crypto.NewKeyringService()
	svc := NewImageCipherService(keyring, logger.Nop())

	assert.Equal(t, keyring.DeriveKey("secret"), svc.DeriveKey(context.Background(), "secret"))
}
