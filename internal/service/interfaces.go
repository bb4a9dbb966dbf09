package service

import (
	"context"

	"github.com/Vyshusym/image-encryption/models"
)

type ImageCipherService interface {
	// DeriveKey returns the URL-safe base64 key derived from passphrase.
	// Derivation is deterministic and accepts any input, including empty.
	DeriveKey(ctx context.Context, passphrase string) string

	// EncryptImage validates that payload is a recognised image, derives the
	// key from passphrase and seals the bytes into an authenticated token.
	// Returns ErrEmptyPassphrase / ErrEmptyPayload / ErrNotAnImage for input
	// problems and a *EncryptionError for cipher failures.
	EncryptImage(ctx context.Context, passphrase string, payload []byte) ([]byte, error)

	// DecryptImage derives the key from passphrase, opens the token and
	// sniffs the recovered bytes. Wrong key, truncation and corruption all
	// return a *DecryptionError. When decryption succeeds but the format
	// cannot be identified, the returned image carries the raw bytes with an
	// empty Format and no error; the caller decides how to warn the user.
	DecryptImage(ctx context.Context, passphrase string, token []byte) (models.Image, error)
}

type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}
