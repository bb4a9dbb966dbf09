// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

package service

import (
	"context"
	"errors"

	"github.com/Vyshusym/image-encryption/internal/crypto"
	"github.com/Vyshusym/image-encryption/internal/imaging"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/models"
)

// imageCipherService is the private implementation of [ImageCipherService].
// It is stateless: the passphrase and payload exist only as arguments, never
// as fields, so every call is an independent request/response.
type imageCipherService struct {
	keyring crypto.KeyringService

	logger *logger.Logger
}

func NewImageCipherService(keyring crypto.KeyringService, logger *logger.Logger) ImageCipherService {
	return &imageCipherService{
		keyring: keyring,
		logger:  logger,
	}
}

// DeriveKey implements [ImageCipherService].
func (s *imageCipherService) DeriveKey(ctx context.Context, passphrase string) string {
	return s.keyring.DeriveKey(passphrase)
}

// EncryptImage implements [ImageCipherService]. The payload is sniffed before
// encryption so that only recognised images are ever sealed; rejecting other
// uploads here mirrors the upload filter of the UI.
func (s *imageCipherService) EncryptImage(ctx context.Context, passphrase string, payload []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	info, err := imaging.Sniff(payload)
	if err != nil {
		return nil, ErrNotAnImage
	}

	key := s.keyring.DeriveKey(passphrase)

	token, err := s.keyring.Encrypt(payload, key)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	logger.FromContext(ctx).Info().
		Str("format", info.Format).
		Int("plaintext_size", len(payload)).
		Int("token_size", len(token)).
		Msg("image encrypted")

	return token, nil
}

// DecryptImage implements [ImageCipherService]. A successful decryption whose
// bytes carry no recognised image signature is NOT an error: the data may be
// exactly what the user encrypted. The image is returned with an empty Format
// and the condition is logged as a warning.
func (s *imageCipherService) DecryptImage(ctx context.Context, passphrase string, token []byte) (models.Image, error) {
	if passphrase == "" {
		return models.Image{}, ErrEmptyPassphrase
	}
	if len(token) == 0 {
		return models.Image{}, ErrEmptyPayload
	}

	key := s.keyring.DeriveKey(passphrase)

	plaintext, err := s.keyring.Decrypt(token, key)
	if err != nil {
		return models.Image{}, &DecryptionError{Err: err}
	}

	info, err := imaging.Sniff(plaintext)
	if errors.Is(err, imaging.ErrUnknownFormat) {
		logger.FromContext(ctx).Warn().
			Int("size", len(plaintext)).
			Msg("decrypted payload has no recognised image signature")
		return models.Image{Data: plaintext}, nil
	}

	logger.FromContext(ctx).Info().
		Str("format", info.Format).
		Int("size", len(plaintext)).
		Msg("image decrypted")

	return models.Image{
		Data:   plaintext,
		Format: info.Format,
		Width:  info.Width,
		Height: info.Height,
	}, nil
}
