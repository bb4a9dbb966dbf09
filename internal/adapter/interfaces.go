// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

// Package adapter provides transport-layer abstractions for communicating with
// the image encryption server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrCipherRejected] for 422, [ErrUploadTooLarge]
// for 413).
package adapter

import (
	"context"

	"github.com/Vyshusym/image-encryption/models"
)

// ServerAdapter defines transport-agnostic communication with the image
// encryption server. Implementations are responsible for serialisation and
// for mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// EncryptImage uploads an image together with a passphrase and returns
	// the encrypted token bytes suitable for storage in a .enc file.
	EncryptImage(ctx context.Context, passphrase string, payload []byte) ([]byte, error)

	// DecryptImage uploads a previously produced token together with a
	// passphrase and returns the recovered image. When the server cannot
	// recognise the decrypted bytes as an image, the returned
	// [models.Image] carries the raw bytes with an empty Format; callers
	// should surface that as a warning rather than a failure.
	DecryptImage(ctx context.Context, passphrase string, payload []byte) (models.Image, error)

	// DeriveKey asks the server for the key derived from the passphrase,
	// returned as URL-safe base64 text.
	DeriveKey(ctx context.Context, passphrase string) (string, error)

	// GetServerVersion fetches the server build version string.
	GetServerVersion(ctx context.Context) (string, error)
}
