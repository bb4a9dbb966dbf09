// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

package http

import "errors"

// Request-parsing errors surfaced to the user before the service layer is
// ever involved. Callers can match against them with [errors.Is].
var (
	// ErrMissingFile is returned when the multipart form carries no "file"
	// part at all.
	ErrMissingFile = errors.New("no file uploaded")

	// ErrUploadTooLarge is returned when the uploaded file exceeds the
	// configured size limit.
	ErrUploadTooLarge = errors.New("uploaded file is too large")

	// ErrMalformedUpload is returned when the request body cannot be parsed
	// as a multipart form at all.
	ErrMalformedUpload = errors.New("malformed upload")
)
