package http

import (
	"errors"
	"net/http"

	"github.com/Vyshusym/image-encryption/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyPassphrase: http.StatusBadRequest,
	service.ErrEmptyPayload:    http.StatusBadRequest,
	service.ErrNotAnImage:      http.StatusBadRequest,

	ErrMissingFile:     http.StatusBadRequest,
	ErrMalformedUpload: http.StatusBadRequest,
	ErrUploadTooLarge:  http.StatusRequestEntityTooLarge,
}

// statusFromError maps a service or parsing error to an HTTP status code.
// Typed cipher failures collapse onto 422: the user sees a single generic
// failure mode regardless of the underlying cause.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var encErr *service.EncryptionError
	var decErr *service.DecryptionError
	if errors.As(err, &encErr) || errors.As(err, &decErr) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
