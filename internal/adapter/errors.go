package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrCipherRejected      = errors.New("cipher operation rejected")
	ErrUploadTooLarge      = errors.New("upload too large")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
