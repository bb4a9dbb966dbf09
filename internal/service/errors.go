package service

import "errors"

var (
	ErrEmptyPassphrase = errors.New("no passphrase provided")
	ErrEmptyPayload    = errors.New("no file content provided")
	ErrNotAnImage      = errors.New("uploaded file is not a recognised image")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// EncryptionError wraps any failure raised by the cipher capability during
// encryption. The cause is preserved for [errors.Is]/[errors.As] but callers
// present it as a single generic encryption failure.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return "encryption failed: " + e.Err.Error()
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// DecryptionError wraps any failure raised during decryption: wrong key,
// truncated or corrupted token, or input that never was a token. The UI does
// not distinguish these causes; the wrapper type exists so code can.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return "decryption failed: " + e.Err.Error()
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}
