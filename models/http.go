package models

// DeriveKeyRequest is the JSON body of POST /api/key.
type DeriveKeyRequest struct {
	// Passphrase is the user-supplied text the key is derived from.
	// May be empty; derivation accepts any input.
	Passphrase string `json:"passphrase"`
}

// DeriveKeyResponse is the JSON reply of POST /api/key.
type DeriveKeyResponse struct {
	// Key is the URL-safe base64 encoding of the 32-byte derived key.
	Key string `json:"key"`
}

// ErrorResponse is the JSON body returned for every failed API request.
// The message intentionally carries the underlying error text without
// classifying the cause, matching the inline error widgets of the UI.
type ErrorResponse struct {
	Error string `json:"error"`
}
