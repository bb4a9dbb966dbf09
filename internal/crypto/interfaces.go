package crypto

// KeyringService owns all key material handling for the application.
// It knows nothing about HTTP, images or the UI; its single job is to turn
// a user passphrase into a cipher key and to run the authenticated cipher
// with that key.
//
// Scheme:
//
//	key    = DeriveKey(passphrase)        (SHA-256 → URL-safe base64)
//	token  = Encrypt(plaintext, key)      (Fernet: AES-CBC + HMAC + timestamp)
//	plain  = Decrypt(token, key)
type KeyringService interface {
	// DeriveKey hashes the UTF-8 bytes of passphrase with SHA-256 and
	// returns the 32-byte digest encoded with URL-safe base64 (padding
	// included). The result is a valid Fernet key. Derivation is
	// deterministic and never fails, including for the empty passphrase.
	DeriveKey(passphrase string) string

	// Encrypt seals plaintext under the derived key and returns the opaque
	// Fernet token. The token embeds its own version byte, timestamp, IV
	// and HMAC tag; callers must treat it as a black box.
	Encrypt(plaintext []byte, key string) ([]byte, error)

	// Decrypt opens a Fernet token produced by Encrypt. A wrong key, a
	// truncated or corrupted token, or bytes that were never a token at all
	// are indistinguishable to the caller: all return ErrDecryptionFailed.
	Decrypt(token []byte, key string) ([]byte, error)
}
