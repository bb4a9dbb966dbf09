// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrDecryptionFailed is returned by [KeyringService.Decrypt] for every
// failure mode of the underlying cipher: wrong key, truncated token,
// corrupted token, or input that was never a Fernet token. Callers can match
// it with [errors.Is].
var ErrDecryptionFailed = errors.New("decryption failed: wrong key or corrupted data")

// keyringService is the private implementation of [KeyringService].
type keyringService struct{}

// NewKeyringService constructs a stateless [KeyringService]. All key material
// lives only in the arguments and return values of its methods.
func NewKeyringService() KeyringService {
	return &keyringService{}
}

// DeriveKey implements [KeyringService]. The SHA-256 digest is exactly
// 32 bytes, so the encoded result always satisfies the Fernet key format
// (32 raw bytes in URL-safe base64, 44 characters with padding).
func (k *keyringService) DeriveKey(passphrase string) string {
	digest := sha256.Sum256([]byte(passphrase))
	return base64.URLEncoding.EncodeToString(digest[:])
}

// Encrypt implements [KeyringService]. It decodes key into a Fernet key and
// seals plaintext into a signed token. Returns an error if the key is not a
// valid encoded Fernet key or if token generation fails (the latter only
// happens when the OS CSPRNG is unavailable).
func (k *keyringService) Encrypt(plaintext []byte, key string) ([]byte, error) {
	fernetKey, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}

	token, err := fernet.EncryptAndSign(plaintext, fernetKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return token, nil
}

// Decrypt implements [KeyringService]. The token is verified and decrypted
// with a zero TTL, i.e. tokens never expire: the timestamp inside the token
// is carried by the format but not enforced here.
//
// fernet reports verification failure by returning nil rather than an error,
// so every failure collapses into [ErrDecryptionFailed] with no further
// detail. That is intentional: distinguishing a wrong key from corrupted
// data would leak information about the HMAC check.
func (k *keyringService) Decrypt(token []byte, key string) ([]byte, error) {
	fernetKey, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}

	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{fernetKey})
	if plaintext == nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
