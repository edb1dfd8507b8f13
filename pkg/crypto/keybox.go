// Package crypto provides authenticated encryption for tenant secrets held in
// workspace settings (currently the per-workspace LLM API key).
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrInvalidCiphertext is returned when a ciphertext is malformed or fails
// authentication.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Keybox seals and opens small secrets with XChaCha20-Poly1305 under a
// server-held key. Ciphertexts are base64 of nonce||sealed.
type Keybox struct {
	key []byte
}

// NewKeybox creates a Keybox from a 32-byte server key.
func NewKeybox(key []byte) (*Keybox, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("keybox key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Keybox{key: k}, nil
}

// Seal encrypts plaintext and returns a base64 token.
func (k *Keybox) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(k.key)
	if err != nil {
		return "", fmt.Errorf("failed to create AEAD: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a base64 token produced by Seal.
func (k *Keybox) Open(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	aead, err := chacha20poly1305.NewX(k.key)
	if err != nil {
		return "", fmt.Errorf("failed to create AEAD: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}
	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}
