package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SecretKeySize is the AES-256 key length in bytes.
const SecretKeySize = 32

const (
	sealedFields   = 3
	sealedSep      = ":"
	gcmNonceSize   = 12
	gcmTagSize     = 16
	sealedTokenFmt = "%s:%s:%s"
)

var (
	ErrSecretKeyMissing     = errors.New("cryptox: secret key is not set")
	ErrInvalidSecretKey     = errors.New("cryptox: secret key must resolve to 32 bytes")
	ErrMalformedSecret      = errors.New("cryptox: malformed sealed secret")
	ErrSecretAuthentication = errors.New("cryptox: sealed secret failed authentication")
	ErrEmptyPlaintext       = errors.New("cryptox: nothing to seal")
)

// ParseSecretKey resolves a configured key into 32 raw bytes. A value that is
// already 32 bytes long is used verbatim, anything else must be base64 that
// decodes to 32 bytes.
func ParseSecretKey(raw string) ([]byte, error) {
	if raw == "" {
		return nil, ErrSecretKeyMissing
	}

	if len(raw) == SecretKeySize {
		return []byte(raw), nil
	}

	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding} {
		key, err := enc.DecodeString(strings.TrimSpace(raw))
		if err == nil && len(key) == SecretKeySize {
			return key, nil
		}
	}

	return nil, ErrInvalidSecretKey
}

// SecretCipher seals short secrets (TOTP seeds) with AES-256-GCM. The sealed
// form is "nonce:ciphertext:tag" with each part base64 encoded.
//
// A SecretCipher is safe for concurrent use.
type SecretCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher builds a cipher from a 32 byte key.
func NewSecretCipher(key []byte) (*SecretCipher, error) {
	if len(key) != SecretKeySize {
		return nil, ErrInvalidSecretKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, gcmNonceSize)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to create GCM: %w", err)
	}

	return &SecretCipher{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random nonce. Empty plaintext is
// rejected since its ciphertext field would be empty and never open.
func (c *SecretCipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate nonce: %w", err)
	}

	// GCM appends the tag to the ciphertext.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	body, tag := sealed[:len(sealed)-gcmTagSize], sealed[len(sealed)-gcmTagSize:]

	return fmt.Sprintf(sealedTokenFmt,
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(body),
		base64.StdEncoding.EncodeToString(tag),
	), nil
}

// Open reverses Seal. An empty token means nothing was ever sealed and
// yields ("", nil).
func (c *SecretCipher) Open(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	parts := strings.Split(token, sealedSep)
	if len(parts) != sealedFields {
		return "", ErrMalformedSecret
	}

	decoded := make([][]byte, sealedFields)
	for i, part := range parts {
		if part == "" {
			return "", ErrMalformedSecret
		}
		b, err := base64.StdEncoding.DecodeString(part)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedSecret, err)
		}
		decoded[i] = b
	}

	nonce, body, tag := decoded[0], decoded[1], decoded[2]
	if len(nonce) != gcmNonceSize || len(tag) != gcmTagSize {
		return "", ErrMalformedSecret
	}

	plaintext, err := c.aead.Open(nil, nonce, append(body, tag...), nil)
	if err != nil {
		return "", ErrSecretAuthentication
	}

	return string(plaintext), nil
}
