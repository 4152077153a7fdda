package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// SigningKey is a freshly generated Ed25519 session signing key.
type SigningKey struct {
	// ID is derived from the public key, see KeyFingerprint.
	ID string
	// PEM holds the PKCS8 encoded private key.
	PEM []byte
}

// NewSigningKey generates an Ed25519 key pair for session tokens.
func NewSigningKey() (SigningKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return SigningKey{}, fmt.Errorf("cryptox: generate ed25519 key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return SigningKey{}, fmt.Errorf("cryptox: marshal pkcs8: %w", err)
	}

	return SigningKey{
		ID:  KeyFingerprint(pub),
		PEM: pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}),
	}, nil
}

// KeyFingerprint is the first 16 bytes of SHA-256 over the raw public key,
// base64url encoded. Used as the JWT kid.
func KeyFingerprint(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return base64.RawURLEncoding.EncodeToString(sum[:16])
}
