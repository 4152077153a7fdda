package jwtx

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
)

// KeyManager bundles the signer, its key set and a verifier for one
// process. Keys are ephemeral: they live in memory only, so every session
// token is invalidated when the service restarts.
type KeyManager struct {
	Signer   *EdDSASigner
	Verifier *EdDSAVerifier
	KeySet   *KeySet
}

// NewEphemeralKeyManager generates a fresh Ed25519 key. The kid is the key's
// fingerprint.
func NewEphemeralKeyManager(issuer string) (*KeyManager, error) {
	if issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	key, err := cryptox.NewSigningKey()
	if err != nil {
		return nil, fmt.Errorf("jwtx: %w", err)
	}

	signer, err := NewSignerEdDSA(key.ID, key.PEM)
	if err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, err
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, issuer),
		KeySet:   keyset,
	}, nil
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km != nil && km.KeySet.IsReady()
}
