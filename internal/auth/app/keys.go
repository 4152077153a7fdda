package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
)

// InitAuthKeys generates the session signing key. Keys live in memory only,
// so every session token is invalidated by a restart.
func InitAuthKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	logger.Info("generated ephemeral signing key",
		"kid", km.Signer.KID(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing sessions are now invalid due to key rotation on startup")
	return km, nil
}

// InitSecretCipher builds the cipher for stored TOTP secrets from the
// configured key. A bad key aborts startup.
func InitSecretCipher(cfg Config) (*cryptox.SecretCipher, error) {
	key, err := cryptox.ParseSecretKey(cfg.TOTPEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("TOTP_ENCRYPTION_KEY: %w", err)
	}
	return cryptox.NewSecretCipher(key)
}
