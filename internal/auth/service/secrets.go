package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

// SecretCipher seals TOTP seeds at rest. *cryptox.SecretCipher implements it.
type SecretCipher interface {
	Seal(plaintext string) (string, error)
	Open(token string) (string, error)
}

// TOTP generates and checks one-time codes. *totpx.Engine implements it.
type TOTP interface {
	GenerateSecret() (string, error)
	ProvisioningURI(secret, account string) (string, error)
	Verify(code, secret string) bool
}

// QRRenderer turns a provisioning URI into an image payload. qrcode.Renderer
// implements it.
type QRRenderer interface {
	DataURL(content string) (string, error)
}

// Enrollment is the one-time disclosure of a freshly generated secret.
type Enrollment struct {
	Secret      string
	OtpauthURL  string
	QRCodeImage string
}

// enroller holds what setup and approval both need to mint a secret.
type enroller struct {
	Cipher SecretCipher
	TOTP   TOTP
	QR     QRRenderer
}

// newEnrollment generates a secret for account and returns it with its sealed form.
func (e enroller) newEnrollment(account string) (Enrollment, string, error) {
	secret, err := e.TOTP.GenerateSecret()
	if err != nil {
		return Enrollment{}, "", fmt.Errorf("generate totp secret: %w", err)
	}

	uri, err := e.TOTP.ProvisioningURI(secret, account)
	if err != nil {
		return Enrollment{}, "", fmt.Errorf("build provisioning uri: %w", err)
	}

	img, err := e.QR.DataURL(uri)
	if err != nil {
		return Enrollment{}, "", fmt.Errorf("render qr code: %w", err)
	}

	sealed, err := e.Cipher.Seal(secret)
	if err != nil {
		return Enrollment{}, "", fmt.Errorf("seal totp secret: %w", err)
	}

	return Enrollment{Secret: secret, OtpauthURL: uri, QRCodeImage: img}, sealed, nil
}

// openSecret returns the plaintext seed stored on u. A missing secret, or
// one that no longer opens (corrupt record, rotated key), is reported as
// unusable; the latter is logged as a security anomaly.
func openSecret(ctx context.Context, c SecretCipher, u domain.User) (string, bool) {
	if u.TOTPSecret == nil || *u.TOTPSecret == "" {
		return "", false
	}

	secret, err := c.Open(*u.TOTPSecret)
	if err != nil {
		slogx.Security(ctx, "stored totp secret could not be opened",
			slogx.UserID(u.ID),
			slogx.Error(err),
		)
		return "", false
	}
	return secret, secret != ""
}

// effectiveTwoFactor is the flag AND a secret that opens.
func effectiveTwoFactor(ctx context.Context, c SecretCipher, u domain.User) (string, bool) {
	if !u.TwoFactorEnabled {
		return "", false
	}
	return openSecret(ctx, c, u)
}

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt verification.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("pitwall-timing-equaliser")
	return h
})

func checkPassword(u *domain.User, password string) bool {
	if u == nil {
		cryptox.VerifyPassword(password, dummyHash())
		return false
	}
	return cryptox.VerifyPassword(password, u.PasswordHash)
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return validationErr("password is required")
	case len(password) > cryptox.MaxPasswordBytes:
		return validationErr("password is too long")
	}
	return nil
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return validationErr(field + " is required")
	}
	return nil
}

func nowUTC(fn func() time.Time) time.Time {
	if fn == nil {
		return time.Now().UTC()
	}
	return fn().UTC()
}
