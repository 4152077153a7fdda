// Package totpx wraps RFC 6238 time-based one-time passwords with the fixed
// parameters authenticator apps expect: SHA1, six digits, 30 second steps.
package totpx

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// Period is the length of one time step.
	Period = 30

	// Skew is the number of neighbouring steps accepted either side of now.
	Skew = 1

	// SecretSize is the number of random bytes behind a generated secret.
	SecretSize = 20

	DefaultIssuer = "SimRacing Operations Hub"
)

var (
	ErrEmptySecret  = errors.New("totpx: secret is empty")
	ErrInvalidLabel = errors.New("totpx: account label is empty")
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Engine generates and checks TOTP codes. The zero value is usable; Issuer
// falls back to DefaultIssuer and Now to time.Now.
type Engine struct {
	Issuer string
	Now    func() time.Time
}

// New returns an Engine for issuer.
func New(issuer string) *Engine {
	return &Engine{Issuer: issuer}
}

func (e *Engine) issuer() string {
	if e == nil || e.Issuer == "" {
		return DefaultIssuer
	}
	return e.Issuer
}

func (e *Engine) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    Period,
		Skew:      Skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GenerateSecret returns a fresh unpadded base32 secret.
func (e *Engine) GenerateSecret() (string, error) {
	raw := make([]byte, SecretSize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("totpx: failed to read entropy: %w", err)
	}
	return b32.EncodeToString(raw), nil
}

// ProvisioningURI builds the otpauth:// URI for secret under account.
func (e *Engine) ProvisioningURI(secret, account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", ErrInvalidLabel
	}

	raw, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer(),
		AccountName: account,
		Period:      Period,
		Secret:      raw,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("totpx: failed to build key: %w", err)
	}

	return key.URL(), nil
}

// Verify reports whether code is valid for secret at the current time,
// allowing one step of drift either way. Malformed input is simply invalid.
func (e *Engine) Verify(code, secret string) bool {
	code = strings.TrimSpace(code)
	if code == "" || secret == "" {
		return false
	}

	ok, err := totp.ValidateCustom(code, secret, e.now().UTC(), validateOpts())
	if err != nil {
		return false
	}
	return ok
}

// Code returns the code for secret at t.
func (e *Engine) Code(secret string, t time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	return totp.GenerateCodeCustom(secret, t.UTC(), validateOpts())
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	if secret == "" {
		return nil, ErrEmptySecret
	}

	raw, err := b32.DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, fmt.Errorf("totpx: secret is not base32: %w", err)
	}
	return raw, nil
}
